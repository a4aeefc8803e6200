// usertool creates accounts directly in the database. Registration has no
// API endpoint, so this is how users and their api keys come to exist.
package main

import (
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/leosakharoff/tweetapi/model"
	"github.com/leosakharoff/tweetapi/model/sqlite"
)

var (
	dbPath = kingpin.Flag("db", "sqlite database path.").
		Default("/tmp/tweetapi.db").String()
	name = kingpin.Arg("name", "display name of the new user.").Required().String()
)

func main() {
	kingpin.Parse()
	os.Exit(run())
}

func run() int {
	db, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Error(err)
		return 1
	}
	defer db.Close()

	if err := sqlite.EnsureSchema(db); err != nil {
		log.Error(err)
		return 1
	}

	key := uuid.NewString()
	id, err := sqlite.NewUserService(db).Insert(&model.User{Name: *name, APIKey: key})
	if err != nil {
		log.Error(err)
		return 1
	}

	log.WithFields(log.Fields{"id": id, "api_key": key}).Info("user created")
	return 0
}
