package main

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/leosakharoff/tweetapi/api"
	"github.com/leosakharoff/tweetapi/config"
	"github.com/leosakharoff/tweetapi/model/sqlite"
	"github.com/leosakharoff/tweetapi/service"
	"github.com/leosakharoff/tweetapi/storage"
)

var configPath = kingpin.Flag("config", "config file path.").
	Default("etc/config.toml").String()

func main() {
	kingpin.Parse()
	os.Exit(run())
}

func run() int {
	conf, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Error(err)
		return 1
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Error(err)
		return 1
	}
	logger := log.New()
	logger.SetLevel(level)

	db, err := sqlite.Open(conf.DBPath)
	if err != nil {
		logger.Error(err)
		return 1
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error(err)
		return 1
	}
	if err := sqlite.EnsureSchema(db); err != nil {
		logger.Error(err)
		return 1
	}

	files, err := storage.NewDiskStore(conf.StorageDir)
	if err != nil {
		logger.Error(err)
		return 1
	}

	users := sqlite.NewUserService(db)
	svc := service.New(
		users,
		sqlite.NewTweetService(db),
		sqlite.NewMediaService(db),
		sqlite.NewLikeService(db),
		sqlite.NewFollowService(db),
	)

	handler := api.NewHandler(svc, users, files, logger)

	logger.WithField("addr", conf.Addr).Info("listening")
	if err := http.ListenAndServe(conf.Addr, handler.Router(files.Dir())); err != nil {
		logger.Error(err)
		return 1
	}

	return 0
}
