package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// UserService is the sqlite users table service.
type UserService struct {
	db runner
}

// NewUserService creates a users table service on db.
func NewUserService(db runner) UserService {
	return UserService{db: db}
}

// Insert inserts a new user and returns its id.
func (s UserService) Insert(u *model.User) (int64, error) {
	query, args, err := sq.Insert(model.UserTableName).
		Columns("name", "api_key").
		Values(u.Name, u.APIKey).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "insert user")
	}

	return res.LastInsertId()
}

// ByID looks up a user by id. Returns model.ErrUserNotFound if absent.
func (s UserService) ByID(id int64) (*model.User, error) {
	return s.scanOne(sq.Eq{"id": id}, model.ErrUserNotFound)
}

// ByAPIKey resolves an api key to its user. Returns model.ErrInvalidAPIKey
// if no user holds the key.
func (s UserService) ByAPIKey(key string) (*model.User, error) {
	return s.scanOne(sq.Eq{"api_key": key}, model.ErrInvalidAPIKey)
}

func (s UserService) scanOne(pred sq.Eq, absent error) (*model.User, error) {
	query, args, err := sq.Select("id", "name", "api_key").
		From(model.UserTableName).Where(pred).ToSql()
	if err != nil {
		return nil, err
	}

	var u model.User
	err = s.db.QueryRow(query, args...).Scan(&u.ID, &u.Name, &u.APIKey)
	if err == sql.ErrNoRows {
		return nil, absent
	} else if err != nil {
		return nil, errors.Wrap(err, "select user")
	}

	return &u, nil
}
