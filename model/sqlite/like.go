package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// LikeService is the sqlite likes table service.
type LikeService struct {
	db runner
}

// NewLikeService creates a likes table service on db.
func NewLikeService(db runner) LikeService {
	return LikeService{db: db}
}

// Insert adds a like. A duplicate hits the composite primary key and is
// reported as model.ErrAlreadyLiked.
func (s LikeService) Insert(l *model.Like) error {
	query, args, err := sq.Insert(model.LikeTableName).
		Columns("tweet_id", "user_id").
		Values(l.TweetID, l.UserID).ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		if isPrimaryKeyViolation(err) {
			return model.ErrAlreadyLiked
		}
		return errors.Wrap(err, "insert like")
	}

	return nil
}

// Delete removes a like. Returns model.ErrNotLiked if it did not exist.
func (s LikeService) Delete(tweetID, userID int64) error {
	query, args, err := sq.Delete(model.LikeTableName).
		Where(sq.Eq{"tweet_id": tweetID, "user_id": userID}).ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "delete like")
	}

	cnt, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if cnt < 1 {
		return model.ErrNotLiked
	}

	return nil
}

// Exists reports whether userID has liked tweetID.
func (s LikeService) Exists(tweetID, userID int64) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").From(model.LikeTableName).
		Where(sq.Eq{"tweet_id": tweetID, "user_id": userID}).ToSql()
	if err != nil {
		return false, err
	}

	var cnt int
	if err := s.db.QueryRow(query, args...).Scan(&cnt); err != nil {
		return false, errors.Wrap(err, "select like")
	}

	return cnt > 0, nil
}

// ByTweets returns the likes on the given tweets, each resolved to the
// liking user's identity. A like whose user no longer exists is a
// referential integrity fault and fails the whole read.
func (s LikeService) ByTweets(tweetIDs []int64) ([]model.LikeSummary, error) {
	query, args, err := sq.Select("l.tweet_id", "l.user_id", "u.name").
		From(model.LikeTableName + " l").
		LeftJoin(model.UserTableName + " u ON u.id = l.user_id").
		Where(sq.Eq{"l.tweet_id": tweetIDs}).
		OrderBy("l.tweet_id", "l.user_id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select likes")
	}
	defer rows.Close()

	likes := []model.LikeSummary{}
	for rows.Next() {
		var l model.LikeSummary
		var name sql.NullString
		if err := rows.Scan(&l.TweetID, &l.UserID, &name); err != nil {
			return nil, err
		}
		if !name.Valid {
			return nil, errors.Errorf(
				"like on tweet %d references missing user %d", l.TweetID, l.UserID)
		}
		l.Name = name.String
		likes = append(likes, l)
	}

	return likes, rows.Err()
}
