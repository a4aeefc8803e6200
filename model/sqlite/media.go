package sqlite

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// MediaService is the sqlite media table service.
type MediaService struct {
	db runner
}

// NewMediaService creates a media table service on db.
func NewMediaService(db runner) MediaService {
	return MediaService{db: db}
}

// Insert inserts an unclaimed media row and returns its id.
func (s MediaService) Insert(m *model.Media) (int64, error) {
	query, args, err := sq.Insert(model.MediaTableName).
		Columns("extension", "tweet_id").
		Values(m.Extension, m.TweetID).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "insert media")
	}

	return res.LastInsertId()
}

// ByTweets returns the media rows claimed by the given tweets.
func (s MediaService) ByTweets(tweetIDs []int64) ([]model.Media, error) {
	query, args, err := sq.Select("id", "extension", "tweet_id").
		From(model.MediaTableName).
		Where(sq.Eq{"tweet_id": tweetIDs}).
		OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select media")
	}
	defer rows.Close()

	media := []model.Media{}
	for rows.Next() {
		var m model.Media
		if err := rows.Scan(&m.ID, &m.Extension, &m.TweetID); err != nil {
			return nil, err
		}
		media = append(media, m)
	}

	return media, rows.Err()
}
