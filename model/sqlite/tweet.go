package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// TweetService is the sqlite tweets table service. It owns the tweet
// aggregate: inserting a tweet claims its media rows, deleting one removes
// its likes and media rows, each in a single transaction.
type TweetService struct {
	db runner
}

// NewTweetService creates a tweets table service on db.
func NewTweetService(db runner) TweetService {
	return TweetService{db: db}
}

// Insert inserts a tweet and claims the given media rows in one commit.
// Unknown media ids are ignored, matching the upload flow where a stale id
// simply never shows up as an attachment.
func (s TweetService) Insert(t *model.Tweet, mediaIDs []int64) (id int64, err error) {
	tx, err := s.begin()
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	query, args, err := sq.Insert(model.TweetTableName).
		Columns("content", "author_id").
		Values(t.Content, t.AuthorID).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "insert tweet")
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(mediaIDs) > 0 {
		query, args, err = sq.Update(model.MediaTableName).
			Set("tweet_id", id).
			Where(sq.Eq{"id": mediaIDs}).ToSql()
		if err != nil {
			return 0, err
		}
		if _, err = tx.Exec(query, args...); err != nil {
			return 0, errors.Wrap(err, "attach media")
		}
	}

	return id, nil
}

// ByID looks up a tweet by id. Returns model.ErrTweetNotFound if absent.
func (s TweetService) ByID(id int64) (*model.Tweet, error) {
	query, args, err := sq.Select("id", "content", "author_id").
		From(model.TweetTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var t model.Tweet
	err = s.db.QueryRow(query, args...).Scan(&t.ID, &t.Content, &t.AuthorID)
	if err == sql.ErrNoRows {
		return nil, model.ErrTweetNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "select tweet")
	}

	return &t, nil
}

// ByAuthors returns all tweets authored by the given users, newest first.
func (s TweetService) ByAuthors(authorIDs []int64) ([]model.Tweet, error) {
	query, args, err := sq.Select("id", "content", "author_id").
		From(model.TweetTableName).
		Where(sq.Eq{"author_id": authorIDs}).
		OrderBy("id DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select tweets")
	}
	defer rows.Close()

	tweets := []model.Tweet{}
	for rows.Next() {
		var t model.Tweet
		if err := rows.Scan(&t.ID, &t.Content, &t.AuthorID); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}

	return tweets, rows.Err()
}

// Delete removes a tweet together with its likes and media rows.
func (s TweetService) Delete(id int64) (err error) {
	tx, err := s.begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	// Likes and media rows reference the tweet, so they go first.
	for _, del := range []sq.DeleteBuilder{
		sq.Delete(model.LikeTableName).Where(sq.Eq{"tweet_id": id}),
		sq.Delete(model.MediaTableName).Where(sq.Eq{"tweet_id": id}),
		sq.Delete(model.TweetTableName).Where(sq.Eq{"id": id}),
	} {
		query, args, err := del.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return errors.Wrap(err, "delete tweet")
		}
	}

	return nil
}

func (s TweetService) begin() (*sql.Tx, error) {
	b, ok := s.db.(beginner)
	if !ok {
		return nil, errors.New("runner has no method Begin")
	}
	return b.Begin()
}
