package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/leosakharoff/tweetapi/model"
	"github.com/leosakharoff/tweetapi/model/sqlite"
)

type likeTestSuite struct {
	suite.Suite

	db      *sql.DB
	service model.LikeService

	alice, bob *model.User
	tweetID    int64
}

func TestLikeSuite(t *testing.T) {
	suite.Run(t, new(likeTestSuite))
}

func (s *likeTestSuite) SetupSuite() {
	s.db = openTestDB(s.T())
	s.service = sqlite.NewLikeService(s.db)
}

func (s *likeTestSuite) SetupTest() {
	resetTables(s.T(), s.db)
	s.alice = createTestUser(s.T(), s.db, "alice")
	s.bob = createTestUser(s.T(), s.db, "bob")

	id, err := sqlite.NewTweetService(s.db).Insert(
		&model.Tweet{Content: "hello", AuthorID: s.bob.ID}, nil)
	s.NoError(err)
	s.tweetID = id
}

func (s *likeTestSuite) TestInsertDuplicate() {
	l := &model.Like{TweetID: s.tweetID, UserID: s.alice.ID}
	s.NoError(s.service.Insert(l))

	err := s.service.Insert(l)
	s.ErrorIs(err, model.ErrAlreadyLiked)
	s.Equal(1, countRows(s.T(), s.db, model.LikeTableName))
}

func (s *likeTestSuite) TestDeleteMissing() {
	err := s.service.Delete(s.tweetID, s.alice.ID)
	s.ErrorIs(err, model.ErrNotLiked)
}

func (s *likeTestSuite) TestExists() {
	liked, err := s.service.Exists(s.tweetID, s.alice.ID)
	s.NoError(err)
	s.False(liked)

	s.NoError(s.service.Insert(&model.Like{TweetID: s.tweetID, UserID: s.alice.ID}))

	liked, err = s.service.Exists(s.tweetID, s.alice.ID)
	s.NoError(err)
	s.True(liked)
}

func (s *likeTestSuite) TestByTweets() {
	s.NoError(s.service.Insert(&model.Like{TweetID: s.tweetID, UserID: s.alice.ID}))
	s.NoError(s.service.Insert(&model.Like{TweetID: s.tweetID, UserID: s.bob.ID}))

	likes, err := s.service.ByTweets([]int64{s.tweetID})
	s.NoError(err)
	s.Len(likes, 2)
	s.Equal(s.alice.ID, likes[0].UserID)
	s.Equal("alice", likes[0].Name)
	s.Equal(s.bob.ID, likes[1].UserID)
	s.Equal("bob", likes[1].Name)
}

func (s *likeTestSuite) TestByTweetsDanglingUser() {
	// Disable enforcement to plant a like pointing at a user that does not
	// exist; the read must fail instead of skipping the row. The pragma is
	// per connection, so pin one from the pool.
	ctx := context.Background()
	conn, err := s.db.Conn(ctx)
	s.NoError(err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF")
	s.NoError(err)
	_, err = conn.ExecContext(ctx, "INSERT INTO likes (tweet_id, user_id) VALUES (?, ?)",
		s.tweetID, s.bob.ID+1000)
	s.NoError(err)
	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	s.NoError(err)

	_, err = s.service.ByTweets([]int64{s.tweetID})
	s.Error(err)
	s.Contains(err.Error(), "missing user")
}
