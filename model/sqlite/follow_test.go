package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/leosakharoff/tweetapi/model"
	"github.com/leosakharoff/tweetapi/model/sqlite"
)

type followTestSuite struct {
	suite.Suite

	db      *sql.DB
	service model.FollowService

	alice, bob, carol *model.User
}

func TestFollowSuite(t *testing.T) {
	suite.Run(t, new(followTestSuite))
}

func (s *followTestSuite) SetupSuite() {
	s.db = openTestDB(s.T())
	s.service = sqlite.NewFollowService(s.db)
}

func (s *followTestSuite) SetupTest() {
	resetTables(s.T(), s.db)
	s.alice = createTestUser(s.T(), s.db, "alice")
	s.bob = createTestUser(s.T(), s.db, "bob")
	s.carol = createTestUser(s.T(), s.db, "carol")
}

func (s *followTestSuite) TestInsertExists() {
	exists, err := s.service.Exists(s.bob.ID, s.alice.ID)
	s.NoError(err)
	s.False(exists)

	err = s.service.Insert(&model.Follow{UserID: s.bob.ID, FollowerID: s.alice.ID})
	s.NoError(err)

	exists, err = s.service.Exists(s.bob.ID, s.alice.ID)
	s.NoError(err)
	s.True(exists)

	// The edge is directed.
	exists, err = s.service.Exists(s.alice.ID, s.bob.ID)
	s.NoError(err)
	s.False(exists)
}

func (s *followTestSuite) TestDuplicateInsert() {
	f := &model.Follow{UserID: s.bob.ID, FollowerID: s.alice.ID}
	s.NoError(s.service.Insert(f))

	err := s.service.Insert(f)
	s.ErrorIs(err, model.ErrAlreadyFollowing)
	s.Equal(1, countRows(s.T(), s.db, model.FollowerTableName))
}

func (s *followTestSuite) TestDeleteMissingEdge() {
	err := s.service.Delete(s.bob.ID, s.alice.ID)
	s.ErrorIs(err, model.ErrNotFollowing)
}

func (s *followTestSuite) TestInsertDeleteRoundTrip() {
	s.NoError(s.service.Insert(&model.Follow{UserID: s.bob.ID, FollowerID: s.alice.ID}))
	s.NoError(s.service.Delete(s.bob.ID, s.alice.ID))
	s.Equal(0, countRows(s.T(), s.db, model.FollowerTableName))
}

func (s *followTestSuite) TestFollowersFollowing() {
	// alice and carol follow bob; bob follows alice.
	s.NoError(s.service.Insert(&model.Follow{UserID: s.bob.ID, FollowerID: s.alice.ID}))
	s.NoError(s.service.Insert(&model.Follow{UserID: s.bob.ID, FollowerID: s.carol.ID}))
	s.NoError(s.service.Insert(&model.Follow{UserID: s.alice.ID, FollowerID: s.bob.ID}))

	followers, err := s.service.Followers(s.bob.ID)
	s.NoError(err)
	s.Equal([]model.Identity{s.alice.Identity(), s.carol.Identity()}, followers)

	following, err := s.service.Following(s.bob.ID)
	s.NoError(err)
	s.Equal([]model.Identity{s.alice.Identity()}, following)

	// No edges touch carol as followee, none as follower beyond bob.
	followers, err = s.service.Followers(s.carol.ID)
	s.NoError(err)
	s.Empty(followers)
}
