// Package service composes the follow graph, feed and profile reads and
// guards the invariants on follows, likes and tweet ownership. It holds no
// state of its own: every call re-reads the store.
package service

import (
	"github.com/pkg/errors"

	"github.com/leosakharoff/tweetapi/model"
)

// Service runs the application operations over the table services.
// Callers pass an already-authenticated acting user id; api-key resolution
// happens at the transport layer.
type Service struct {
	users   model.UserService
	tweets  model.TweetService
	media   model.MediaService
	likes   model.LikeService
	follows model.FollowService
}

// New creates a Service over the given table services.
func New(users model.UserService, tweets model.TweetService,
	media model.MediaService, likes model.LikeService,
	follows model.FollowService) *Service {

	return &Service{
		users:   users,
		tweets:  tweets,
		media:   media,
		likes:   likes,
		follows: follows,
	}
}

// Feed returns the tweets authored by anyone userID follows, newest first,
// enriched with author identity, attachment URLs and resolved likes.
func (s *Service) Feed(userID int64) ([]model.FeedTweet, error) {
	following, err := s.follows.Following(userID)
	if err != nil {
		return nil, err
	}

	feed := []model.FeedTweet{}
	if len(following) == 0 {
		return feed, nil
	}

	authors := make(map[int64]model.Identity, len(following))
	authorIDs := make([]int64, 0, len(following))
	for _, id := range following {
		authors[id.ID] = id
		authorIDs = append(authorIDs, id.ID)
	}

	tweets, err := s.tweets.ByAuthors(authorIDs)
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return feed, nil
	}

	tweetIDs := make([]int64, len(tweets))
	for i, t := range tweets {
		tweetIDs[i] = t.ID
	}

	media, err := s.media.ByTweets(tweetIDs)
	if err != nil {
		return nil, err
	}
	attachments := make(map[int64][]string)
	for i := range media {
		m := &media[i]
		attachments[m.TweetID.Int64] = append(attachments[m.TweetID.Int64], m.URL())
	}

	likes, err := s.likes.ByTweets(tweetIDs)
	if err != nil {
		return nil, err
	}
	likesByTweet := make(map[int64][]model.LikeSummary)
	for _, l := range likes {
		likesByTweet[l.TweetID] = append(likesByTweet[l.TweetID], l)
	}

	for _, t := range tweets {
		author, ok := authors[t.AuthorID]
		if !ok {
			return nil, errors.Errorf(
				"tweet %d references missing author %d", t.ID, t.AuthorID)
		}

		ft := model.FeedTweet{
			ID:          t.ID,
			Content:     t.Content,
			Attachments: attachments[t.ID],
			Author:      author,
			Likes:       likesByTweet[t.ID],
		}
		if ft.Attachments == nil {
			ft.Attachments = []string{}
		}
		if ft.Likes == nil {
			ft.Likes = []model.LikeSummary{}
		}
		feed = append(feed, ft)
	}

	return feed, nil
}

// Profile returns the user page for userID: identity plus followers and
// following lists.
func (s *Service) Profile(userID int64) (*model.Profile, error) {
	u, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.follows.Followers(userID)
	if err != nil {
		return nil, err
	}

	following, err := s.follows.Following(userID)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		ID:        u.ID,
		Name:      u.Name,
		Followers: followers,
		Following: following,
	}, nil
}

// Follow makes actorID a follower of targetID.
func (s *Service) Follow(actorID, targetID int64) error {
	if actorID == targetID {
		return model.ErrSelfFollow
	}

	if _, err := s.users.ByID(targetID); err != nil {
		return err
	}

	// Pre-check for the friendly error; the edge table's primary key is
	// the backstop under concurrent requests.
	following, err := s.follows.Exists(targetID, actorID)
	if err != nil {
		return err
	}
	if following {
		return model.ErrAlreadyFollowing
	}

	return s.follows.Insert(&model.Follow{UserID: targetID, FollowerID: actorID})
}

// Unfollow removes actorID from targetID's followers.
func (s *Service) Unfollow(actorID, targetID int64) error {
	if _, err := s.users.ByID(targetID); err != nil {
		return err
	}

	return s.follows.Delete(targetID, actorID)
}

// Like records that actorID liked tweetID.
func (s *Service) Like(actorID, tweetID int64) error {
	if _, err := s.tweets.ByID(tweetID); err != nil {
		return err
	}

	liked, err := s.likes.Exists(tweetID, actorID)
	if err != nil {
		return err
	}
	if liked {
		return model.ErrAlreadyLiked
	}

	return s.likes.Insert(&model.Like{TweetID: tweetID, UserID: actorID})
}

// Unlike removes actorID's like from tweetID.
func (s *Service) Unlike(actorID, tweetID int64) error {
	if _, err := s.tweets.ByID(tweetID); err != nil {
		return err
	}

	return s.likes.Delete(tweetID, actorID)
}

// PostTweet creates a tweet authored by actorID, claiming the given media
// ids as attachments, and returns the new tweet id.
func (s *Service) PostTweet(actorID int64, content string, mediaIDs []int64) (int64, error) {
	t := &model.Tweet{Content: content, AuthorID: actorID}
	return s.tweets.Insert(t, mediaIDs)
}

// DeleteTweet removes tweetID if actorID is its author.
func (s *Service) DeleteTweet(actorID, tweetID int64) error {
	t, err := s.tweets.ByID(tweetID)
	if err != nil {
		return err
	}
	if t.AuthorID != actorID {
		return model.ErrNotTweetAuthor
	}

	return s.tweets.Delete(tweetID)
}

// SaveMedia records an uploaded attachment's extension and returns the new
// media id. The caller is responsible for writing the file itself.
func (s *Service) SaveMedia(extension string) (int64, error) {
	return s.media.Insert(&model.Media{Extension: extension})
}
