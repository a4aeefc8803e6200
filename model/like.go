package model

// LikeTableName is the likes table name.
const LikeTableName = "likes"

// Like is an edge stating "this user liked this tweet". The pair is the
// primary key, so at most one like exists per (tweet, user).
type Like struct {
	TweetID int64
	UserID  int64
}

// LikeSummary is a like resolved to the liking user's identity.
type LikeSummary struct {
	TweetID int64  `json:"-"`
	UserID  int64  `json:"user_id"`
	Name    string `json:"name"`
}

// LikeService is the likes table service interface.
type LikeService interface {
	Insert(l *Like) error
	Delete(tweetID, userID int64) error
	Exists(tweetID, userID int64) (bool, error)
	ByTweets(tweetIDs []int64) ([]LikeSummary, error)
}
