package model

// TweetTableName is the tweets table name.
const TweetTableName = "tweets"

// Tweet is a posted message.
type Tweet struct {
	ID       int64
	Content  string
	AuthorID int64
}

// FeedTweet is a tweet enriched for the feed: author identity resolved,
// attachments as access URLs, likes resolved to liker identities.
type FeedTweet struct {
	ID          int64         `json:"id"`
	Content     string        `json:"content"`
	Attachments []string      `json:"attachments"`
	Author      Identity      `json:"author"`
	Likes       []LikeSummary `json:"likes"`
}

// TweetService is the tweets table service interface.
//
// Insert and Delete are transactional: Insert claims the given media rows
// together with the tweet row, Delete removes the tweet's likes and media
// rows in the same commit.
type TweetService interface {
	Insert(t *Tweet, mediaIDs []int64) (int64, error)
	ByID(id int64) (*Tweet, error)
	ByAuthors(authorIDs []int64) ([]Tweet, error)
	Delete(id int64) error
}
