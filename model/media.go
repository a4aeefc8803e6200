package model

import (
	"database/sql"
	"fmt"
)

// MediaTableName is the media table name.
const MediaTableName = "media"

// DefaultExtension is used for media rows recorded without one.
const DefaultExtension = ".jpg"

// Media is an uploaded attachment. TweetID is null until the media is
// claimed by a posted tweet.
type Media struct {
	ID        int64
	Extension string
	TweetID   sql.NullInt64
}

// URL derives the access URL served by the storage file server.
func (m *Media) URL() string {
	ext := m.Extension
	if ext == "" {
		ext = DefaultExtension
	}
	return fmt.Sprintf("/storage/%d%s", m.ID, ext)
}

// MediaService is the media table service interface.
type MediaService interface {
	Insert(m *Media) (int64, error)
	ByTweets(tweetIDs []int64) ([]Media, error)
}
