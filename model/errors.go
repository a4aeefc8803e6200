package model

import "github.com/pkg/errors"

// The closed set of user-facing failures. Every service operation either
// returns a composed result or exactly one of these; anything else is an
// internal fault.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTweetNotFound    = errors.New("tweet not found")
	ErrNotTweetAuthor   = errors.New("you can delete only your own tweets")
	ErrAlreadyLiked     = errors.New("you have already liked this tweet")
	ErrNotLiked         = errors.New("you have not liked this tweet")
	ErrSelfFollow       = errors.New("you can not follow yourself")
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrNotFollowing     = errors.New("you are not following this user")
	ErrInvalidAPIKey    = errors.New("invalid api key")
)
