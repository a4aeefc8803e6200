package model

// FollowerTableName is the follow-edge table name.
const FollowerTableName = "followers"

// Follow is a directed edge in the follow graph. Columns are
// followee-centric: UserID is the account being followed, FollowerID the
// account following it. The pair is the primary key.
type Follow struct {
	UserID     int64
	FollowerID int64
}

// FollowService is the follow-edge table service interface.
type FollowService interface {
	Insert(f *Follow) error
	Delete(userID, followerID int64) error
	Exists(userID, followerID int64) (bool, error)
	Followers(userID int64) ([]Identity, error)
	Following(followerID int64) ([]Identity, error)
}

// Profile is a user page: identity plus both sides of the follow graph.
type Profile struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Followers []Identity `json:"followers"`
	Following []Identity `json:"following"`
}
