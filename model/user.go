package model

// UserTableName is the users table name.
const UserTableName = "users"

// User is a registered account. The API key is an opaque credential
// compared by equality, not a cryptographic secret.
type User struct {
	ID     int64
	Name   string
	APIKey string
}

// Identity is the public projection of a user.
type Identity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Identity returns the public projection of u.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name}
}

// UserService is the users table service interface.
type UserService interface {
	Insert(u *User) (int64, error)
	ByID(id int64) (*User, error)
	ByAPIKey(key string) (*User, error)
}
