package models

// User represents a registered user account and its profile document.
type User struct {
	// ID is the unique identifier for the user (UUID format). It doubles
	// as the identity ID stamped on every document the user creates.
	ID string `json:"id"`

	// Email is the user's email address (unique, used for login).
	Email string `json:"email"`

	// DisplayName is the name shown on posts and member lists.
	DisplayName string `json:"display_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// Bio is free-form profile text.
	Bio string `json:"bio"`

	// ProfilePhotoURL is the public URL of the profile photo, empty if
	// none has been uploaded.
	ProfilePhotoURL string `json:"profile_photo_url"`

	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	PostsCount     int64 `json:"posts_count"`

	// CreatedAt is the Unix millisecond timestamp when the account was
	// created.
	CreatedAt int64 `json:"created_at"`

	// LastActive is the Unix millisecond timestamp of the last profile
	// write.
	LastActive int64 `json:"last_active"`
}

// NewUser creates a user with the zeroed profile fields that registration
// writes alongside the credential record.
func NewUser(email, displayName, passwordHash string) *User {
	return &User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}
}
