package models

// Member roles within a circle. The creator is the first admin.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Circle represents a topical group that owns posts, chat messages and
// memberships.
type Circle struct {
	// ID is the unique identifier for the circle (UUID format).
	ID string `json:"id"`

	// Name is the display name of the circle (e.g., "Book Club").
	Name string `json:"name"`

	// Description is a short blurb shown on discovery cards.
	Description string `json:"description"`

	// IsPrivate hides the circle from the public discover listing.
	IsPrivate bool `json:"is_private"`

	// CoverImageURL is the public URL of the cover image, empty if none.
	CoverImageURL string `json:"cover_image_url"`

	// CreatedBy is the user ID of the creator, who is implicitly the
	// first admin member.
	CreatedBy string `json:"created_by"`

	MembersCount int64 `json:"members_count"`
	PostsCount   int64 `json:"posts_count"`

	// CreatedAt is the Unix millisecond timestamp when the circle was
	// created.
	CreatedAt int64 `json:"created_at"`
}

// Membership is the many-to-many join of users and circles.
//
// There is no uniqueness constraint on (circle, user); joining twice
// produces two records.
type Membership struct {
	ID       string `json:"id"`
	CircleID string `json:"circle_id"`
	UserID   string `json:"user_id"`

	// Role is RoleAdmin or RoleMember.
	Role string `json:"role"`

	// JoinedAt is the Unix millisecond timestamp when the membership was
	// created.
	JoinedAt int64 `json:"joined_at"`
}
