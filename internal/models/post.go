package models

// Post represents a piece of content published inside a circle.
type Post struct {
	ID       string `json:"id"`
	CircleID string `json:"circle_id"`

	// Content is the post body. The store accepts empty content; the
	// input layer is the only place that prevents it.
	Content string `json:"content"`

	// CreatedBy is the author's user ID.
	CreatedBy string `json:"created_by"`

	// ImageURL is the public URL of an attached image, empty if none.
	ImageURL string `json:"image_url"`

	LikesCount    int64 `json:"likes_count"`
	CommentsCount int64 `json:"comments_count"`

	// CreatedAt is the Unix millisecond timestamp when the post was
	// created. Post listings are ordered by it descending.
	CreatedAt int64 `json:"created_at"`
}

// ChatMessage represents a single message in a circle's chat.
type ChatMessage struct {
	ID       string `json:"id"`
	CircleID string `json:"circle_id"`
	Content  string `json:"content"`

	// CreatedBy is the sender's user ID.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix millisecond timestamp when the message was
	// sent. Chat history is ordered by it ascending.
	CreatedAt int64 `json:"created_at"`
}
