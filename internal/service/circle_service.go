package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jagv091205/Circle/internal/blob"
	"github.com/jagv091205/Circle/internal/models"
	"github.com/jagv091205/Circle/internal/storage"
)

const (
	// discoverLimit caps the public circle listing.
	discoverLimit = 20
	// feedLimit caps the per-circle post preview on discovery.
	feedLimit = 10
)

// CircleService handles circle creation, membership and discovery.
type CircleService struct {
	store storage.Store
	blobs blob.Store
}

// NewCircleService creates a new CircleService.
func NewCircleService(store storage.Store, blobs blob.Store) *CircleService {
	return &CircleService{store: store, blobs: blobs}
}

// CircleDetail is the assembled state of the circle detail screen.
type CircleDetail struct {
	Circle  *models.Circle        `json:"circle"`
	Posts   []*models.Post        `json:"posts"`
	Members []*models.Membership  `json:"members"`
	Chat    []*models.ChatMessage `json:"chat"`
}

// Create inserts a new circle and exactly one admin membership for the
// creator. If a cover image upload is attached it happens first and its
// public URL is embedded in the circle document.
//
// The two inserts are independent writes, not a transaction; a failed
// membership insert leaves the circle document behind.
func (s *CircleService) Create(ctx context.Context, creatorID, name, description string, isPrivate bool, cover *Upload) (*models.Circle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	coverURL := ""
	if cover != nil {
		path := blob.CoverImagePath(cover.Filename)
		if err := s.blobs.Put(ctx, path, cover.Content); err != nil {
			return nil, fmt.Errorf("failed to upload cover image: %w", err)
		}
		coverURL = s.blobs.URL(path)
	}

	circle := &models.Circle{
		Name:          name,
		Description:   description,
		IsPrivate:     isPrivate,
		CoverImageURL: coverURL,
		CreatedBy:     creatorID,
		MembersCount:  1,
		PostsCount:    0,
	}
	if err := s.store.CreateCircle(ctx, circle); err != nil {
		// An already-uploaded cover is not cleaned up here.
		return nil, fmt.Errorf("failed to create circle: %w", err)
	}

	membership := &models.Membership{
		CircleID: circle.ID,
		UserID:   creatorID,
		Role:     models.RoleAdmin,
	}
	if err := s.store.CreateMembership(ctx, membership); err != nil {
		slog.Error("Circle created but admin membership failed", "circle_id", circle.ID, "error", err)
		return nil, fmt.Errorf("failed to create admin membership: %w", err)
	}

	slog.Info("Circle created", "circle_id", circle.ID, "created_by", creatorID, "private", isPrivate)
	return circle, nil
}

// ListForUser returns the circles the user belongs to: membership records
// first, then the per-circle detail lookups batched concurrently.
// Circles that no longer resolve are dropped from the result.
func (s *CircleService) ListForUser(ctx context.Context, userID string) ([]*models.Circle, error) {
	memberships, err := s.store.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	results := make([]*models.Circle, len(memberships))
	var wg sync.WaitGroup
	for i, m := range memberships {
		wg.Add(1)
		go func(i int, circleID string) {
			defer wg.Done()
			circle, err := s.store.GetCircle(ctx, circleID)
			if err != nil {
				slog.Warn("Membership references missing circle", "circle_id", circleID, "error", err)
				return
			}
			results[i] = circle
		}(i, m.CircleID)
	}
	wg.Wait()

	circles := make([]*models.Circle, 0, len(results))
	for _, c := range results {
		if c != nil {
			circles = append(circles, c)
		}
	}
	return circles, nil
}

// Discover returns public circles ordered by member count, filtered by
// term. The filter is applied in memory over the fetched page: a circle
// matches when its name or description contains the term
// case-insensitively. An empty term returns the full fetched set.
func (s *CircleService) Discover(ctx context.Context, term string) ([]*models.Circle, error) {
	circles, err := s.store.ListPublicCircles(ctx, discoverLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list public circles: %w", err)
	}

	if term == "" {
		return circles, nil
	}

	needle := strings.ToLower(term)
	filtered := make([]*models.Circle, 0, len(circles))
	for _, c := range circles {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Get retrieves a single circle.
func (s *CircleService) Get(ctx context.Context, circleID string) (*models.Circle, error) {
	return s.store.GetCircle(ctx, circleID)
}

// Feed returns the circle's most recent posts for the discovery preview.
func (s *CircleService) Feed(ctx context.Context, circleID string) ([]*models.Post, error) {
	return s.store.ListPostsByCircle(ctx, circleID, feedLimit)
}

// Members returns the circle's membership records.
func (s *CircleService) Members(ctx context.Context, circleID string) ([]*models.Membership, error) {
	return s.store.ListMembershipsByCircle(ctx, circleID)
}

// Join adds the user to the circle with the member role. No uniqueness
// check is made; joining twice creates two records.
func (s *CircleService) Join(ctx context.Context, circleID, userID string) (*models.Membership, error) {
	if _, err := s.store.GetCircle(ctx, circleID); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		CircleID: circleID,
		UserID:   userID,
		Role:     models.RoleMember,
	}
	if err := s.store.CreateMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to join circle: %w", err)
	}

	slog.Info("User joined circle", "circle_id", circleID, "user_id", userID)
	return membership, nil
}

// Detail assembles the circle detail screen: circle metadata, posts,
// members and chat, fetched one after another in that order. Latencies
// add up rather than overlap; detail is a read of four small lists so
// the serial shape is kept.
func (s *CircleService) Detail(ctx context.Context, circleID string) (*CircleDetail, error) {
	circle, err := s.store.GetCircle(ctx, circleID)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.ListPostsByCircle(ctx, circleID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	members, err := s.store.ListMembershipsByCircle(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}

	chat, err := s.store.ListChatMessages(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat: %w", err)
	}

	return &CircleDetail{
		Circle:  circle,
		Posts:   posts,
		Members: members,
		Chat:    chat,
	}, nil
}
