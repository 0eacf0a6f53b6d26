package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jagv091205/Circle/internal/models"
)

// memUserStorage is an in-memory UserStorage for authenticator tests.
type memUserStorage struct {
	byEmail map[string]*models.User
}

func newMemUserStorage() *memUserStorage {
	return &memUserStorage{byEmail: make(map[string]*models.User)}
}

func (m *memUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "u-" + user.Email
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	authenticator := NewPasswordAuthenticator(newMemUserStorage())

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "a@example.com", "A", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("Expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("registers and hashes the password", func(t *testing.T) {
		user, err := authenticator.Register(ctx, "a@example.com", "A", "password123")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.PasswordHash == "password123" || user.PasswordHash == "" {
			t.Error("Expected password to be hashed")
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "a@example.com", "A2", "password456")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("Expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("authenticates valid credentials", func(t *testing.T) {
		user, err := authenticator.Authenticate(ctx, "a@example.com", "password123")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Email != "a@example.com" {
			t.Errorf("Unexpected user: %+v", user)
		}
	})

	t.Run("rejects wrong password and unknown email", func(t *testing.T) {
		if _, err := authenticator.Authenticate(ctx, "a@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := authenticator.Authenticate(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "U1", Email: "a@example.com"}

	t.Run("round-trips claims", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != "U1" || claims.Email != "a@example.com" {
			t.Errorf("Unexpected claims: %+v", claims)
		}
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		other := NewJWTManager("a-different-secret-entirely-here", time.Hour)
		token, err := other.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
