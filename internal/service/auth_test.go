package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
	"github.com/msomdec/taskdeck/internal/repository/sqlite"
	"github.com/msomdec/taskdeck/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, time.Hour, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "new@example.com", "password123", "New", "User")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password must not be stored in plaintext")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "dup@example.com", "password123", "User", "One")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err = auth.Register(ctx, "dup@example.com", "password456", "User", "Two")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
	}{
		{"empty email", "", "password123", "First", "Last"},
		{"email without at sign", "not-an-email", "password123", "First", "Last"},
		{"short password", "a@b.com", "12345", "First", "Last"},
		{"empty first name", "a@b.com", "password123", "", "Last"},
		{"empty last name", "a@b.com", "password123", "First", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Register(ctx, tt.email, tt.password, tt.firstName, tt.lastName)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "login@example.com", "password123", "Log", "In")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, loggedIn, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if loggedIn == nil || loggedIn.ID != user.ID || loggedIn.Email != user.Email {
		t.Fatalf("expected the registered user back from Login, got %+v", loggedIn)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user id %d from token, got %d", user.ID, userID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "wrong@example.com", "password123", "Wrong", "PW"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := auth.Login(ctx, "wrong@example.com", "different456")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth := newTestAuthService(t)

	// Must be the same error as a wrong password so callers cannot
	// probe which accounts exist.
	_, _, err := auth.Login(context.Background(), "nobody@example.com", "password123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not.a.jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	db := newTestDB(t)
	// Negative TTL issues tokens that are already expired.
	auth := service.NewAuthService(db.Users(), testJWTSecret, -time.Hour, 4)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "expired@example.com", "password123", "Ex", "Pired"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := auth.Login(ctx, "expired@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = auth.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	db := newTestDB(t)
	auth := service.NewAuthService(db.Users(), testJWTSecret, time.Hour, 4)
	impostor := service.NewAuthService(db.Users(), "a-completely-different-secret", time.Hour, 4)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "secret@example.com", "password123", "Se", "Cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, _, err := impostor.Login(ctx, "secret@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = auth.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign signature, got %v", err)
	}
}
