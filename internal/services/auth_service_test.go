package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"budgetbites/internal/config"
	"budgetbites/internal/testutil"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTExpirationDur: time.Hour,
	}
}

func TestSignInIssuesSessionToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuthService(db, testConfig())

	session, err := svc.SignIn("user-123", "user@example.com", "access", "refresh")
	testutil.AssertNoError(t, err)

	if session.UserID != "user-123" {
		t.Errorf("expected subject user-123, got %s", session.UserID)
	}

	token, err := jwt.Parse(session.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub != "user-123" {
		t.Errorf("expected sub claim user-123, got %q (%v)", sub, err)
	}

	state, err := svc.GetAuthState()
	testutil.AssertNoError(t, err)
	if !state.IsLoggedIn || state.UserID == nil || *state.UserID != "user-123" {
		t.Errorf("expected mirrored session, got %+v", state)
	}
}

func TestSignInRequiresUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuthService(db, testConfig())

	_, err := svc.SignIn("", "user@example.com", "access", "refresh")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}

func TestSignOutClearsState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuthService(db, testConfig())

	_, err := svc.SignIn("user-123", "user@example.com", "access", "refresh")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, svc.SignOut())

	state, err := svc.GetAuthState()
	testutil.AssertNoError(t, err)
	if state.IsLoggedIn || state.UserID != nil || state.AccessToken != nil {
		t.Errorf("expected cleared state, got %+v", state)
	}
}

func TestGetAuthStateDefault(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuthService(db, testConfig())

	state, err := svc.GetAuthState()
	testutil.AssertNoError(t, err)
	if state.IsLoggedIn {
		t.Error("expected signed-out default")
	}
}
