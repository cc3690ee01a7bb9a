package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"parfumy_back_end/internal/store"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestGate(t *testing.T) (*Gate, *fakeClock) {
	t.Helper()
	gate := NewGate(store.NewMemoryKV(), "test_secret")
	clock := &fakeClock{now: time.Now()}
	gate.now = clock.Now

	if err := gate.SetCredentials(context.Background(), "Ruth", "Ruth123"); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	return gate, clock
}

func TestDigestHex(t *testing.T) {
	// SHA-256 hexadécimal de "abc", vecteur connu
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := DigestHex("abc"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestLoginSuccess(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "Ruth", "Ruth123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	username, err := gate.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if username != "Ruth" {
		t.Fatalf("got %q", username)
	}
	if !gate.Authenticated(ctx) {
		t.Fatal("session must be active after login")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "Ruth", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	if gate.Authenticated(ctx) {
		t.Fatal("failed login must not open a session")
	}
}

func TestLoginMissingFields(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "  ", "Ruth123"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("got %v, want ErrMissingCredentials", err)
	}
	if _, err := gate.Login(ctx, "Ruth", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("got %v, want ErrMissingCredentials", err)
	}
}

func TestLockoutAfterFiveFailures(t *testing.T) {
	gate, clock := newTestGate(t)
	ctx := context.Background()

	// 4 premiers échecs : identifiants invalides, pas de verrouillage
	for i := 0; i < MaxAttempts-1; i++ {
		if _, err := gate.Login(ctx, "Ruth", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: got %v", i+1, err)
		}
	}

	// 5e échec : verrouillage armé
	var lockout *LockoutError
	if _, err := gate.Login(ctx, "Ruth", "wrong"); !errors.As(err, &lockout) {
		t.Fatalf("5th failure: got %v, want LockoutError", err)
	}

	// 6e tentative dans la fenêtre, identifiants CORRECTS : refusée sans
	// vérification
	clock.Advance(10 * time.Second)
	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); !errors.As(err, &lockout) {
		t.Fatalf("locked attempt: got %v, want LockoutError", err)
	}
	if lockout.RetryAfterSeconds() <= 0 || lockout.RetryAfterSeconds() > 60 {
		t.Fatalf("retry after %ds", lockout.RetryAfterSeconds())
	}

	// Fenêtre écoulée : vérification normale
	clock.Advance(LockoutDuration)
	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("after lockout window: %v", err)
	}
}

func TestLockoutCounterResetsAfterWindow(t *testing.T) {
	gate, clock := newTestGate(t)
	ctx := context.Background()

	for i := 0; i < MaxAttempts; i++ {
		gate.Login(ctx, "Ruth", "wrong")
	}
	clock.Advance(LockoutDuration + time.Second)

	// Le compteur est reparti de zéro : un échec isolé ne reverrouille pas
	if _, err := gate.Login(ctx, "Ruth", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestSuccessResetsAttempts(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	for i := 0; i < MaxAttempts-1; i++ {
		gate.Login(ctx, "Ruth", "wrong")
	}
	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Après un succès, il faut de nouveau 5 échecs pour verrouiller
	for i := 0; i < MaxAttempts-1; i++ {
		if _, err := gate.Login(ctx, "Ruth", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: got %v", i+1, err)
		}
	}
}

func TestSessionExpiresAfterInactivity(t *testing.T) {
	gate, clock := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(InactivityLimit - time.Second)
	if !gate.Authenticated(ctx) {
		t.Fatal("session must still be active before the limit")
	}

	clock.Advance(2 * time.Second)
	// Le drapeau stocké est toujours posé, l'expiration prime
	if gate.Authenticated(ctx) {
		t.Fatal("session must expire after the inactivity limit")
	}
}

func TestTouchRefreshesActivity(t *testing.T) {
	gate, clock := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock.Advance(InactivityLimit - time.Second)
	gate.Touch(ctx)
	clock.Advance(InactivityLimit - time.Second)

	if !gate.Authenticated(ctx) {
		t.Fatal("touch must reset the inactivity window")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	if _, err := gate.Login(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := gate.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if gate.Authenticated(ctx) {
		t.Fatal("session must be closed after logout")
	}
}

func TestUpdateCredentials(t *testing.T) {
	gate, _ := newTestGate(t)
	ctx := context.Background()

	if err := gate.UpdateCredentials(ctx, "", ""); !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("got %v, want ErrNothingToUpdate", err)
	}

	// Nom seul : le mot de passe reste valable
	if err := gate.UpdateCredentials(ctx, "Ruthie", ""); err != nil {
		t.Fatalf("UpdateCredentials: %v", err)
	}
	if _, err := gate.Login(ctx, "Ruthie", "Ruth123"); err != nil {
		t.Fatalf("login after rename: %v", err)
	}

	// Mot de passe seul
	if err := gate.UpdateCredentials(ctx, "", "NewPass1"); err != nil {
		t.Fatalf("UpdateCredentials: %v", err)
	}
	if _, err := gate.Login(ctx, "Ruthie", "NewPass1"); err != nil {
		t.Fatalf("login after password change: %v", err)
	}
	if _, err := gate.Login(ctx, "Ruthie", "Ruth123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must be rejected, got %v", err)
	}
}
