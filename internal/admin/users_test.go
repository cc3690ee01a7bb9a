package admin

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSaveUserAddsAccount(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	u, err := ctrl.SaveUser(ctx, 0, "Joy", "secret")
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if u.Username != "Joy" || u.ID == 0 {
		t.Fatalf("got %+v", u)
	}
	if got := catalog.Users(ctx); len(got) != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestSaveUserRequiresBothFields(t *testing.T) {
	ctrl, _, _ := newTestController(t)
	ctx := context.Background()

	var validation *ValidationError
	if _, err := ctrl.SaveUser(ctx, 0, "", "secret"); !errors.As(err, &validation) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if _, err := ctrl.SaveUser(ctx, 0, "Joy", ""); !errors.As(err, &validation) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}

func TestSaveUserEditSyncsActiveAdminCredentials(t *testing.T) {
	ctrl, _, clock := newTestController(t)
	ctx := context.Background()

	if err := ctrl.gate.SetCredentials(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	u, err := ctrl.SaveUser(ctx, 0, "Ruth", "Ruth123")
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	clock.Advance(time.Millisecond)
	if _, err := ctrl.SaveUser(ctx, u.ID, "Ruthie", "NewPass1"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := ctrl.gate.Username(ctx); got != "Ruthie" {
		t.Fatalf("admin username not synced, got %q", got)
	}
	if _, err := ctrl.gate.Login(ctx, "Ruthie", "NewPass1"); err != nil {
		t.Fatalf("login with synced credentials: %v", err)
	}
}

func TestSaveUserEditOtherAccountLeavesCredentials(t *testing.T) {
	ctrl, _, clock := newTestController(t)
	ctx := context.Background()

	if err := ctrl.gate.SetCredentials(ctx, "Ruth", "Ruth123"); err != nil {
		t.Fatalf("SetCredentials: %v", err)
	}
	u, err := ctrl.SaveUser(ctx, 0, "Joy", "secret")
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	clock.Advance(time.Millisecond)
	if _, err := ctrl.SaveUser(ctx, u.ID, "Joyce", "other"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := ctrl.gate.Username(ctx); got != "Ruth" {
		t.Fatalf("admin username must be untouched, got %q", got)
	}
}

func TestDeleteUserIsIdempotent(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	u, err := ctrl.SaveUser(ctx, 0, "Joy", "secret")
	if err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := ctrl.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ctrl.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
	if got := catalog.Users(ctx); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
