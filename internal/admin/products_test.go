package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"parfumy_back_end/internal/auth"
	"parfumy_back_end/internal/store"
)

// newTestController monte un contrôleur sur un store mémoire, avec une
// horloge contrôlée pour des ids produit déterministes.
func newTestController(t *testing.T) (*Controller, *store.Catalog, *fakeClock) {
	t.Helper()
	kv := store.NewMemoryKV()
	catalog := store.NewCatalog(kv)
	gate := auth.NewGate(kv, "test_secret")
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}

	c := NewController(catalog, gate)
	c.now = clock.Now
	return c, catalog, clock
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func validInput() ProductInput {
	return ProductInput{Title: "Rose", Description: "floral", Price: "$10", Category: "gift-sets", Image: "x"}
}

func TestAddProductRequiredFields(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	cases := []struct {
		field  string
		mutate func(*ProductInput)
	}{
		{"title", func(in *ProductInput) { in.Title = "  " }},
		{"desc", func(in *ProductInput) { in.Description = "" }},
		{"price", func(in *ProductInput) { in.Price = "" }},
		{"category", func(in *ProductInput) { in.Category = "" }},
		{"image", func(in *ProductInput) { in.Image = "" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := ctrl.AddOrUpsertProduct(ctx, in)

		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("%s: got %v, want ValidationError", tc.field, err)
		}
		if validation.Field != tc.field {
			t.Errorf("got field %q, want %q", validation.Field, tc.field)
		}
		if got := catalog.Products(ctx); len(got) != 0 {
			t.Fatalf("%s: failed validation must not write, got %v", tc.field, got)
		}
	}
}

func TestUpsertReplacesInsteadOfDuplicating(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	first, err := ctrl.AddOrUpsertProduct(ctx, validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Même (titre, catégorie), prix différent, pas de nouvelle image
	in := validInput()
	in.Price = "$12"
	in.Image = ""
	updated, err := ctrl.AddOrUpsertProduct(ctx, in)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	products := catalog.Products(ctx)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if updated.ID != first.ID {
		t.Errorf("id changed on upsert: %d -> %d", first.ID, updated.ID)
	}
	if products[0].Price != "$12" {
		t.Errorf("got price %q, want $12", products[0].Price)
	}
	if products[0].Image != "x" {
		t.Errorf("image must be kept when omitted, got %q", products[0].Image)
	}
}

func TestUpsertKeyIsCaseInsensitive(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.AddOrUpsertProduct(ctx, validInput()); err != nil {
		t.Fatalf("add: %v", err)
	}

	in := validInput()
	in.Title = "ROSE"
	in.Category = "Gift-Sets"
	if _, err := ctrl.AddOrUpsertProduct(ctx, in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if got := catalog.Products(ctx); len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
}

func TestUpsertKeyNeverDuplicated(t *testing.T) {
	ctrl, catalog, clock := newTestController(t)
	ctx := context.Background()

	inputs := []ProductInput{
		validInput(),
		{Title: "Oud", Description: "woody", Price: "$20", Category: "niche", Image: "y"},
		{Title: "rose", Description: "updated", Price: "$11", Category: "GIFT-SETS", Image: ""},
		{Title: "Rose", Description: "again", Price: "$13", Category: "gift-sets", Image: "z"},
	}
	for _, in := range inputs {
		clock.Advance(time.Millisecond)
		if _, err := ctrl.AddOrUpsertProduct(ctx, in); err != nil {
			t.Fatalf("add %q: %v", in.Title, err)
		}
	}

	seen := map[string]bool{}
	for _, p := range catalog.Products(ctx) {
		if seen[p.UpsertKey()] {
			t.Fatalf("duplicate upsert key %q", p.UpsertKey())
		}
		seen[p.UpsertKey()] = true
	}
	if len(seen) != 2 {
		t.Fatalf("got %d distinct products, want 2", len(seen))
	}
}

func TestNewProductsArePrepended(t *testing.T) {
	ctrl, catalog, clock := newTestController(t)
	ctx := context.Background()

	if _, err := ctrl.AddOrUpsertProduct(ctx, validInput()); err != nil {
		t.Fatalf("add: %v", err)
	}
	clock.Advance(time.Millisecond)
	in := ProductInput{Title: "Oud", Description: "woody", Price: "$20", Category: "niche", Image: "y"}
	if _, err := ctrl.AddOrUpsertProduct(ctx, in); err != nil {
		t.Fatalf("add: %v", err)
	}

	products := catalog.Products(ctx)
	if products[0].Title != "Oud" {
		t.Fatalf("newest product must come first, got %q", products[0].Title)
	}
}

func TestEditProductReplacesByID(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.AddOrUpsertProduct(ctx, validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	in := ProductInput{Title: "Rose Royale", Description: "richer", Price: "$15", Category: "gift-sets"}
	edited, err := ctrl.EditProduct(ctx, p.ID, in)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	if edited.ID != p.ID {
		t.Errorf("id changed on edit: %d -> %d", p.ID, edited.ID)
	}
	if edited.Image != "x" {
		t.Errorf("image must be kept when omitted, got %q", edited.Image)
	}
	products := catalog.Products(ctx)
	if len(products) != 1 || products[0].Title != "Rose Royale" {
		t.Fatalf("got %+v, want single renamed product", products)
	}
}

func TestEditProductStaleIDFallsBackToUpsert(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	in := validInput()
	if _, err := ctrl.EditProduct(ctx, 42, in); err != nil {
		t.Fatalf("edit with stale id: %v", err)
	}
	if got := catalog.Products(ctx); len(got) != 1 {
		t.Fatalf("got %d products, want 1", len(got))
	}
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	ctrl, catalog, _ := newTestController(t)
	ctx := context.Background()

	p, err := ctrl.AddOrUpsertProduct(ctx, validInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := ctrl.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ctrl.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("second delete must not fail: %v", err)
	}
	if got := catalog.Products(ctx); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
