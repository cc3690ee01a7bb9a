package admin

import (
	"context"
	"time"

	"parfumy_back_end/internal/auth"
	"parfumy_back_end/internal/models"
	"parfumy_back_end/internal/store"
)

// Catégories créées au premier démarrage sur un catalogue vierge.
var DefaultCategories = []string{"men", "women", "unisex", "kids", "niche", "gift-sets", "gift-cards"}

// Controller porte les opérations CRUD de l'admin sur le catalogue.
// L'horloge est injectée : les ids produit dérivent du temps courant en
// millisecondes (collision acceptée sur un double-submit rapide).
type Controller struct {
	catalog *store.Catalog
	gate    *auth.Gate
	now     func() time.Time
}

func NewController(catalog *store.Catalog, gate *auth.Gate) *Controller {
	return &Controller{catalog: catalog, gate: gate, now: time.Now}
}

// Seed initialise les catégories par défaut et le compte utilisateur initial
// si le catalogue est vierge.
func (c *Controller) Seed(ctx context.Context) error {
	if len(c.catalog.Categories(ctx)) == 0 {
		if err := c.catalog.SaveCategories(ctx, DefaultCategories); err != nil {
			return err
		}
	}
	if len(c.catalog.Users(ctx)) == 0 {
		username := c.gate.Username(ctx)
		if username == "" {
			username = "admin"
		}
		if err := c.catalog.SaveUsers(ctx, []models.User{{ID: c.now().UnixMilli(), Username: username}}); err != nil {
			return err
		}
	}
	return nil
}
