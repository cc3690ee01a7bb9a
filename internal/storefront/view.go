package storefront

import (
	"context"
	"strings"
	"sync"

	"parfumy_back_end/internal/models"
	"parfumy_back_end/internal/store"
)

// AllCategories est le joker synthétique "pas de filtre". Il n'est jamais
// persisté comme vraie catégorie.
const AllCategories = "all"

// Filter applique la règle de visibilité de la vitrine : la catégorie de la
// carte doit encore exister dans la liste (un produit dont la catégorie a été
// supprimée est toujours masqué), le filtre de catégorie doit matcher ("all"
// laisse tout passer) et la requête doit être une sous-chaîne du
// titre+description en minuscules.
func Filter(products []models.Product, categories []string, category, query string) []models.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = AllCategories
	}
	query = strings.ToLower(strings.TrimSpace(query))

	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat] = true
	}

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !known[p.Category] {
			continue
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		if query != "" {
			text := strings.ToLower(p.Title + " " + p.Description)
			if !strings.Contains(text, query) {
				continue
			}
		}
		visible = append(visible, p)
	}
	return visible
}

// View est l'état de rendu de la vitrine : instantané du catalogue plus les
// deux dimensions de filtre. Elle se re-rend à chaque notification de
// changement des produits ou des catégories, en conservant la catégorie
// sélectionnée si elle existe encore, sinon en retombant sur "all".
type View struct {
	catalog *store.Catalog

	mu         sync.Mutex
	products   []models.Product
	categories []string
	category   string
	query      string

	unsubscribes []func()
}

func NewView(catalog *store.Catalog) *View {
	v := &View{catalog: catalog, category: AllCategories}
	v.refresh()
	return v
}

// Start abonne la vue aux notifications du catalogue. Les notifications des
// deux clés relisent les deux listes : pendant un renommage de catégorie, un
// instantané transitoirement incohérent masque au pire quelques produits.
func (v *View) Start() {
	v.unsubscribes = append(v.unsubscribes,
		v.catalog.Subscribe(store.KeyProducts, func(string) { v.refresh() }),
		v.catalog.Subscribe(store.KeyCategories, func(string) { v.refresh() }),
	)
}

// Stop coupe les abonnements.
func (v *View) Stop() {
	for _, unsubscribe := range v.unsubscribes {
		unsubscribe()
	}
	v.unsubscribes = nil
}

func (v *View) refresh() {
	ctx := context.Background()
	products := v.catalog.Products(ctx)
	categories := v.catalog.Categories(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.products = products
	v.categories = categories
	if v.category != AllCategories && !contains(categories, v.category) {
		v.category = AllCategories
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func (v *View) SetCategory(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = AllCategories
	}
	v.mu.Lock()
	v.category = category
	v.mu.Unlock()
}

func (v *View) SetQuery(query string) {
	v.mu.Lock()
	v.query = strings.ToLower(strings.TrimSpace(query))
	v.mu.Unlock()
}

func (v *View) Category() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.category
}

// VisibleProducts retourne les cartes visibles pour l'état courant.
func (v *View) VisibleProducts() []models.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter(v.products, v.categories, v.category, v.query)
}

// CategoryLinks retourne la navigation de catégories, joker "all" en tête.
func (v *View) CategoryLinks() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string{AllCategories}, v.categories...)
}
