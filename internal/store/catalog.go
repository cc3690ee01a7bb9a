package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"parfumy_back_end/internal/models"
)

// Clés du catalogue dans le médium persisté.
const (
	KeyProducts     = "products"
	KeyCategories   = "categories"
	KeyUsers        = "users"
	KeyTestimonials = "testimonials"
)

// Catalog est la source de vérité du contenu : produits, catégories,
// utilisateurs et avis, stockés en tableaux JSON dans le KV. L'admin et la
// vitrine ne passent que par lui, sans copie mutable privée.
type Catalog struct {
	kv KV
}

func NewCatalog(kv KV) *Catalog {
	return &Catalog{kv: kv}
}

// Subscribe expose les notifications de changement d'une clé du catalogue.
func (c *Catalog) Subscribe(key string, fn func(value string)) func() {
	return c.kv.Subscribe(key, fn)
}

func (c *Catalog) Products(ctx context.Context) []models.Product {
	var products []models.Product
	c.readList(ctx, KeyProducts, &products)
	return products
}

func (c *Catalog) SaveProducts(ctx context.Context, products []models.Product) error {
	return c.writeList(ctx, KeyProducts, products)
}

func (c *Catalog) Categories(ctx context.Context) []string {
	var categories []string
	c.readList(ctx, KeyCategories, &categories)
	return categories
}

// SaveCategories persiste la liste en retirant silencieusement toute entrée
// "all", quelle que soit la casse : "all" est le joker synthétique de la
// vitrine, jamais une vraie catégorie.
func (c *Catalog) SaveCategories(ctx context.Context, categories []string) error {
	filtered := make([]string, 0, len(categories))
	for _, cat := range categories {
		if strings.EqualFold(cat, "all") {
			continue
		}
		filtered = append(filtered, cat)
	}
	return c.writeList(ctx, KeyCategories, filtered)
}

func (c *Catalog) Users(ctx context.Context) []models.User {
	var users []models.User
	c.readList(ctx, KeyUsers, &users)
	return users
}

func (c *Catalog) SaveUsers(ctx context.Context, users []models.User) error {
	return c.writeList(ctx, KeyUsers, users)
}

func (c *Catalog) Testimonials(ctx context.Context) []models.Testimonial {
	var testimonials []models.Testimonial
	c.readList(ctx, KeyTestimonials, &testimonials)
	return testimonials
}

func (c *Catalog) SaveTestimonials(ctx context.Context, testimonials []models.Testimonial) error {
	return c.writeList(ctx, KeyTestimonials, testimonials)
}

// readList ne remonte jamais d'erreur : une clé absente ou un JSON corrompu
// dégrade en liste vide, l'appelant continue.
func (c *Catalog) readList(ctx context.Context, key string, out interface{}) {
	data, ok, err := c.kv.Get(ctx, key)
	if err != nil {
		log.Printf("⚠️ Erreur lecture %s: %v", key, err)
		return
	}
	if !ok || data == "" {
		return
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		log.Printf("⚠️ JSON corrompu pour %s, liste vide substituée: %v", key, err)
	}
}

func (c *Catalog) writeList(ctx context.Context, key string, list interface{}) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	// json.Marshal d'un slice nil donne "null" : on persiste toujours un tableau
	if string(data) == "null" {
		data = []byte("[]")
	}
	return c.kv.Set(ctx, key, string(data))
}
