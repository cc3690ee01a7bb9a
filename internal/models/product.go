package models

import "strings"

// Product représente un parfum du catalogue.
// Les noms JSON suivent le format persisté ("desc", id en millisecondes).
type Product struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// UpsertKey calcule la clé d'upsert (titre, catégorie), insensible à la casse.
func UpsertKey(title, category string) string {
	return strings.ToLower(title) + "|" + strings.ToLower(category)
}

func (p Product) UpsertKey() string {
	return UpsertKey(p.Title, p.Category)
}
