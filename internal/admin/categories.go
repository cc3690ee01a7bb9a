package admin

import (
	"context"
	"strings"
)

// Slugify normalise un nom de catégorie : trim, minuscules, suites d'espaces
// remplacées par un tiret.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func (c *Controller) checkCategoryName(ctx context.Context, slug string) error {
	if slug == "" {
		return &ValidationError{Field: "category"}
	}
	if slug == "all" {
		return &ReservedNameError{Name: slug}
	}
	for _, cat := range c.catalog.Categories(ctx) {
		if cat == slug {
			return &DuplicateError{Name: slug}
		}
	}
	return nil
}

// AddCategory normalise puis ajoute la catégorie en fin de liste.
func (c *Controller) AddCategory(ctx context.Context, name string) (string, error) {
	slug := Slugify(name)
	if err := c.checkCategoryName(ctx, slug); err != nil {
		return "", err
	}
	categories := append(c.catalog.Categories(ctx), slug)
	if err := c.catalog.SaveCategories(ctx, categories); err != nil {
		return "", err
	}
	return slug, nil
}

// RenameCategory renomme la catégorie puis réassigne chaque produit de
// l'ancienne catégorie vers la nouvelle. Les deux écritures sont séquentielles,
// sans transaction : un lecteur peut observer la liste renommée avant les
// produits. La vitrine masque les produits à catégorie inconnue, la fenêtre
// est donc sans effet visible.
func (c *Controller) RenameCategory(ctx context.Context, oldName, newName string) (string, error) {
	slug := Slugify(newName)
	if err := c.checkCategoryName(ctx, slug); err != nil {
		return "", err
	}

	categories := c.catalog.Categories(ctx)
	for i, cat := range categories {
		if cat == oldName {
			categories[i] = slug
		}
	}
	if err := c.catalog.SaveCategories(ctx, categories); err != nil {
		return "", err
	}

	products := c.catalog.Products(ctx)
	for i := range products {
		if products[i].Category == oldName {
			products[i].Category = slug
		}
	}
	if err := c.catalog.SaveProducts(ctx, products); err != nil {
		return "", err
	}
	return slug, nil
}

// DeleteCategory retire la catégorie de la liste. Les produits ne sont pas
// touchés : ils deviennent invisibles dans la vitrine, pas supprimés.
func (c *Controller) DeleteCategory(ctx context.Context, name string) error {
	categories := c.catalog.Categories(ctx)
	kept := make([]string, 0, len(categories))
	for _, cat := range categories {
		if cat != name {
			kept = append(kept, cat)
		}
	}
	return c.catalog.SaveCategories(ctx, kept)
}
