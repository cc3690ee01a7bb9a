package admin

import (
	"context"
	"strings"

	"parfumy_back_end/internal/models"
)

// ProductInput porte les champs du formulaire produit. Image est un data URL
// ou une URL externe ; vide, elle signifie "conserver l'image existante".
type ProductInput struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

func (in ProductInput) normalize() ProductInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Price = strings.TrimSpace(in.Price)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	return in
}

func (in ProductInput) validate() error {
	switch {
	case in.Title == "":
		return &ValidationError{Field: "title"}
	case in.Description == "":
		return &ValidationError{Field: "desc"}
	case in.Price == "":
		return &ValidationError{Field: "price"}
	case in.Category == "":
		return &ValidationError{Field: "category"}
	}
	return nil
}

// AddOrUpsertProduct insère un produit, ou remplace sur place celui qui
// partage la même clé (titre, catégorie) insensible à la casse. Le remplacement
// conserve l'id et, sans nouvelle image, l'image existante. Un produit
// entièrement nouveau sans image est refusé.
func (c *Controller) AddOrUpsertProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}

	key := models.UpsertKey(in.Title, in.Category)
	products := c.catalog.Products(ctx)
	for i := range products {
		if products[i].UpsertKey() != key {
			continue
		}
		p := products[i]
		p.Title = in.Title
		p.Description = in.Description
		p.Price = in.Price
		p.Category = in.Category
		if in.Image != "" {
			p.Image = in.Image
		}
		products[i] = p
		if err := c.catalog.SaveProducts(ctx, products); err != nil {
			return models.Product{}, err
		}
		return p, nil
	}

	if in.Image == "" {
		return models.Product{}, &ValidationError{Field: "image"}
	}

	p := models.Product{
		ID:          c.now().UnixMilli(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
	}
	// Les nouveaux produits passent en tête de liste
	products = append([]models.Product{p}, products...)
	if err := c.catalog.SaveProducts(ctx, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// EditProduct remplace directement le produit adressé par id, sans passer par
// la clé d'upsert. Un id périmé (produit supprimé entre-temps) retombe sur le
// chemin d'upsert plutôt que d'échouer.
func (c *Controller) EditProduct(ctx context.Context, id int64, in ProductInput) (models.Product, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return models.Product{}, err
	}

	products := c.catalog.Products(ctx)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		p := products[i]
		p.Title = in.Title
		p.Description = in.Description
		p.Price = in.Price
		p.Category = in.Category
		if in.Image != "" {
			p.Image = in.Image
		}
		products[i] = p
		if err := c.catalog.SaveProducts(ctx, products); err != nil {
			return models.Product{}, err
		}
		return p, nil
	}

	return c.AddOrUpsertProduct(ctx, in)
}

// DeleteProduct retire le produit par id. Idempotent : un id absent n'est pas
// une erreur.
func (c *Controller) DeleteProduct(ctx context.Context, id int64) error {
	products := c.catalog.Products(ctx)
	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return c.catalog.SaveProducts(ctx, kept)
}
