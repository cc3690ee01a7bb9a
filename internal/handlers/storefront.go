package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"parfumy_back_end/internal/models"
	"parfumy_back_end/internal/storefront"
)

// ListProducts rend les cartes visibles pour les filtres demandés. Sans
// paramètres : catalogue complet hors produits à catégorie supprimée.
func (h *Handler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	visible := storefront.Filter(
		h.Catalog.Products(ctx),
		h.Catalog.Categories(ctx),
		c.Query("category"),
		c.Query("q"),
	)
	c.JSON(http.StatusOK, visible)
}

// ListCategories rend la navigation de catégories, joker "all" en tête.
func (h *Handler) ListCategories(c *gin.Context) {
	categories := h.Catalog.Categories(c.Request.Context())
	c.JSON(http.StatusOK, append([]string{storefront.AllCategories}, categories...))
}

func (h *Handler) findProduct(c *gin.Context) (models.Product, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return models.Product{}, false
	}
	for _, p := range h.Catalog.Products(c.Request.Context()) {
		if p.ID == id {
			return p, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
	return models.Product{}, false
}

// GetProduct alimente la modale de détails.
func (h *Handler) GetProduct(c *gin.Context) {
	p, ok := h.findProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// OrderProduct retourne le lien WhatsApp pré-rempli du bouton "commander".
func (h *Handler) OrderProduct(c *gin.Context) {
	p, ok := h.findProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": storefront.OrderLink(h.WhatsAppNumber, p.Title)})
}

// OrderProductQR rend le même lien en QR code PNG.
func (h *Handler) OrderProductQR(c *gin.Context) {
	p, ok := h.findProduct(c)
	if !ok {
		return
	}

	png, err := qrcode.Encode(storefront.OrderLink(h.WhatsAppNumber, p.Title), qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// --- Slider d'avis clients ---

func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonial, index := h.Rotator.Current()
	c.JSON(http.StatusOK, gin.H{
		"items":   h.Catalog.Testimonials(c.Request.Context()),
		"current": testimonial,
		"index":   index,
	})
}

func (h *Handler) NextTestimonial(c *gin.Context) {
	testimonial, index := h.Rotator.Next()
	c.JSON(http.StatusOK, gin.H{"current": testimonial, "index": index})
}

func (h *Handler) PrevTestimonial(c *gin.Context) {
	testimonial, index := h.Rotator.Prev()
	c.JSON(http.StatusOK, gin.H{"current": testimonial, "index": index})
}

// PauseTestimonials suspend la rotation (survol du slider côté client).
func (h *Handler) PauseTestimonials(c *gin.Context) {
	h.Rotator.Pause()
	c.JSON(http.StatusOK, gin.H{"paused": true})
}

func (h *Handler) ResumeTestimonials(c *gin.Context) {
	h.Rotator.Resume()
	c.JSON(http.StatusOK, gin.H{"paused": false})
}
