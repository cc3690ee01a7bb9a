package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parfumy_back_end/internal/admin"
	"parfumy_back_end/internal/services"
)

// AdminListProducts retourne la liste complète, y compris les produits dont
// la catégorie a été supprimée (la vitrine seule les masque).
func (h *Handler) AdminListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Products(c.Request.Context()))
}

// CreateProduct insère ou remplace par clé (titre, catégorie).
func (h *Handler) CreateProduct(c *gin.Context) {
	var input admin.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	p, err := h.Admin.AddOrUpsertProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProduct remplace le produit adressé par id (action "éditer").
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input admin.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	p, err := h.Admin.EditProduct(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	if err := h.Admin.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}

// UploadProductImage pousse l'image vers MinIO et retourne l'URL à mettre
// dans le champ image du formulaire.
func (h *Handler) UploadProductImage(c *gin.Context) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}

	imageURL, err := services.UploadProductImage(c.Request.Context(), header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "✅ Image uploadée avec succès",
		"image_url": imageURL,
	})
}
