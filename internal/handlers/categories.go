package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Categories(c.Request.Context()))
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	slug, err := h.Admin.AddCategory(c.Request.Context(), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie ajoutée", "slug": slug})
}

// RenameCategory renomme la catégorie et réassigne ses produits.
func (h *Handler) RenameCategory(c *gin.Context) {
	oldName := c.Param("name")

	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	slug, err := h.Admin.RenameCategory(c.Request.Context(), oldName, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie renommée", "slug": slug})
}

// DeleteCategory retire la catégorie ; ses produits restent en base et
// deviennent simplement invisibles côté vitrine.
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.Admin.DeleteCategory(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
