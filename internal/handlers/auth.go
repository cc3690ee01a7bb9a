package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login vérifie les identifiants via la grille et retourne le jeton porteur.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	token, err := h.Gate.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": h.Gate.Username(c.Request.Context()),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.Gate.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

// Session expose l'état de session courant (drapeau + expiration incluse).
func (h *Handler) Session(c *gin.Context) {
	authenticated := h.Gate.Authenticated(c.Request.Context())
	resp := gin.H{"authenticated": authenticated}
	if authenticated {
		resp["username"] = h.Gate.Username(c.Request.Context())
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCredentials change le nom et/ou le mot de passe de l'admin actif.
func (h *Handler) UpdateCredentials(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.Gate.UpdateCredentials(c.Request.Context(), input.Username, input.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Identifiants mis à jour"})
}
