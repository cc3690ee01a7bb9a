package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"parfumy_back_end/internal/admin"
	"parfumy_back_end/internal/auth"
	"parfumy_back_end/internal/store"
	"parfumy_back_end/internal/storefront"
)

// Handler regroupe les dépendances des routes : chaque composant tient sa
// référence au store, rien ne passe par un état global ambiant.
type Handler struct {
	Catalog        *store.Catalog
	Admin          *admin.Controller
	Gate           *auth.Gate
	View           *storefront.View
	Rotator        *storefront.Rotator
	WhatsAppNumber string
}

func New(catalog *store.Catalog, controller *admin.Controller, gate *auth.Gate,
	view *storefront.View, rotator *storefront.Rotator, whatsAppNumber string) *Handler {
	return &Handler{
		Catalog:        catalog,
		Admin:          controller,
		Gate:           gate,
		View:           view,
		Rotator:        rotator,
		WhatsAppNumber: whatsAppNumber,
	}
}

// respondError mappe les erreurs du domaine sur les statuts HTTP. Aucune
// n'est fatale : l'état persisté précédent reste intact.
func respondError(c *gin.Context, err error) {
	var validation *admin.ValidationError
	var duplicate *admin.DuplicateError
	var reserved *admin.ReservedNameError
	var lockout *auth.LockoutError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ requis manquant", "field": validation.Field})
	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "La catégorie existe déjà"})
	case errors.As(err, &reserved):
		c.JSON(http.StatusConflict, gin.H{"error": "Le nom ALL est réservé"})
	case errors.As(err, &lockout):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":       "Trop de tentatives échouées",
			"retry_after": lockout.RetryAfterSeconds(),
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
	case errors.Is(err, auth.ErrMissingCredentials), errors.Is(err, auth.ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
