package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parfumy_back_end/internal/auth"
)

// AuthRequired protège les routes admin : jeton Bearer valide ET session
// encore active dans le store. L'expiration d'inactivité prime sur la
// validité du jeton. Toute requête authentifiée vaut interaction et rafraîchit
// l'horodatage d'activité.
func AuthRequired(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Format Authorization invalide"})
			c.Abort()
			return
		}

		username, err := gate.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		if !gate.Authenticated(c.Request.Context()) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expirée"})
			c.Abort()
			return
		}

		gate.Touch(c.Request.Context())
		c.Set("username", username)
		c.Next()
	}
}
