package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

// issueToken signe le jeton porteur de la session HTTP. Le jeton n'est qu'un
// transport : l'état qui fait foi reste le drapeau de session et l'horodatage
// d'activité dans le store.
func (g *Gate) issueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"jti":      uuid.NewString(),
		"exp":      g.now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// ParseToken valide la signature et l'expiration du jeton et retourne le nom
// d'utilisateur qu'il porte.
func (g *Gate) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidCredentials
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return "", ErrInvalidCredentials
	}
	return username, nil
}
