package models

// User est un compte administrateur décoratif (aucun contrôle d'accès réel).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
