package auth

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidCredentials : identifiants incorrects.
	ErrInvalidCredentials = errors.New("identifiants invalides")
	// ErrMissingCredentials : nom d'utilisateur ou mot de passe vide.
	ErrMissingCredentials = errors.New("nom d'utilisateur et mot de passe requis")
	// ErrNothingToUpdate : mise à jour d'identifiants sans aucun champ fourni.
	ErrNothingToUpdate = errors.New("rien à mettre à jour")
)

// LockoutError : trop de tentatives échouées, la connexion est refusée sans
// vérifier les identifiants jusqu'à la fin du délai.
type LockoutError struct {
	Remaining time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("trop de tentatives, réessayez dans %ds", e.RetryAfterSeconds())
}

// RetryAfterSeconds arrondit le délai restant à la seconde supérieure.
func (e *LockoutError) RetryAfterSeconds() int {
	return int((e.Remaining + time.Second - 1) / time.Second)
}
