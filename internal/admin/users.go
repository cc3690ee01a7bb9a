package admin

import (
	"context"
	"strings"

	"parfumy_back_end/internal/models"
)

// SaveUser ajoute un compte ou, si editID désigne un compte existant, le
// renomme. Renommer le compte correspondant à l'admin actif synchronise aussi
// les identifiants de la grille de connexion. Le mot de passe d'un compte
// simplement ajouté n'est pas conservé : les comptes sont décoratifs.
func (c *Controller) SaveUser(ctx context.Context, editID int64, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, &ValidationError{Field: "username"}
	}
	if password == "" {
		return models.User{}, &ValidationError{Field: "password"}
	}

	users := c.catalog.Users(ctx)
	if editID != 0 {
		for i := range users {
			if users[i].ID != editID {
				continue
			}
			previous := users[i].Username
			users[i].Username = username
			if previous == c.gate.Username(ctx) {
				if err := c.gate.SetCredentials(ctx, username, password); err != nil {
					return models.User{}, err
				}
			}
			if err := c.catalog.SaveUsers(ctx, users); err != nil {
				return models.User{}, err
			}
			return users[i], nil
		}
	}

	u := models.User{ID: c.now().UnixMilli(), Username: username}
	users = append(users, u)
	if err := c.catalog.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DeleteUser retire le compte par id, sans erreur s'il est absent.
func (c *Controller) DeleteUser(ctx context.Context, id int64) error {
	users := c.catalog.Users(ctx)
	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return c.catalog.SaveUsers(ctx, kept)
}
