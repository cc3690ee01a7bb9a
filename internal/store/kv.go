package store

import "context"

// KV est le médium clé/valeur partagé entre l'admin et la vitrine.
// Chaque écriture émet une notification de changement (clé, nouvelle valeur)
// observable par tous les contextes actifs, y compris celui qui écrit.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// Subscribe enregistre un observateur pour une clé et retourne une
	// fonction de désabonnement.
	Subscribe(key string, fn func(value string)) (unsubscribe func())
}

// topic construit le canal de notification d'une clé.
func topic(key string) string {
	return "store:" + key
}
