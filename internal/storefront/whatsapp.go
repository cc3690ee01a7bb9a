package storefront

import (
	"net/url"
	"strings"
)

// DefaultWhatsAppNumber est le numéro de commande utilisé quand aucun
// WHATSAPP_NUMBER n'est configuré.
const DefaultWhatsAppNumber = "254713400220"

// OrderLink construit le lien WhatsApp pré-rempli du bouton "commander".
// Aucune réponse n'est attendue : le lien s'ouvre dans un nouveau contexte.
func OrderLink(number, title string) string {
	if number == "" {
		number = DefaultWhatsAppNumber
	}
	if title == "" {
		title = "Perfume"
	}
	message := "Hello Parfumy, I would like to order: " + title
	// encodage de type encodeURIComponent : espaces en %20, pas en '+'
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
