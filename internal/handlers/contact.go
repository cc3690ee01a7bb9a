package handlers

import (
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wneessen/go-mail"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Contact valide le formulaire de contact et relaie le message par e-mail
// quand un serveur SMTP est configuré. Sans SMTP, le message est seulement
// journalisé.
func (h *Handler) Contact(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)

	switch {
	case input.Name == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champ requis manquant", "field": "name"})
		return
	case !emailRegex.MatchString(input.Email):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse e-mail invalide", "field": "email"})
		return
	case len(input.Message) < 10:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le message doit faire au moins 10 caractères", "field": "message"})
		return
	}

	if os.Getenv("SMTP_HOST") != "" {
		if err := sendContactEmail(input.Name, input.Email, input.Message); err != nil {
			log.Printf("⚠️ Erreur envoi e-mail de contact: %v", err)
		}
	} else {
		log.Printf("📨 Message de contact de %s <%s>", input.Name, input.Email)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thank you! We will be in touch shortly."})
}

func sendContactEmail(name, from, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("CONTACT_FROM")); err != nil {
		return err
	}
	if err := msg.To(os.Getenv("CONTACT_TO")); err != nil {
		return err
	}
	msg.Subject("Contact Parfumy — " + name)
	msg.SetBodyString(mail.TypeTextPlain, "De: "+name+" <"+from+">\n\n"+body)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du message de contact")
	return client.DialAndSend(msg)
}
