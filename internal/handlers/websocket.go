package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"parfumy_back_end/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CatalogWebSocket pousse un re-rendu du catalogue à chaque notification de
// changement des produits ou des catégories, y compris quand l'écriture vient
// d'un autre contexte (autre onglet, autre processus admin).
func (h *Handler) CatalogWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// Notifications coalescées : un seul re-rendu par rafale d'écritures
	changed := make(chan struct{}, 1)
	notify := func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	unsubscribeProducts := h.Catalog.Subscribe(store.KeyProducts, notify)
	unsubscribeCategories := h.Catalog.Subscribe(store.KeyCategories, notify)
	defer unsubscribeProducts()
	defer unsubscribeCategories()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation catalogue activée",
	})

	for {
		select {
		case <-changed:
			payload := gin.H{
				"type":       "catalog_updated",
				"categories": h.View.CategoryLinks(),
				"category":   h.View.Category(),
				"products":   h.View.VisibleProducts(),
			}
			if err := conn.WriteJSON(payload); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
