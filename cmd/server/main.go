package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"parfumy_back_end/internal/admin"
	"parfumy_back_end/internal/auth"
	"parfumy_back_end/internal/config"
	"parfumy_back_end/internal/database"
	"parfumy_back_end/internal/handlers"
	"parfumy_back_end/internal/models"
	"parfumy_back_end/internal/routes"
	"parfumy_back_end/internal/store"
	"parfumy_back_end/internal/storefront"
)

func main() {
	config.Load()
	database.Connect()

	ctx := context.Background()

	kv := newKV()
	catalog := store.NewCatalog(kv)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}
	gate := auth.NewGate(kv, secret)
	if err := gate.EnsureDefaults(ctx); err != nil {
		log.Fatalf("❌ Échec initialisation identifiants admin: %v", err)
	}
	gate.StartWatcher(ctx)

	controller := admin.NewController(catalog, gate)
	if err := controller.Seed(ctx); err != nil {
		log.Fatalf("❌ Échec initialisation catalogue: %v", err)
	}
	seedTestimonials(ctx, catalog)

	view := storefront.NewView(catalog)
	view.Start()

	rotator := storefront.NewRotator(catalog.Testimonials(ctx))
	rotator.Start(ctx)

	whatsAppNumber := os.Getenv("WHATSAPP_NUMBER")
	h := handlers.New(catalog, controller, gate, view, rotator, whatsAppNumber)

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Parfumy lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Erreur serveur: %v", err)
	}
}

// newKV choisit le store : Redis quand il est configuré, mémoire sinon.
func newKV() store.KV {
	if database.Redis == nil {
		return store.NewMemoryKV()
	}

	prefix := os.Getenv("STORE_PREFIX")
	if prefix == "" {
		prefix = "parfumy_"
	}
	return store.NewRedisKV(database.Redis, prefix)
}

// seedTestimonials remplit le slider d'avis au premier démarrage.
func seedTestimonials(ctx context.Context, catalog *store.Catalog) {
	if len(catalog.Testimonials(ctx)) > 0 {
		return
	}
	defaults := []models.Testimonial{
		{Author: "Amina", Quote: "The gift set I ordered arrived beautifully wrapped. My sister loved it!"},
		{Author: "Brian", Quote: "Found my signature scent here. Ordering over WhatsApp was quick and easy."},
		{Author: "Cynthia", Quote: "Great selection of niche perfumes you won't find anywhere else in town."},
	}
	if err := catalog.SaveTestimonials(ctx, defaults); err != nil {
		log.Printf("⚠️ Erreur initialisation avis clients: %v", err)
	}
}
