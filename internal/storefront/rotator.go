package storefront

import (
	"context"
	"sync"
	"time"

	"parfumy_back_end/internal/models"
)

// RotateInterval est la cadence d'avancement automatique du slider d'avis.
const RotateInterval = 5 * time.Second

// Rotator fait tourner le panneau d'avis clients : avance automatique à
// intervalle fixe, navigation manuelle qui réarme le minuteur, pause pendant
// le survol.
type Rotator struct {
	mu       sync.Mutex
	items    []models.Testimonial
	index    int
	paused   bool
	interval time.Duration
	ticker   *time.Ticker
}

func NewRotator(items []models.Testimonial) *Rotator {
	return &Rotator{items: items, interval: RotateInterval}
}

// Start lance l'avance automatique jusqu'à l'annulation du contexte.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	r.ticker = time.NewTicker(r.interval)
	ticker := r.ticker
	r.mu.Unlock()

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.mu.Lock()
				if !r.paused {
					r.advance(1)
				}
				r.mu.Unlock()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// advance avance de delta avec enroulement. Appelé verrou tenu.
func (r *Rotator) advance(delta int) {
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index + delta + len(r.items)) % len(r.items)
}

// step navigue manuellement et réarme l'intervalle.
func (r *Rotator) step(delta int) (models.Testimonial, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advance(delta)
	if r.ticker != nil {
		r.ticker.Reset(r.interval)
	}
	return r.current(), r.index
}

func (r *Rotator) Next() (models.Testimonial, int) { return r.step(1) }
func (r *Rotator) Prev() (models.Testimonial, int) { return r.step(-1) }

// Pause suspend l'avance automatique (survol du slider).
func (r *Rotator) Pause() {
	r.mu.Lock()
	r.paused = true
	r.mu.Unlock()
}

func (r *Rotator) Resume() {
	r.mu.Lock()
	r.paused = false
	r.mu.Unlock()
}

// Current retourne l'avis affiché et son index.
func (r *Rotator) Current() (models.Testimonial, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current(), r.index
}

func (r *Rotator) current() models.Testimonial {
	if len(r.items) == 0 {
		return models.Testimonial{}
	}
	return r.items[r.index]
}
