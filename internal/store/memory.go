package store

import (
	"context"
	"sync"

	"github.com/asaskevich/EventBus"
)

// MemoryKV est l'implémentation en mémoire du KV : mode développement
// (aucun REDIS_HOST configuré) et tests. Les notifications passent par un
// bus d'événements local et sont délivrées de façon synchrone.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string]string
	bus  EventBus.Bus
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]string),
		bus:  EventBus.New(),
	}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()

	m.bus.Publish(topic(key), value)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	m.bus.Publish(topic(key), "")
	return nil
}

func (m *MemoryKV) Subscribe(key string, fn func(value string)) func() {
	handler := func(value string) { fn(value) }
	_ = m.bus.Subscribe(topic(key), handler)
	return func() {
		_ = m.bus.Unsubscribe(topic(key), handler)
	}
}
