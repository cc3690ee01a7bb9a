package store

import (
	"context"
	"log"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/redis/go-redis/v9"
)

// RedisKV persiste les clés dans Redis et propage les notifications de
// changement via Pub/Sub, ce qui permet à une vitrine tournant dans un autre
// processus d'observer les écritures de l'admin. Redis livre aussi le message
// à l'abonnement du contexte écrivain, donc chaque contexte voit ses propres
// écritures, comme les autres.
type RedisKV struct {
	client *redis.Client
	prefix string
	bus    EventBus.Bus

	mu      sync.Mutex
	pubsubs map[string]*redis.PubSub
}

// NewRedisKV crée un KV Redis. prefix est préfixé à chaque clé pour que
// plusieurs démos puissent partager la même instance ("parfumy_" par défaut).
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	return &RedisKV{
		client:  client,
		prefix:  prefix,
		bus:     EventBus.New(),
		pubsubs: make(map[string]*redis.PubSub),
	}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	// ✅ Pipeline Redis : écriture + notification en un aller-retour
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.prefix+key, value, 0)
	pipe.Publish(ctx, topic(r.prefix+key), value)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.prefix+key)
	pipe.Publish(ctx, topic(r.prefix+key), "")
	_, err := pipe.Exec(ctx)
	return err
}

// Subscribe relaie le canal Pub/Sub de la clé sur le bus local. L'écoute
// Redis n'est démarrée qu'une fois par clé, quel que soit le nombre
// d'observateurs locaux.
func (r *RedisKV) Subscribe(key string, fn func(value string)) func() {
	r.ensureListener(key)

	handler := func(value string) { fn(value) }
	_ = r.bus.Subscribe(topic(key), handler)
	return func() {
		_ = r.bus.Unsubscribe(topic(key), handler)
	}
}

func (r *RedisKV) ensureListener(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pubsubs[key]; ok {
		return
	}

	ctx := context.Background()
	pubsub := r.client.Subscribe(ctx, topic(r.prefix+key))
	r.pubsubs[key] = pubsub

	go func() {
		for msg := range pubsub.Channel() {
			r.bus.Publish(topic(key), msg.Payload)
		}
	}()
}

// Close coupe les écoutes Pub/Sub (arrêt du serveur).
func (r *RedisKV) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, pubsub := range r.pubsubs {
		if err := pubsub.Close(); err != nil {
			log.Printf("⚠️ Erreur fermeture Pub/Sub %s: %v", key, err)
		}
		delete(r.pubsubs, key)
	}
}
