package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"parfumy_back_end/internal/store"
)

// Modèle de sécurité jouet : digest SHA-256 non salé, compteur de tentatives
// et verrouillage de 60 secondes. À ne pas réutiliser pour de la vraie
// authentification.
const (
	MaxAttempts     = 5
	LockoutDuration = 60 * time.Second
	InactivityLimit = 3 * time.Minute

	// Marge ajoutée au minuteur de déconnexion forcée.
	watcherSlack = 250 * time.Millisecond
)

// Clés scalaires de la session admin dans le médium persisté.
const (
	KeyAdminUser  = "admin_user"
	KeyAdminHash  = "admin_hash"
	KeyAttempts   = "admin_attempts"
	KeyLockUntil  = "admin_lock_until"
	KeySession    = "admin_session"
	KeyLastActive = "admin_last_active"
)

// Gate est la grille d'identification de l'admin : comparaison par digest,
// verrouillage après échecs répétés, session basée sur un drapeau et un
// horodatage de dernière activité avec expiration d'inactivité.
type Gate struct {
	kv     store.KV
	secret []byte
	now    func() time.Time

	mu    sync.Mutex
	timer *time.Timer
}

func NewGate(kv store.KV, secret string) *Gate {
	return &Gate{kv: kv, secret: []byte(secret), now: time.Now}
}

// DigestHex calcule le digest hexadécimal SHA-256 d'un mot de passe.
func DigestHex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// EnsureDefaults réinitialise les identifiants admin aux valeurs configurées
// à chaque démarrage, même si le store en contient déjà.
func (g *Gate) EnsureDefaults(ctx context.Context) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "Ruth"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Ruth123"
	}
	return g.SetCredentials(ctx, username, password)
}

// Login vérifie les identifiants. Ordre des contrôles : verrouillage d'abord
// (sans toucher aux identifiants), champs vides ensuite, digest enfin. Le
// 5e échec consécutif arme un verrouillage de 60 s et remet le compteur à zéro.
func (g *Gate) Login(ctx context.Context, username, password string) (string, error) {
	now := g.now()
	if until := g.getInt(ctx, KeyLockUntil); now.UnixMilli() < until {
		return "", &LockoutError{Remaining: time.Duration(until-now.UnixMilli()) * time.Millisecond}
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	storedUser := g.get(ctx, KeyAdminUser)
	storedHash := g.get(ctx, KeyAdminHash)
	if username == storedUser && DigestHex(password) == storedHash {
		g.setInt(ctx, KeyAttempts, 0)
		if err := g.kv.Set(ctx, KeySession, "1"); err != nil {
			return "", err
		}
		g.Touch(ctx)
		return g.issueToken(username)
	}

	attempts := g.getInt(ctx, KeyAttempts) + 1
	if attempts >= MaxAttempts {
		g.setInt(ctx, KeyLockUntil, now.Add(LockoutDuration).UnixMilli())
		g.setInt(ctx, KeyAttempts, 0)
		return "", &LockoutError{Remaining: LockoutDuration}
	}
	g.setInt(ctx, KeyAttempts, attempts)
	return "", ErrInvalidCredentials
}

// Authenticated : drapeau de session posé ET activité plus récente que la
// limite d'inactivité. L'expiration prime sur le drapeau stocké.
func (g *Gate) Authenticated(ctx context.Context) bool {
	if g.get(ctx, KeySession) != "1" {
		return false
	}
	last := g.getInt(ctx, KeyLastActive)
	if last == 0 {
		return false
	}
	return g.now().UnixMilli()-last <= InactivityLimit.Milliseconds()
}

// Touch horodate l'activité et réarme le minuteur d'expiration.
func (g *Gate) Touch(ctx context.Context) {
	g.setInt(ctx, KeyLastActive, g.now().UnixMilli())

	g.mu.Lock()
	if g.timer != nil {
		g.timer.Reset(InactivityLimit + watcherSlack)
	}
	g.mu.Unlock()
}

// Logout efface le drapeau de session.
func (g *Gate) Logout(ctx context.Context) error {
	return g.kv.Delete(ctx, KeySession)
}

// StartWatcher arme la déconnexion forcée : quand le minuteur expire sans
// interaction, le drapeau de session est retiré. Touch le réarme.
func (g *Gate) StartWatcher(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		return
	}
	g.timer = time.AfterFunc(InactivityLimit+watcherSlack, func() {
		if !g.Authenticated(ctx) {
			if err := g.kv.Delete(ctx, KeySession); err != nil {
				log.Printf("⚠️ Erreur déconnexion forcée: %v", err)
				return
			}
			log.Println("🔒 Session admin expirée par inactivité")
		}
	})

	go func() {
		<-ctx.Done()
		g.mu.Lock()
		if g.timer != nil {
			g.timer.Stop()
			g.timer = nil
		}
		g.mu.Unlock()
	}()
}

// Username retourne le nom du compte admin actif.
func (g *Gate) Username(ctx context.Context) string {
	return g.get(ctx, KeyAdminUser)
}

// SetCredentials remplace le nom et le digest du mot de passe.
func (g *Gate) SetCredentials(ctx context.Context, username, password string) error {
	if err := g.kv.Set(ctx, KeyAdminUser, username); err != nil {
		return err
	}
	return g.kv.Set(ctx, KeyAdminHash, DigestHex(password))
}

// UpdateCredentials met à jour les champs fournis ; les deux vides, il n'y a
// rien à faire et c'est une erreur.
func (g *Gate) UpdateCredentials(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" && password == "" {
		return ErrNothingToUpdate
	}
	if username != "" {
		if err := g.kv.Set(ctx, KeyAdminUser, username); err != nil {
			return err
		}
	}
	if password != "" {
		if err := g.kv.Set(ctx, KeyAdminHash, DigestHex(password)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gate) get(ctx context.Context, key string) string {
	val, _, err := g.kv.Get(ctx, key)
	if err != nil {
		log.Printf("⚠️ Erreur lecture %s: %v", key, err)
		return ""
	}
	return val
}

func (g *Gate) getInt(ctx context.Context, key string) int64 {
	n, err := strconv.ParseInt(g.get(ctx, key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (g *Gate) setInt(ctx context.Context, key string, n int64) {
	if err := g.kv.Set(ctx, key, strconv.FormatInt(n, 10)); err != nil {
		log.Printf("⚠️ Erreur écriture %s: %v", key, err)
	}
}
