package storage

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jsamuelsen11/gtti-registration/internal/platform/config"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

// MemoryStore keeps values in an expiring in-process cache, partitioned by
// a session id carried in the gtti_session cookie. Every write pushes the
// expiry of the written key and of the session cookie out by the TTL.
type MemoryStore struct {
	cache  *gocache.Cache
	ttl    time.Duration
	secure bool
}

// NewMemoryStore creates a MemoryStore from the draft settings.
func NewMemoryStore(cfg *config.DraftConfig) *MemoryStore {
	return &MemoryStore{
		cache:  gocache.New(cfg.TTL, cfg.CleanupInterval),
		ttl:    cfg.TTL,
		secure: cfg.Secure,
	}
}

// Open returns the store view for one request. A session id is only issued
// on the first write.
func (s *MemoryStore) Open(w http.ResponseWriter, r *http.Request) ports.KeyValueStore {
	m := &memorySession{store: s, w: w}
	if ck, err := r.Cookie(SessionCookieName); err == nil {
		if id, err := uuid.Parse(ck.Value); err == nil {
			m.sid = id.String()
		}
	}
	return m
}

// Len returns the number of unexpired entries across all sessions.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}

// Name identifies the store in readiness results.
func (s *MemoryStore) Name() string { return "draft-store" }

// HealthCheck writes, reads and deletes a probe entry.
func (s *MemoryStore) HealthCheck(_ context.Context) error {
	key := "health/" + uuid.NewString()
	s.cache.Set(key, "ok", time.Minute)
	defer s.cache.Delete(key)
	if v, ok := s.cache.Get(key); !ok || v != "ok" {
		return errors.New("memory store: probe entry not readable")
	}
	return nil
}

type memorySession struct {
	store *MemoryStore
	w     http.ResponseWriter
	sid   string
}

func (m *memorySession) entry(key string) string {
	return m.sid + "/" + key
}

func (m *memorySession) GetItem(_ context.Context, key string) (string, bool, error) {
	if m.sid == "" {
		return "", false, nil
	}
	v, ok := m.store.cache.Get(m.entry(key))
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	return s, ok, nil
}

func (m *memorySession) SetItem(_ context.Context, key, value string) error {
	if m.sid == "" {
		m.sid = uuid.NewString()
	}
	m.store.cache.Set(m.entry(key), value, m.store.ttl)
	setCookie(m.w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    m.sid,
		Path:     "/",
		MaxAge:   int(m.store.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.store.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *memorySession) RemoveItem(_ context.Context, key string) error {
	if m.sid != "" {
		m.store.cache.Delete(m.entry(key))
	}
	return nil
}
