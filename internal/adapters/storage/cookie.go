package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/gtti-registration/internal/domain"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/config"
	"github.com/jsamuelsen11/gtti-registration/internal/platform/logging"
	"github.com/jsamuelsen11/gtti-registration/internal/ports"
)

const (
	// maxCookieBytes keeps a serialized cookie under the 4096 bytes
	// browsers are required to accept.
	maxCookieBytes = 4000
	// chunkBytes is the share of a token carried by one cookie. The rest of
	// maxCookieBytes is left for the name and attributes.
	chunkBytes = 3800
	// MaxChunks bounds how many cookies one key may span.
	MaxChunks = 10
)

const cookieIssuer = "gtti-registration"

// draftClaims carries one stored value. The key is the subject so a token
// cannot be replayed under another cookie name.
type draftClaims struct {
	jwt.RegisteredClaims
	Value string `json:"v"`
}

// CookieOption configures a CookieStore.
type CookieOption func(*CookieStore)

// WithCookieClock replaces time.Now for issuing and verifying tokens.
func WithCookieClock(now Clock) CookieOption {
	return func(s *CookieStore) { s.now = now }
}

// CookieStore stores each key as an HS256-signed JWT. Tokens longer than
// one cookie are split across cookies named key, key.1, key.2 and so on.
// Tampered, expired, foreign or incomplete tokens read as absent.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    Clock
}

// NewCookieStore creates a CookieStore from the draft settings. cfg.Secret
// must be set; config validation enforces its minimum length.
func NewCookieStore(cfg *config.DraftConfig, opts ...CookieOption) *CookieStore {
	s := &CookieStore{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		secure: cfg.Secure,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the store view for one request.
func (s *CookieStore) Open(w http.ResponseWriter, r *http.Request) ports.KeyValueStore {
	return &cookieSession{store: s, w: w, r: r, written: make(map[string]*string), sent: make(map[string]int)}
}

// Name identifies the store in readiness results.
func (s *CookieStore) Name() string { return "draft-store" }

// HealthCheck signs and verifies a probe token.
func (s *CookieStore) HealthCheck(_ context.Context) error {
	const probe = "health"
	token, err := s.sign(probe, probe)
	if err != nil {
		return fmt.Errorf("cookie store: %w", err)
	}
	v, err := s.verify(probe, token)
	if err != nil {
		return fmt.Errorf("cookie store: %w", err)
	}
	if v != probe {
		return errors.New("cookie store: probe value mismatch")
	}
	return nil
}

// Fits reports whether value can be stored under key, returning an error
// wrapping domain.ErrTooLarge when its token would need more than
// MaxChunks cookies.
func (s *CookieStore) Fits(key, value string) error {
	_, err := s.chunks(key, value)
	return err
}

// chunks signs value and splits the token into cookie values.
func (s *CookieStore) chunks(key, value string) ([]string, error) {
	token, err := s.sign(key, value)
	if err != nil {
		return nil, err
	}
	n := (len(token) + chunkBytes - 1) / chunkBytes
	if n > MaxChunks {
		return nil, fmt.Errorf("cookie %s needs %d bytes, limit %d: %w",
			key, len(token), MaxChunks*chunkBytes, domain.ErrTooLarge)
	}
	parts := make([]string, 0, n)
	for len(token) > chunkBytes {
		parts = append(parts, token[:chunkBytes])
		token = token[chunkBytes:]
	}
	return append(parts, token), nil
}

func (s *CookieStore) sign(key, value string) (string, error) {
	now := s.now()
	claims := draftClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cookieIssuer,
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Value: value,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s: %w", key, err)
	}
	return token, nil
}

func (s *CookieStore) verify(key, token string) (string, error) {
	var claims draftClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithSubject(key),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("verifying %s: %w", key, err)
	}
	return claims.Value, nil
}

func (s *CookieStore) cookie(key, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// cookieSession is a CookieStore view bound to one request. Writes made
// during the request are read back from written, since the request's own
// cookies still hold the old values.
type cookieSession struct {
	store   *CookieStore
	w       http.ResponseWriter
	r       *http.Request
	written map[string]*string // nil entry: removed
	sent    map[string]int     // chunks set on the response per key
}

// chunkName names the cookie carrying part i of key's token.
func chunkName(key string, i int) string {
	if i == 0 {
		return key
	}
	return key + "." + strconv.Itoa(i)
}

func (c *cookieSession) GetItem(ctx context.Context, key string) (string, bool, error) {
	if v, ok := c.written[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}

	var token strings.Builder
	for i := range MaxChunks {
		ck, err := c.r.Cookie(chunkName(key, i))
		if errors.Is(err, http.ErrNoCookie) {
			break
		}
		if err != nil {
			return "", false, fmt.Errorf("reading cookie %s: %w", chunkName(key, i), err)
		}
		token.WriteString(ck.Value)
	}
	if token.Len() == 0 {
		return "", false, nil
	}

	v, err := c.store.verify(key, token.String())
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "ignoring unverifiable cookie",
			slog.String("operation", "CookieStore.GetItem"),
			slog.String("cookie", key),
			slog.Any("error", err),
		)
		return "", false, nil
	}
	return v, true, nil
}

func (c *cookieSession) SetItem(_ context.Context, key, value string) error {
	parts, err := c.store.chunks(key, value)
	if err != nil {
		return err
	}

	maxAge := int(c.store.ttl.Seconds())
	cookies := make([]*http.Cookie, 0, len(parts))
	for i, part := range parts {
		ck := c.store.cookie(chunkName(key, i), part, maxAge)
		if n := len(ck.String()); n > maxCookieBytes {
			return fmt.Errorf("cookie %s is %d bytes, limit %d: %w", ck.Name, n, maxCookieBytes, domain.ErrTooLarge)
		}
		cookies = append(cookies, ck)
	}

	for _, ck := range cookies {
		setCookie(c.w, ck)
	}
	c.expireFrom(key, len(parts))
	c.sent[key] = len(parts)
	c.written[key] = &value
	return nil
}

func (c *cookieSession) RemoveItem(_ context.Context, key string) error {
	setCookie(c.w, c.store.cookie(key, "", -1))
	c.expireFrom(key, 1)
	c.sent[key] = 0
	c.written[key] = nil
	return nil
}

// expireFrom expires the chunks of key from index first on that the
// browser holds or was sent earlier in this response, left over from a
// longer token.
func (c *cookieSession) expireFrom(key string, first int) {
	for i := first; i < MaxChunks; i++ {
		name := chunkName(key, i)
		if _, err := c.r.Cookie(name); err != nil && i >= c.sent[key] {
			continue
		}
		setCookie(c.w, c.store.cookie(name, "", -1))
	}
}
