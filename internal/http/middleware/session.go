package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Sessions hold no server state: the remote auth service issues a bearer
// token at login and this codec keeps it, plus the profile claims needed
// for display and role checks, in an HMAC-signed cookie.

type Claims struct {
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issued_at"`
}

type SessionCodec struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

func NewSessionCodec(secret []byte, cookieName string, secure bool, ttl time.Duration) *SessionCodec {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &SessionCodec{Secret: secret, CookieName: cookieName, Secure: secure, TTL: ttl}
}

func (sc *SessionCodec) encode(cl Claims) (string, error) {
	b, err := json.Marshal(cl)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sessionSign(sc.Secret, payload), nil
}

func (sc *SessionCodec) decode(v string) (Claims, bool) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return Claims{}, false
	}
	if !hmac.Equal([]byte(sessionSign(sc.Secret, parts[0])), []byte(parts[1])) {
		return Claims{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return Claims{}, false
	}
	var cl Claims
	if err := json.Unmarshal(raw, &cl); err != nil {
		return Claims{}, false
	}
	if cl.Token == "" || cl.UserID == "" {
		return Claims{}, false
	}
	if !cl.IssuedAt.IsZero() && time.Since(cl.IssuedAt) > sc.TTL {
		return Claims{}, false
	}
	return cl, true
}

// Session loads the signed claims cookie into the request context. Invalid
// or expired cookies are cleared and the request proceeds anonymously.
func Session(sc *SessionCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := c.Cookie(sc.CookieName)
		if err != nil || v == "" {
			c.Next()
			return
		}

		cl, ok := sc.decode(v)
		if !ok {
			SignOut(c, sc)
			c.Next()
			return
		}

		c.Set("session_claims", cl)
		c.Next()
	}
}

// SignIn sets the session cookie after a successful remote login.
func SignIn(c *gin.Context, sc *SessionCodec, cl Claims) {
	if cl.IssuedAt.IsZero() {
		cl.IssuedAt = time.Now()
	}
	val, err := sc.encode(cl)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.CookieName, val, int(sc.TTL.Seconds()), "/", "", sc.Secure, true)
}

func SignOut(c *gin.Context, sc *SessionCodec) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.CookieName, "", -1, "/", "", sc.Secure, true)
}

// ContextUser is the authenticated user seen by handlers.
type ContextUser struct {
	ID    string
	Email string
	Name  string
	Role  string
	Token string
}

func CurrentUser(c *gin.Context) (ContextUser, bool) {
	v, ok := c.Get("session_claims")
	if !ok {
		return ContextUser{}, false
	}
	cl, ok := v.(Claims)
	if !ok || cl.UserID == "" {
		return ContextUser{}, false
	}
	return ContextUser{
		ID:    cl.UserID,
		Email: cl.Email,
		Name:  cl.Name,
		Role:  cl.Role,
		Token: cl.Token,
	}, true
}

// APIToken returns the remote API bearer token for the current session, or
// "" for anonymous requests.
func APIToken(c *gin.Context) string {
	u, ok := CurrentUser(c)
	if !ok {
		return ""
	}
	return u.Token
}

func sessionSign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
