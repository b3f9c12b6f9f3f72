package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marvakt/ChocoLuxe/internal/api"
	"github.com/marvakt/ChocoLuxe/internal/http/appscope"
)

// SessionCfg holds configuration for the session middleware.
type SessionCfg struct {
	Registry   *appscope.Registry
	CookieName string
	Secure     bool
	TTL        time.Duration
}

const (
	ctxKeyScope     = "scope"
	ctxKeySessionID = "session_id"
)

// Session assigns every browser a session ID cookie and attaches that
// session's Scope to the request context. A new visitor gets a fresh ID
// on the first request.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, sessionID, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
		}

		c.Set(ctxKeySessionID, sessionID)
		SetScope(c, cfg.Registry.Get(sessionID))

		c.Next()
	}
}

// SetScope attaches a Scope to the request context.
func SetScope(c *gin.Context, sc *appscope.Scope) {
	c.Set(ctxKeyScope, sc)
}

// GetScope returns the per-session Scope attached by Session.
func GetScope(c *gin.Context) *appscope.Scope {
	if v, ok := c.Get(ctxKeyScope); ok {
		if sc, ok := v.(*appscope.Scope); ok {
			return sc
		}
	}
	return nil
}

func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(ctxKeySessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentUser returns the identity held by the session store, if any.
func CurrentUser(c *gin.Context) (api.Identity, bool) {
	sc := GetScope(c)
	if sc == nil {
		return api.Identity{}, false
	}
	return sc.Session.Current()
}
