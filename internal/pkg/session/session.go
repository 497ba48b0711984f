package session

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the client-persisted credential cookie.
const CookieName = "user"

// TTL is how long an issued session cookie stays valid.
const TTL = 7 * 24 * time.Hour

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the caller identity resolved from a session token.
// OwnerExternalID scopes every lead query to the session holder.
type Identity struct {
	Name            string
	OwnerExternalID string
}

// Format builds the token value stored in the cookie:
// "<name> <ownerExternalId>".
func Format(name, ownerExternalID string) string {
	return name + " " + ownerExternalID
}

// Parse resolves an identity from a raw token. It is a pure parse:
// token issuance and removal belong to the auth flows.
func Parse(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNotLoggedIn
	}

	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}

	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{Name: parts[0], OwnerExternalID: parts[1]}, nil
}

// CookieOptions control the attributes of the issued cookie.
type CookieOptions struct {
	Secure   bool
	Domain   string
	SameSite string
}

// SetCookie issues the session cookie on the response.
func SetCookie(c *gin.Context, id Identity, opts CookieOptions) {
	applySameSite(c, opts.SameSite)
	c.SetCookie(CookieName, Format(id.Name, id.OwnerExternalID), int(TTL.Seconds()), "/", opts.Domain, opts.Secure, false)
}

// ClearCookie removes the session cookie on logout.
func ClearCookie(c *gin.Context, opts CookieOptions) {
	applySameSite(c, opts.SameSite)
	c.SetCookie(CookieName, "", -1, "/", opts.Domain, opts.Secure, false)
}

func applySameSite(c *gin.Context, mode string) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "none":
		c.SetSameSite(http.SameSiteNoneMode)
	case "strict":
		c.SetSameSite(http.SameSiteStrictMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
}
