package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID is the request header carrying the caller identity.
const HeaderUserID = "X-User-Id"

// CtxOwner is the gin context key holding the resolved owner.
const CtxOwner = "owner"

// ErrNoIdentity is returned when a request carries no usable identity.
var ErrNoIdentity = errors.New("no caller identity")

// Resolver extracts the caller identity from a request. The only shipped
// implementation trusts a header; swapping in real authentication means
// swapping the Resolver, not the handlers.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// HeaderResolver reads the identity token from a single request header. It
// performs no verification; the token is trusted as-is.
type HeaderResolver struct {
	Header string
}

func (h HeaderResolver) Resolve(r *http.Request) (string, error) {
	v := strings.TrimSpace(r.Header.Get(h.Header))
	if v == "" {
		return "", ErrNoIdentity
	}
	return v, nil
}

// DefaultResolver resolves identity from the X-User-Id header.
func DefaultResolver() Resolver {
	return HeaderResolver{Header: HeaderUserID}
}

// RequireUser rejects any request without a resolvable identity before route
// logic runs. No anonymous or default identity is ever substituted.
func RequireUser(res Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, err := res.Resolve(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		c.Set(CtxOwner, owner)
		c.Next()
	}
}

// Owner returns the resolved identity for the request, or the empty string
// when the service runs single-tenant and RequireUser is not installed.
func Owner(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxOwner))
}
