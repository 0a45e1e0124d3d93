package middleware

import (
	"github.com/gin-gonic/gin"

	"homeledger/internal/auth"
	apperrors "homeledger/internal/errors"
	"homeledger/internal/logger"
	"homeledger/internal/models"
	"homeledger/internal/services"
)

const (
	identityKey = "identity"
	callerKey   = "caller"
)

// TokenVerifier turns a raw bearer token into the provider's identity claims.
// *auth.Verifier implements it.
type TokenVerifier interface {
	Verify(raw string) (*auth.Identity, error)
}

// Authenticate verifies the bearer token and stores the identity on the
// context. Requests without a valid token stop here with 401.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			logger.Get().Debugw("rejected identity token", "error", err, "path", c.Request.URL.Path)
			RespondError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireCaller resolves the verified identity to an active AppUser.
// Invited users are linked to their identity on the way through.
func RequireCaller(access services.AccessServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := access.ResolveCaller(IdentityFrom(c))
		if err == nil {
			err = services.RequireActive(user)
		}
		if err != nil {
			RespondError(c, err)
			c.Abort()
			return
		}
		SetCaller(c, user)
		c.Next()
	}
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.RequireRole(CallerFrom(c), roles...); err != nil {
			RespondError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetIdentity stores a verified identity on the context.
func SetIdentity(c *gin.Context, identity *auth.Identity) {
	c.Set(identityKey, identity)
}

// SetCaller stores the resolved AppUser on the context.
func SetCaller(c *gin.Context, user *models.AppUser) {
	c.Set(callerKey, user)
}

// IdentityFrom returns the identity set by Authenticate, or nil.
func IdentityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

// CallerFrom returns the AppUser set by RequireCaller, or nil.
func CallerFrom(c *gin.Context) *models.AppUser {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.AppUser)
	return user
}
