package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"purchase_sale/internal/infrastructure/registry"
	"purchase_sale/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const (
	PermissionCreate = "purchase_sale:create"
	PermissionRead   = "purchase_sale:read"
	PermissionUpdate = "purchase_sale:update"
	PermissionDelete = "purchase_sale:delete"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Permission denied", http.StatusForbidden)

	errMissingToken = errors.New("missing bearer token")
)

// AuthMiddleware admits internal callers presenting the shared service key
// and users presenting an HS256 token that grants the route permission.
type AuthMiddleware struct {
	internalKey string
	secret      []byte
}

func NewAuthMiddleware(internalKey, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{internalKey: internalKey, secret: []byte(jwtSecret)}
}

// Require rejects requests lacking permission. Accepted requests carry their
// Authorization header into the request context for outgoing registry calls.
func (a *AuthMiddleware) Require(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")

		if a.isInternalCall(c.GetHeader(registry.InternalServiceKeyHeader)) {
			a.admit(c, authorization)
			return
		}

		permissions, err := a.tokenPermissions(authorization)
		if err != nil {
			log.Debugf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if _, ok := permissions[permission]; !ok {
			log.Infof("[auth][middleware] forbidden path=%s permission=%s", c.FullPath(), permission)
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		a.admit(c, authorization)
	}
}

func (a *AuthMiddleware) admit(c *gin.Context, authorization string) {
	c.Request = c.Request.WithContext(registry.WithAuthorization(c.Request.Context(), authorization))
	c.Next()
}

func (a *AuthMiddleware) isInternalCall(key string) bool {
	if a.internalKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(a.internalKey)) == 1
}

// tokenPermissions validates the bearer token and collects the permissions
// from its "authorities" array and "scope" claim.
func (a *AuthMiddleware) tokenPermissions(authorization string) (map[string]struct{}, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(authorization), "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return nil, errMissingToken
	}
	if len(a.secret) == 0 {
		return nil, errors.New("token validation is not configured")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	permissions := map[string]struct{}{}
	if authorities, ok := claims["authorities"].([]any); ok {
		for _, v := range authorities {
			if s, ok := v.(string); ok {
				permissions[s] = struct{}{}
			}
		}
	}
	switch scope := claims["scope"].(type) {
	case string:
		for _, s := range strings.Fields(scope) {
			permissions[s] = struct{}{}
		}
	case []any:
		for _, v := range scope {
			if s, ok := v.(string); ok {
				permissions[s] = struct{}{}
			}
		}
	}
	return permissions, nil
}
