package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/AleksandrTrainich/yatube/internal/identity"
	"github.com/AleksandrTrainich/yatube/internal/model"
	"github.com/AleksandrTrainich/yatube/internal/repository"
	"github.com/AleksandrTrainich/yatube/pkg/logger"
	"github.com/AleksandrTrainich/yatube/pkg/response"
)

const identityKey = "acting_identity"

// Identity resolves the acting identity from a bearer token issued by the
// external auth subsystem and mirrors it into the local users table on
// first sight. Requests without a valid token proceed as Anonymous.
func Identity(secret string, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := resolve(c, secret)
		if ident.IsAuthenticated() {
			if _, err := users.GetByUsername(c.Request.Context(), ident.Username); err != nil {
				u := &model.User{ID: ident.ID, Username: ident.Username}
				if err := users.Upsert(c.Request.Context(), u); err != nil {
					logger.Warn("identity mirror failed", zap.String("username", ident.Username), zap.Error(err))
				}
			}
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

func resolve(c *gin.Context, secret string) identity.Identity {
	raw := c.GetHeader("Authorization")
	if strings.HasPrefix(raw, "Bearer ") {
		raw = strings.TrimPrefix(raw, "Bearer ")
	} else if cookie, err := c.Cookie("token"); err == nil {
		raw = cookie
	} else {
		return identity.Anonymous
	}
	if raw == "" || secret == "" {
		return identity.Anonymous
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return identity.Anonymous
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Anonymous
	}
	uid, ok := claims["uid"].(float64)
	if !ok || uid <= 0 {
		return identity.Anonymous
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return identity.Anonymous
	}
	return identity.Authenticated(uint(uid), username)
}

// Current returns the acting identity set by the Identity middleware.
func Current(c *gin.Context) identity.Identity {
	if v, ok := c.Get(identityKey); ok {
		if ident, ok := v.(identity.Identity); ok {
			return ident
		}
	}
	return identity.Anonymous
}

// RequireAuth redirects Anonymous to the login flow with a return path
// back to the originally requested page.
func RequireAuth(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Current(c).IsAuthenticated() {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			response.Redirect(c, loginURL+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
