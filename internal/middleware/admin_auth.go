package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AdminRealm is shown by browsers in the basic auth prompt.
const AdminRealm = "gosnews admin"

// AdminAuthMiddleware protects the HTML admin with HTTP basic auth checked
// against a bcrypt hash.
type AdminAuthMiddleware struct {
	username     string
	passwordHash []byte
	logger       *zerolog.Logger
}

func NewAdminAuthMiddleware(username, passwordHash string, logger *zerolog.Logger) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		username:     username,
		passwordHash: []byte(passwordHash),
		logger:       logger,
	}
}

func (a *AdminAuthMiddleware) validate(username, password string, c echo.Context) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	if userOK && passOK {
		c.Set(UserIDKey, username)
		return true, nil
	}

	a.logger.Warn().
		Str("username", username).
		Str("ip", c.RealIP()).
		Msg("admin login failed")
	return false, nil
}

func (a *AdminAuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm:     AdminRealm,
		Validator: a.validate,
	})
}
