package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/yukikurage/greenxp-api/internal/constants"
	apierrors "github.com/yukikurage/greenxp-api/internal/errors"
	"github.com/yukikurage/greenxp-api/internal/models"
	"github.com/yukikurage/greenxp-api/internal/services"
	"go.uber.org/zap"
)

var ErrMissingUserID = errors.New("missing x-user-id header")

// Authenticator resolves the calling user from a request
type Authenticator interface {
	Authenticate(c *gin.Context) (*models.User, error)
}

// UserFinder looks a user up by id
type UserFinder interface {
	GetUser(id uint64) (*models.User, error)
}

// HeaderUserAuthenticator identifies the caller by the x-user-id header and
// loads the user (and its role) from storage. A value that is not a user id
// matches no user.
type HeaderUserAuthenticator struct {
	users UserFinder
}

// NewHeaderUserAuthenticator creates a new HeaderUserAuthenticator
func NewHeaderUserAuthenticator(users UserFinder) *HeaderUserAuthenticator {
	return &HeaderUserAuthenticator{users: users}
}

// Authenticate implements Authenticator
func (a *HeaderUserAuthenticator) Authenticate(c *gin.Context) (*models.User, error) {
	raw := strings.TrimSpace(c.GetHeader(constants.HeaderUserID))
	if raw == "" {
		return nil, ErrMissingUserID
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || userID == 0 {
		return nil, services.ErrUserNotFound
	}

	return a.users.GetUser(userID)
}

// RequireRole authenticates the caller and rejects anyone without the role
func RequireRole(auth Authenticator, role models.UserRole, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Authenticate(c)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingUserID):
				apierrors.Unauthorized(c, err.Error())
			case errors.Is(err, services.ErrUserNotFound):
				apierrors.NotFound(c, "User not found")
			default:
				log.Error("authentication failed", zap.Error(err))
				apierrors.InternalError(c, "")
			}
			return
		}

		if user.Role != role {
			apierrors.Forbidden(c, fmt.Sprintf("%s only route", role))
			return
		}

		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// RequireAdmin restricts a route to admins
func RequireAdmin(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return RequireRole(auth, models.RoleAdmin, log)
}

// GetUser retrieves the authenticated user from context
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}
