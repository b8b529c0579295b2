package middleware

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/internal/utils"
)

// Echo context keys set by the session middlewares
const (
	ContextKeySessionID = "session_id"
	ContextKeyUser      = "user"
)

// sessionQueryParam carries the session on WebSocket upgrades, where browsers cannot set headers
const sessionQueryParam = "session"

// SessionMiddleware resolves the browser session from the X-Session-ID header,
// issuing a new id when the client has none. The id is echoed back so the client can keep it.
// The query parameter is only honoured on WebSocket upgrades.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(constants.HeaderSessionID)
			if sessionID == "" && c.IsWebSocket() {
				sessionID = c.QueryParam(sessionQueryParam)
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			c.Set(ContextKeySessionID, sessionID)
			c.Response().Header().Set(constants.HeaderSessionID, sessionID)

			ctx := session.WithID(c.Request().Context(), sessionID)
			ctx = logger.WithContext(ctx, logger.String("session_ref", logger.SessionRef(sessionID)))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireUser rejects requests whose session has no signed in user
func RequireUser(store session.Store, signInPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			sessionID := session.IDFromContext(ctx)

			token, err := store.Get(ctx, sessionID, constants.StorageKeyAuthToken)
			if err != nil || token == "" {
				return utils.UnauthorizedResponse(c, "Please sign in to continue", signInPath)
			}

			raw, err := store.Get(ctx, sessionID, constants.StorageKeyUser)
			if err != nil || raw == "" {
				return utils.UnauthorizedResponse(c, "Please sign in to continue", signInPath)
			}

			var user models.User
			if err := json.Unmarshal([]byte(raw), &user); err != nil {
				logger.WarnCtx(ctx, "Corrupt session user", logger.Err(err))
				return utils.UnauthorizedResponse(c, "Please sign in to continue", signInPath)
			}

			c.Set(ContextKeyUser, &user)
			ctx = session.WithUserID(ctx, user.ID)
			ctx = logger.WithContext(ctx, logger.String("user_id", user.ID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// CurrentUser returns the user loaded by RequireUser
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*models.User)
	return user, ok && user != nil
}
