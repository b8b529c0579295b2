package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// redactedQueryParams never reach the logs with their values
var redactedQueryParams = []string{"session", "token", "access_token", "refresh_token"}

// SessionRef is a short one-way handle for a session id. Logs carry the handle, never the id.
func SessionRef(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:6])
}

// LoggedPath is the request path with credential-like query values masked
func LoggedPath(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return u.Path
	}
	for _, key := range redactedQueryParams {
		if _, ok := q[key]; ok {
			q.Set(key, "REDACTED")
		}
	}
	return u.Path + "?" + q.Encode()
}

// ZapEchoMiddleware logs every request handled by echo and attaches a
// request scoped logger to the request context
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := LoggedPath(req.URL)

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			sessionID, _ := c.Get("session_id").(string)
			sessionRef := SessionRef(sessionID)

			ctx := WithContext(req.Context(),
				String("request_id", requestID),
				String("session_ref", sessionRef),
			)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.LogHTTPRequest(req.Method, path, c.RealIP(), sessionRef, requestID,
				c.Response().Status, time.Since(start), err)

			return nil
		}
	}
}
