package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func LoggingMiddleware(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)
			if err != nil {
				// let echo write the response so the status below is accurate
				c.Error(err)
			}

			res := c.Response()
			entry := log.WithFields(logrus.Fields{
				"method":      req.Method,
				"path":        req.URL.Path,
				"remote_ip":   c.RealIP(),
				"status_code": res.Status,
				"latency_ms":  time.Since(start).Milliseconds(),
			})
			if reqID := res.Header().Get(echo.HeaderXRequestID); reqID != "" {
				entry = entry.WithField("request_id", reqID)
			}

			switch {
			case res.Status >= 500:
				entry.Error("Request completed with server error")
			case res.Status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Info("Request completed")
			}

			return nil
		}
	}
}
