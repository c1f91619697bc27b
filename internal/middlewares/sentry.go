package middlewares

import (
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// SentryCapture forwards handler errors to sentry after the chain has run.
// Credentials never reach the scope: Authorization and Cookie headers are
// filtered.
func SentryCapture() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("http.method", c.Request.Method)
			scope.SetTag("http.route", c.FullPath())
			scope.SetContext("Request", map[string]interface{}{
				"URL":     c.Request.URL.String(),
				"Status":  c.Writer.Status(),
				"Headers": safeHeaders(c.Request.Header),
			})
		})

		for _, ginErr := range c.Errors {
			hub.CaptureException(ginErr.Err)
		}
	}
}

func safeHeaders(h map[string][]string) map[string]interface{} {
	safe := make(map[string]interface{})
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
