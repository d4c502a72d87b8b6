package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the baseline security headers to every
// response. No Content-Security-Policy is set: the fallback landing page
// relies on inline styles and scripts.
func SecurityHeadersMiddleware(debug bool) gin.HandlerFunc {
	return secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      debug,
	})
}
