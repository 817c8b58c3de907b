package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

const stsSeconds = 315360000

// SecureHeaders sets the usual browser hardening headers. HSTS is only sent
// when the server itself terminates TLS.
func SecureHeaders(tls bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IENoOpen:           true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if tls {
		cfg.STSSeconds = stsSeconds
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}
