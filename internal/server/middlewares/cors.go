package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/handtracking3d/handtracking-api/internal/server/handlers/api"
)

const corsMaxAge = 12 * time.Hour

var corsAllowMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

// CORS lets browser pages served from allowOrigins read responses with
// credentials, using any method and any header.
//
// With credentials a literal "*" in Access-Control-Allow-Headers is not a
// wildcard, so preflights get the requested headers echoed back instead.
//
// gin-contrib/cors answers 403 to every request from an unknown origin. Here
// simple requests from unknown origins are served without CORS headers and
// only their preflights are refused.
func CORS(allowOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowOrigins))
	for _, origin := range allowOrigins {
		allowed[origin] = struct{}{}
	}

	corsHandler := cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     corsAllowMethods,
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := allowed[origin]; ok {
			// set before delegating, the handler writes the preflight response
			if requested := c.Request.Header.Get("Access-Control-Request-Headers"); requested != "" && isPreflight(c.Request) {
				c.Header("Access-Control-Allow-Headers", requested)
			}
			corsHandler(c)
			return
		}

		if isPreflight(c.Request) {
			api.AbortWithError(c, http.StatusBadRequest, api.CodeCORSOriginDisallowed,
				fmt.Errorf("disallowed cors origin %q", origin))
			return
		}

		// the response differs per origin, caches must key on it
		c.Writer.Header().Add("Vary", "Origin")
		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
