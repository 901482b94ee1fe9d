package middleware

import (
	"net/http"
	"strings"

	"siteapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// AuthRequired checks the bearer token and stores the admin username in the
// context. Websocket upgrades carry the token as a query parameter because
// browsers cannot set headers on websocket connections.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if websocket.IsWebSocketUpgrade(c.Request) {
			token = c.Query("token")
		} else {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = authHeader[7:]
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		username, err := utils.ValidateJWT(token, jwtSecret)
		if err != nil {
			// Same message for expired, malformed and forged tokens.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		c.Set("username", username)
		c.Next()
	}
}
