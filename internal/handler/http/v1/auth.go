package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/help_request_system/internal/config"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware закрывает служебные маршруты ключом из API_KEYS.
// Если ключи не настроены, маршрут открыт.
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		entry := log.WithFields(logrus.Fields{"path": c.FullPath(), "client_ip": c.ClientIP()})

		key := requestAPIKey(c)
		switch {
		case key == "":
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
		case !knownAPIKey(cfg.APIKeys, key):
			entry.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
		default:
			c.Next()
		}
	}
}

// requestAPIKey берёт ключ из X-API-Key, затем из Authorization: Bearer
func requestAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func knownAPIKey(keys []string, key string) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}
