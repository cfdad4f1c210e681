package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Жизненный цикл заявки о помощи
	api.POST("/helprequest", h.createHelpRequest)
	api.GET("/helprequests", h.listPendingHelpRequests)
	api.POST("/helprequest/accept", h.acceptHelpRequest)
	api.POST("/helprequest/release", h.releaseHelpRequest)

	api.GET("/officer/:id", h.getOfficer)

	sos := api.Group("/anonymous-sos")
	{
		sos.POST("", h.createAnonymousSOS)
		sos.GET("", APIKeyAuthMiddleware(h.cfg, h.logger), h.listAnonymousSOS)
	}

	// Канал реального времени
	if h.ws != nil {
		api.GET("/ws", gin.WrapH(h.ws))
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
