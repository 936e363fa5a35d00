package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Записи о локдаунах; изменение требует API-ключ
	lockdowns := api.Group("/lockdowns")
	{
		lockdowns.GET("", h.listLockdowns)
		lockdowns.GET("/:region", h.getLockdown)

		protected := lockdowns.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		protected.PUT("/:region", h.upsertLockdown)
		protected.DELETE("/:region", h.deleteLockdown)
	}

	api.GET("/regions/:region/status", h.getRegionStatus)

	// Данные и стиль карты
	mapGroup := api.Group("/map")
	{
		mapGroup.GET("/countries", h.getCountries)
		mapGroup.GET("/labels", h.getLabels)
		mapGroup.GET("/style", h.getStyle)
		mapGroup.POST("/click", h.clickCountry)
		mapGroup.POST("/sessions/:session/permission", h.syncPermission)
		mapGroup.GET("/sessions/:session/geolocation", h.getGeolocationFlag)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
