package routes

import (
	"github.com/Skale-Club/xtimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOnboarding = "/onboarding"
	PathTemplates  = "/templates"
	PathSettings   = "/settings"
)

func addOnboardingRoutes(rg *gin.RouterGroup, h *handlers.OnboardingHandler) {
	rg.GET(PathTemplates, h.ListTemplates)

	onboarding := rg.Group(PathOnboarding)
	{
		onboarding.GET("", h.GetStatus)
		onboarding.PUT("/business", h.SetupBusiness)
		onboarding.POST("/template", h.ApplyTemplate)
		onboarding.PUT("/step", h.SetStep)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.GetSettings)
		settings.PATCH("", h.UpdateSettings)
		settings.POST("/flush", h.Flush)
		settings.POST("/reset", h.Reset)
	}
}
