package routes

import (
	"github.com/Skale-Club/xtimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathDrafts    = "/drafts"
	PathDashboard = "/dashboard"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	rg.GET(PathDashboard, h.Dashboard)

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", h.ListEstimates)
		estimates.GET("/:id", h.GetEstimate)
		estimates.PATCH("/:id", h.UpdateEstimate)
		estimates.DELETE("/:id", h.DeleteEstimate)

		estimates.POST("/:id/send", h.SendEstimate)
		estimates.POST("/:id/view", h.MarkEstimateViewed)
		estimates.POST("/:id/accept", h.AcceptEstimate)
		estimates.POST("/:id/reject", h.RejectEstimate)

		estimates.POST("/:id/share", h.ShareEstimate)
		estimates.POST("/:id/copy", h.CopyEstimate)
	}
}

func addDraftRoutes(rg *gin.RouterGroup, h *handlers.DraftHandler) {
	drafts := rg.Group(PathDrafts)
	{
		drafts.POST("", h.StartDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.DELETE("/:id", h.Discard)

		drafts.PUT("/:id/customer", h.SetCustomer)
		drafts.POST("/:id/customer/select", h.SelectCustomer)
		drafts.PUT("/:id/step", h.GoToStep)

		drafts.POST("/:id/items", h.AddService)
		drafts.PATCH("/:id/items/:line_id", h.AdjustQuantity)
		drafts.DELETE("/:id/items/:line_id", h.RemoveItem)

		drafts.POST("/:id/photos", h.AddPhoto)
		drafts.DELETE("/:id/photos/:photo_id", h.RemovePhoto)
		drafts.PUT("/:id/notes", h.SetNotes)
		drafts.POST("/:id/chat", h.Chat)

		drafts.POST("/:id/finalize", h.Finalize)
	}
}
