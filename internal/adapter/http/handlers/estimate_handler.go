package handlers

import (
	"context"
	"errors"
	"net/http"

	request "github.com/Skale-Club/xtimator/internal/adapter/http/dto/request"
	response "github.com/Skale-Club/xtimator/internal/adapter/http/dto/response"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
	"github.com/Skale-Club/xtimator/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for saved estimates. New estimates
// are created through the draft endpoints.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates accepts q and status query filters.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	filter := usecase.EstimateFilter{
		Query:  c.Query("q"),
		Status: entities.EstimateStatus(c.Query("status")),
	}
	estimates, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	var payload request.EstimatePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	estimate, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Send)
}

func (h *EstimateHandler) MarkEstimateViewed(c *gin.Context) {
	h.transition(c, h.usecase.MarkViewed)
}

func (h *EstimateHandler) AcceptEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Accept)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *EstimateHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ShareEstimate(c *gin.Context) {
	res, err := h.usecase.Share(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShareResult(res))
}

func (h *EstimateHandler) CopyEstimate(c *gin.Context) {
	text, err := h.usecase.Copy(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *EstimateHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}

func mapEstimateError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrEstimateNotFound) {
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	}
	return mapCommonError(err)
}
