package handlers

import (
	"errors"
	"net/http"

	request "github.com/Skale-Club/xtimator/internal/adapter/http/dto/request"
	response "github.com/Skale-Club/xtimator/internal/adapter/http/dto/response"
	"github.com/Skale-Club/xtimator/internal/usecase"
	"github.com/Skale-Club/xtimator/pkg"

	"github.com/gin-gonic/gin"
)

// DraftHandler drives the estimate builder: customer, items, review, and
// finally the saved estimate.
type DraftHandler struct {
	usecase usecase.IDraftUseCase
}

func NewDraftHandler(uc usecase.IDraftUseCase) *DraftHandler {
	return &DraftHandler{usecase: uc}
}

func (h *DraftHandler) StartDraft(c *gin.Context) {
	draft, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDraft(draft))
}

func (h *DraftHandler) GetDraft(c *gin.Context) {
	h.reply(c)(h.usecase.Get(c.Request.Context(), c.Param("id")))
}

func (h *DraftHandler) SetCustomer(c *gin.Context) {
	var payload request.DraftCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.SetCustomer(c.Request.Context(), c.Param("id"), payload.ToDetails()))
}

func (h *DraftHandler) SelectCustomer(c *gin.Context) {
	var payload request.SelectCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.SelectCustomer(c.Request.Context(), c.Param("id"), payload.CustomerID))
}

func (h *DraftHandler) GoToStep(c *gin.Context) {
	var payload request.DraftStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.GoTo(c.Request.Context(), c.Param("id"), usecase.DraftStep(payload.Step)))
}

func (h *DraftHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.AddService(c.Request.Context(), c.Param("id"), payload.ServiceID, payload.Quantity))
}

func (h *DraftHandler) AdjustQuantity(c *gin.Context) {
	var payload request.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.AdjustQuantity(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.Delta))
}

func (h *DraftHandler) RemoveItem(c *gin.Context) {
	h.reply(c)(h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("line_id")))
}

func (h *DraftHandler) AddPhoto(c *gin.Context) {
	var payload request.PhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.AddPhoto(c.Request.Context(), c.Param("id"), payload.URL, payload.Caption))
}

func (h *DraftHandler) RemovePhoto(c *gin.Context) {
	h.reply(c)(h.usecase.RemovePhoto(c.Request.Context(), c.Param("id"), c.Param("photo_id")))
}

func (h *DraftHandler) SetNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.reply(c)(h.usecase.SetNotes(c.Request.Context(), c.Param("id"), payload.Notes))
}

// Chat answers 202: the assistant reply shows up on a later GET.
func (h *DraftHandler) Chat(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	draft, err := h.usecase.Chat(c.Request.Context(), c.Param("id"), payload.Message)
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromDraft(draft))
}

func (h *DraftHandler) Finalize(c *gin.Context) {
	estimate, err := h.usecase.Finalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *DraftHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DraftHandler) reply(c *gin.Context) func(usecase.Draft, error) {
	return func(draft usecase.Draft, err error) {
		if err != nil {
			writeError(c, mapDraftError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromDraft(draft))
	}
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPhotoNotFound):
		return pkg.NewDomainErrorSimple("PHOTO_NOT_FOUND", "Photo not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
