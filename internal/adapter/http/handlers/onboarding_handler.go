package handlers

import (
	"errors"
	"net/http"

	request "github.com/Skale-Club/xtimator/internal/adapter/http/dto/request"
	response "github.com/Skale-Club/xtimator/internal/adapter/http/dto/response"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/usecase"
	"github.com/Skale-Club/xtimator/pkg"

	"github.com/gin-gonic/gin"
)

type OnboardingHandler struct {
	onboarding usecase.IOnboardingUseCase
	settings   usecase.ISettingsUseCase
}

func NewOnboardingHandler(onboarding usecase.IOnboardingUseCase, settings usecase.ISettingsUseCase) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding, settings: settings}
}

func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	status, err := h.onboarding.Status(c.Request.Context())
	if err != nil {
		writeError(c, mapOnboardingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingStatus(status))
}

func (h *OnboardingHandler) ListTemplates(c *gin.Context) {
	list, err := h.onboarding.ListTemplates(c.Request.Context())
	if err != nil {
		writeError(c, mapOnboardingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(list))
}

func (h *OnboardingHandler) SetupBusiness(c *gin.Context) {
	var payload request.BusinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	user, err := h.onboarding.SetupBusiness(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapOnboardingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *OnboardingHandler) ApplyTemplate(c *gin.Context) {
	var payload request.TemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.onboarding.ApplyTemplate(c.Request.Context(), payload.TemplateID)
	if err != nil {
		writeError(c, mapOnboardingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTemplateResult(res))
}

func (h *OnboardingHandler) SetStep(c *gin.Context) {
	var payload request.OnboardingStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	status, err := h.onboarding.SetStep(c.Request.Context(), entities.OnboardingStep(payload.Step))
	if err != nil {
		writeError(c, mapOnboardingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOnboardingStatus(status))
}

func (h *OnboardingHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func (h *OnboardingHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// Flush answers once every change so far is durable.
func (h *OnboardingHandler) Flush(c *gin.Context) {
	if err := h.settings.Flush(c.Request.Context()); err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset wipes all data, including the persisted record.
func (h *OnboardingHandler) Reset(c *gin.Context) {
	if err := h.settings.Reset(c.Request.Context()); err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapOnboardingError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrTemplateNotFound) {
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	}
	return mapCommonError(err)
}
