package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Skale-Club/xtimator/internal/adapter/http/handlers/mocks"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/templates"
	"github.com/Skale-Club/xtimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOnboardingRouter(onboarding usecase.IOnboardingUseCase, settings usecase.ISettingsUseCase) *gin.Engine {
	h := NewOnboardingHandler(onboarding, settings)
	r := gin.New()
	r.GET("/v1/onboarding", h.GetStatus)
	r.PUT("/v1/onboarding/business", h.SetupBusiness)
	r.POST("/v1/onboarding/template", h.ApplyTemplate)
	r.PUT("/v1/onboarding/step", h.SetStep)
	r.GET("/v1/templates", h.ListTemplates)
	r.GET("/v1/settings", h.GetSettings)
	r.PATCH("/v1/settings", h.UpdateSettings)
	r.POST("/v1/settings/flush", h.Flush)
	r.POST("/v1/settings/reset", h.Reset)
	return r
}

func TestOnboardingHandler_Flow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status before onboarding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().Status(gomock.Any()).Return(usecase.OnboardingStatus{Step: entities.OnboardingStepWelcome}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/onboarding", nil)
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["complete"] != false || body["step"] != "welcome" || body["user"] != nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("business requires a name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/onboarding/business", bytes.NewBufferString(`{"business_type":"Pintura"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("business", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().
			SetupBusiness(gomock.Any(), usecase.BusinessInput{BusinessName: "Pinturas Silva", BusinessType: "Pintura"}).
			Return(entities.User{ID: "u-1", BusinessName: "Pinturas Silva", BusinessType: "Pintura"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/onboarding/business", bytes.NewBufferString(`{"business_name":"Pinturas Silva","business_type":"Pintura"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["business_name"] != "Pinturas Silva" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().ApplyTemplate(gomock.Any(), "astronaut").Return(usecase.TemplateResult{}, usecase.ErrTemplateNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/onboarding/template", bytes.NewBufferString(`{"template_id":"astronaut"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("template applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().ApplyTemplate(gomock.Any(), "painter").Return(usecase.TemplateResult{
			Categories: []entities.ServiceCategory{{ID: "cat-1", Name: "Pintura"}},
			Services:   []entities.ServiceItem{{ID: "svc-1", CategoryID: "cat-1", Name: "Pintura Parede Lisa", IsActive: true}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/onboarding/template", bytes.NewBufferString(`{"template_id":"painter"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		services, _ := body["services"].([]any)
		if len(services) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().
			SetStep(gomock.Any(), entities.OnboardingStep("dancing")).
			Return(usecase.OnboardingStatus{}, &usecase.ValidationError{Field: "step", Message: "etapa inválida"})

		req := httptest.NewRequest(http.MethodPut, "/v1/onboarding/step", bytes.NewBufferString(`{"step":"dancing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("templates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		onboarding.EXPECT().ListTemplates(gomock.Any()).Return([]templates.BusinessTemplate{
			{ID: "painter", Name: "Pintor", Categories: make([]templates.CategoryDef, 2), Services: make([]templates.ServiceDef, 5)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["category_count"] != 2.0 || body[0]["service_count"] != 5.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOnboardingHandler_Settings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		settings.EXPECT().Get(gomock.Any()).Return(entities.DefaultSettings(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["currency"] != "BRL" || body["currency_symbol"] != "R$" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("update rejects negative tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		settings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.AppSettings{}, &usecase.ValidationError{Field: "taxRate", Message: "não pode ser negativo"})

		req := httptest.NewRequest(http.MethodPatch, "/v1/settings", bytes.NewBufferString(`{"tax_rate":-1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newOnboardingRouter(onboarding, settings).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("flush and reset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		onboarding := mocks.NewMockIOnboardingUseCase(ctrl)
		settings := mocks.NewMockISettingsUseCase(ctrl)

		settings.EXPECT().Flush(gomock.Any()).Return(nil)
		settings.EXPECT().Reset(gomock.Any()).Return(nil)

		r := newOnboardingRouter(onboarding, settings)
		for _, path := range []string{"/v1/settings/flush", "/v1/settings/reset"} {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusNoContent {
				t.Fatalf("%s: expected 204, got %d", path, w.Code)
			}
		}
	})
}
