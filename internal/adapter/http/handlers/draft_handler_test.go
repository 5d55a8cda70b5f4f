package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Skale-Club/xtimator/internal/adapter/http/handlers/mocks"
	"github.com/Skale-Club/xtimator/internal/domain/entities"
	"github.com/Skale-Club/xtimator/internal/domain/pricing"
	"github.com/Skale-Club/xtimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDraftRouter(uc usecase.IDraftUseCase) *gin.Engine {
	h := NewDraftHandler(uc)
	r := gin.New()
	drafts := r.Group("/v1/drafts")
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
	return r
}

func draftRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDraftHandler_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDraftUseCase(ctrl)

	now := time.Now().UTC()
	uc.EXPECT().Start(gomock.Any()).Return(usecase.Draft{
		ID:   "d-1",
		Step: usecase.DraftStepCustomer,
		Messages: []entities.ChatMessage{
			{ID: "m-1", Role: entities.ChatRoleAssistant, Content: "Olá!", Timestamp: now},
		},
		CreatedAt: now,
	}, nil)

	w := httptest.NewRecorder()
	newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPost, "/v1/drafts", ""))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "d-1" || body["step"] != "customer" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 1 {
		t.Fatalf("expected the welcome message, got %s", w.Body.String())
	}
}

func TestDraftHandler_Steps(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPut, "/v1/drafts/d-1/step", "{"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("review without items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().
			GoTo(gomock.Any(), "d-1", usecase.DraftStepReview).
			Return(usecase.Draft{}, &usecase.ValidationError{Field: "LineItems", Message: "Adicione pelo menos um serviço ao orçamento"})

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPut, "/v1/drafts/d-1/step", `{"step":"review"}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().GoTo(gomock.Any(), "gone", usecase.DraftStepItems).Return(usecase.Draft{}, usecase.ErrDraftNotFound)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPut, "/v1/drafts/gone/step", `{"step":"items"}`))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		req    *http.Request
		expect func(uc *mocks.MockIDraftUseCase)
		status int
		code   string
	}{
		{
			name: "add service",
			req:  draftRequest(http.MethodPost, "/v1/drafts/d-1/items", `{"service_id":"svc-1","quantity":10}`),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().AddService(gomock.Any(), "d-1", "svc-1", 10).Return(usecase.Draft{
					ID:        "d-1",
					Step:      usecase.DraftStepItems,
					LineItems: []entities.EstimateLineItem{{ID: "li-1", ServiceItemID: "svc-1", ServiceName: "Pintura", Quantity: 10, UnitPrice: 25, Total: 250}},
					Totals:    pricing.Totals{Subtotal: 250, Total: 250},
				}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "add unknown service",
			req:  draftRequest(http.MethodPost, "/v1/drafts/d-1/items", `{"service_id":"nope"}`),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().AddService(gomock.Any(), "d-1", "nope", 0).Return(usecase.Draft{}, usecase.ErrServiceNotFound)
			},
			status: http.StatusNotFound,
			code:   "SERVICE_NOT_FOUND",
		},
		{
			name: "adjust quantity",
			req:  draftRequest(http.MethodPatch, "/v1/drafts/d-1/items/li-1", `{"delta":-1}`),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().AdjustQuantity(gomock.Any(), "d-1", "li-1", -1).Return(usecase.Draft{ID: "d-1"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "remove unknown line",
			req:  draftRequest(http.MethodDelete, "/v1/drafts/d-1/items/li-9", ""),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().RemoveItem(gomock.Any(), "d-1", "li-9").Return(usecase.Draft{}, usecase.ErrLineItemNotFound)
			},
			status: http.StatusNotFound,
			code:   "LINE_ITEM_NOT_FOUND",
		},
		{
			name: "remove unknown photo",
			req:  draftRequest(http.MethodDelete, "/v1/drafts/d-1/photos/p-9", ""),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().RemovePhoto(gomock.Any(), "d-1", "p-9").Return(usecase.Draft{}, usecase.ErrPhotoNotFound)
			},
			status: http.StatusNotFound,
			code:   "PHOTO_NOT_FOUND",
		},
		{
			name: "add photo",
			req:  draftRequest(http.MethodPost, "/v1/drafts/d-1/photos", `{"url":"https://img/1.jpg","caption":"sala"}`),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().AddPhoto(gomock.Any(), "d-1", "https://img/1.jpg", "sala").Return(usecase.Draft{ID: "d-1"}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "notes",
			req:  draftRequest(http.MethodPut, "/v1/drafts/d-1/notes", `{"notes":"Levar escada"}`),
			expect: func(uc *mocks.MockIDraftUseCase) {
				uc.EXPECT().SetNotes(gomock.Any(), "d-1", "Levar escada").Return(usecase.Draft{ID: "d-1", Notes: "Levar escada"}, nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIDraftUseCase(ctrl)
			tt.expect(uc)

			w := httptest.NewRecorder()
			newDraftRouter(uc).ServeHTTP(w, tt.req)

			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if tt.code != "" {
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["code"] != tt.code {
					t.Fatalf("expected code %s, got %s", tt.code, w.Body.String())
				}
			}
		})
	}
}

func TestDraftHandler_Customer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("set customer details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().
			SetCustomer(gomock.Any(), "d-1", usecase.CustomerDetails{Name: "Maria", Phone: "11999990000"}).
			Return(usecase.Draft{ID: "d-1", CustomerName: "Maria"}, nil)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPut, "/v1/drafts/d-1/customer", `{"name":"Maria","phone":"11999990000"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("select requires an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPost, "/v1/drafts/d-1/customer/select", `{}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("select unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().SelectCustomer(gomock.Any(), "d-1", "c-9").Return(usecase.Draft{}, usecase.ErrCustomerNotFound)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPost, "/v1/drafts/d-1/customer/select", `{"customer_id":"c-9"}`))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDraftHandler_ChatFinalizeDiscard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("chat is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().Chat(gomock.Any(), "d-1", "ajuda").Return(usecase.Draft{
			ID:       "d-1",
			Messages: []entities.ChatMessage{{ID: "m-2", Role: entities.ChatRoleUser, Content: "ajuda"}},
		}, nil)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPost, "/v1/drafts/d-1/chat", `{"message":"ajuda"}`))

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("finalize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().Finalize(gomock.Any(), "d-1").Return(entities.Estimate{
			ID:     "est-1",
			Title:  "Orçamento - Maria",
			Status: entities.EstimateStatusDraft,
			Total:  363,
		}, nil)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodPost, "/v1/drafts/d-1/finalize", ""))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "est-1" || body["title"] != "Orçamento - Maria" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("discard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDraftUseCase(ctrl)

		uc.EXPECT().Discard(gomock.Any(), "d-1").Return(nil)

		w := httptest.NewRecorder()
		newDraftRouter(uc).ServeHTTP(w, draftRequest(http.MethodDelete, "/v1/drafts/d-1", ""))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
