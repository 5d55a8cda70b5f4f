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

// CatalogHandler serves categories and services.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.usecase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	category, err := h.usecase.CreateCategory(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCategory(category))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var payload request.CategoryPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	category, err := h.usecase.UpdateCategory(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCategory(category))
}

// DeleteCategory also removes the services of the category.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServices accepts q, category_id and active=true query filters.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	filter := usecase.ServiceFilter{
		Query:      c.Query("q"),
		CategoryID: c.Query("category_id"),
		ActiveOnly: c.Query("active") == "true",
	}
	services, err := h.usecase.ListServices(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.CreateService(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(service))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServicePatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
