package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/itemhub/itemhub/internal/model"
	"github.com/itemhub/itemhub/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type ItemResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

type CreateItemRequest struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"coverImage"`
	AdditionalImages []string `json:"additionalImages"`
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	item, err := h.svc.Create(c.Request().Context(), req.Name, req.Type, req.Description, req.CoverImage, req.AdditionalImages)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create item"))
	}
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch item"))
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toItemResponse(item *model.Item) ItemResponse {
	urls := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		urls = append(urls, img.ImageURL)
	}
	return ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Type:             item.Type,
		Description:      item.Description,
		CoverImage:       item.CoverImage,
		AdditionalImages: urls,
		CreatedAt:        item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        item.UpdatedAt.Format(time.RFC3339),
	}
}
