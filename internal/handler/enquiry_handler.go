package handler

import (
	"errors"
	"net/http"

	"github.com/itemhub/itemhub/internal/service"
	"github.com/labstack/echo/v4"
)

type EnquiryHandler struct {
	svc service.EnquiryService
}

func NewEnquiryHandler(svc service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{svc: svc}
}

type EnquireRequest struct {
	ItemID      string `json:"itemId"`
	ItemName    string `json:"itemName"`
	UserEmail   string `json:"userEmail"`
	UserMessage string `json:"userMessage"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *EnquiryHandler) Enquire(c echo.Context) error {
	var req EnquireRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.SendEnquiry(c.Request().Context(), req.ItemID, req.ItemName, req.UserEmail, req.UserMessage); err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("mail_error", "failed to send enquiry"))
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Enquiry email sent successfully!"})
}

func (h *EnquiryHandler) Contact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.SendContact(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("mail_error", "failed to send message"))
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Message sent successfully!"})
}
