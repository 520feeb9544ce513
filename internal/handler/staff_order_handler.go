package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// スタッフ向けの注文API（自食堂分のみ）
type StaffOrderHandler struct {
	uc *usecase.StaffOrderUsecase
}

// DI
func NewStaffOrderHandler(uc *usecase.StaffOrderUsecase) *StaffOrderHandler {
	return &StaffOrderHandler{uc: uc}
}

// staff はスタッフロールガード適用済みのグループ
func (h *StaffOrderHandler) RegisterRoutes(staff *echo.Group) {
	staff.GET("/orders", h.list)
	staff.PUT("/orders/:id/status", h.updateStatus)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *StaffOrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.List(c.Request().Context(), userID, canteenID, usecase.ListStaffOrdersInput{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": out})
}

func (h *StaffOrderHandler) updateStatus(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), userID, canteenID, orderID, usecase.UpdateOrderStatusInput{
		Status: req.Status,
	}); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "order status updated"})
}
