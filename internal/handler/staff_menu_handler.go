package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// スタッフ向けのメニュー管理API
type StaffMenuHandler struct {
	uc *usecase.StaffMenuUsecase
}

// DI
func NewStaffMenuHandler(uc *usecase.StaffMenuUsecase) *StaffMenuHandler {
	return &StaffMenuHandler{uc: uc}
}

func (h *StaffMenuHandler) RegisterRoutes(staff *echo.Group) {
	staff.GET("/menu", h.list)
	staff.POST("/menu", h.create)
	staff.PUT("/menu/:id", h.update)
	staff.DELETE("/menu/:id", h.delete)
}

type saveMenuItemRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	ImageURL          string `json:"image_url"`
	Category          string `json:"category"`
	Serves            int64  `json:"serves"`
	QuantityAvailable int64  `json:"quantity_available"`
}

func (r saveMenuItemRequest) toInput() usecase.SaveMenuItemInput {
	return usecase.SaveMenuItemInput{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		ImageURL:          r.ImageURL,
		Category:          r.Category,
		Serves:            r.Serves,
		QuantityAvailable: r.QuantityAvailable,
	}
}

func (h *StaffMenuHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	items, err := h.uc.ListMyMenu(c.Request().Context(), userID, canteenID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *StaffMenuHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	var req saveMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	id, err := h.uc.CreateMenuItem(c.Request().Context(), userID, canteenID, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *StaffMenuHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	menuItemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req saveMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.UpdateMenuItem(c.Request().Context(), userID, canteenID, menuItemID, req.toInput()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "menu item updated"})
}

func (h *StaffMenuHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	canteenID, ok := getCanteenIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "staff only"})
	}

	menuItemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteMenuItem(c.Request().Context(), userID, canteenID, menuItemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "menu item deleted"})
}
