package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// MenuUsecase は学生向けのメニュー閲覧。
type MenuUsecase struct {
	menuRepo repo.MenuItemRepository
}

// DI
func NewMenuUsecase(menuRepo repo.MenuItemRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

// GET /menuの入力DTO
type ListMenuInput struct {
	Page      int
	Limit     int
	Q         string
	Category  string
	CanteenID *int64
	Sort      string
}

type MenuListOutput struct {
	Items []model.MenuItem `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (u *MenuUsecase) ListMenu(ctx context.Context, in ListMenuInput) (MenuListOutput, error) {
	if in.Page < 1 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	switch in.Sort {
	case "", "name", "new", "price_asc", "price_desc":
	default:
		return MenuListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.menuRepo.List(ctx, repo.MenuItemListQuery{
		Page:      in.Page,
		Limit:     in.Limit,
		Q:         strings.TrimSpace(in.Q),
		Category:  strings.TrimSpace(in.Category),
		CanteenID: in.CanteenID,
		Sort:      in.Sort,
	})
	if err != nil {
		return MenuListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MenuListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *MenuUsecase) GetMenuItem(ctx context.Context, menuItemID int64) (model.MenuItem, error) {
	if menuItemID <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	m, err := u.menuRepo.FindByID(ctx, menuItemID)
	if err == repo.ErrNotFound {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return m, nil
}

// 使用中カテゴリの一覧（メニュー画面の絞り込み用）
func (u *MenuUsecase) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := u.menuRepo.ListCategories(ctx)
	if err != nil {
		return []string{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}
