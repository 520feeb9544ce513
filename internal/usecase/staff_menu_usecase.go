package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 画像未指定のときのプレースホルダ
const defaultMenuImageURL = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"

const defaultMenuCategory = "main_course"

// StaffMenuUsecase は食堂スタッフのメニュー管理。
// 所有チェックはすべて canteen_id の一致で行う。
// canteenID は検証済みJWTのclaimから渡される。
type StaffMenuUsecase struct {
	menuRepo  repo.MenuItemRepository
	auditRepo repo.AuditLogRepository
}

// DI
func NewStaffMenuUsecase(
	menuRepo repo.MenuItemRepository,
	auditRepo repo.AuditLogRepository,
) *StaffMenuUsecase {
	return &StaffMenuUsecase{
		menuRepo:  menuRepo,
		auditRepo: auditRepo,
	}
}

type SaveMenuItemInput struct {
	Name              string
	Description       string
	Price             int64
	ImageURL          string
	Category          string
	Serves            int64
	QuantityAvailable int64
}

func validateMenuItemInput(in SaveMenuItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "description required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if in.Serves <= 0 {
		return NewHTTPError(http.StatusBadRequest, "serves must be > 0")
	}
	if in.QuantityAvailable < 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity_available must be >= 0")
	}
	return nil
}

// 自食堂のメニュー一覧
func (u *StaffMenuUsecase) ListMyMenu(ctx context.Context, staffUserID int64, canteenID int64) ([]model.MenuItem, error) {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return []model.MenuItem{}, err
	}

	items, err := u.menuRepo.ListByCanteenID(ctx, canteenID)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *StaffMenuUsecase) CreateMenuItem(ctx context.Context, staffUserID int64, canteenID int64, in SaveMenuItemInput) (int64, error) {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return 0, err
	}
	if err := validateMenuItemInput(in); err != nil {
		return 0, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = defaultMenuImageURL
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultMenuCategory
	}

	now := time.Now()
	created, err := u.menuRepo.Create(ctx, model.MenuItem{
		CanteenID:         canteenID,
		Name:              strings.TrimSpace(in.Name),
		Description:       strings.TrimSpace(in.Description),
		Price:             in.Price,
		ImageURL:          imageURL,
		Category:          category,
		Serves:            in.Serves,
		QuantityAvailable: in.QuantityAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	afterJSON := fmt.Sprintf(`{"name":%q,"price":%d,"quantity_available":%d}`,
		created.Name, created.Price, created.QuantityAvailable)
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  staffUserID,
		Action:       model.AuditActionCreateMenuItem,
		ResourceType: model.AuditResourceMenuItem,
		ResourceID:   created.ID,
		BeforeJSON:   "{}",
		AfterJSON:    afterJSON,
		CreatedAt:    time.Now(),
	}); err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created.ID, nil
}

func (u *StaffMenuUsecase) UpdateMenuItem(ctx context.Context, staffUserID int64, canteenID int64, menuItemID int64, in SaveMenuItemInput) error {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return err
	}
	if menuItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}
	if err := validateMenuItemInput(in); err != nil {
		return err
	}

	//所有チェック（他食堂のメニューは「存在しない扱い」）
	existing, err := u.menuRepo.FindByID(ctx, menuItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing.CanteenID != canteenID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = defaultMenuImageURL
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultMenuCategory
	}

	err = u.menuRepo.Update(ctx, model.MenuItem{
		ID:                menuItemID,
		CanteenID:         canteenID,
		Name:              strings.TrimSpace(in.Name),
		Description:       strings.TrimSpace(in.Description),
		Price:             in.Price,
		ImageURL:          imageURL,
		Category:          category,
		Serves:            in.Serves,
		QuantityAvailable: in.QuantityAvailable,
		UpdatedAt:         time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	beforeJSON := fmt.Sprintf(`{"name":%q,"price":%d,"quantity_available":%d}`,
		existing.Name, existing.Price, existing.QuantityAvailable)
	afterJSON := fmt.Sprintf(`{"name":%q,"price":%d,"quantity_available":%d}`,
		strings.TrimSpace(in.Name), in.Price, in.QuantityAvailable)
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  staffUserID,
		Action:       model.AuditActionUpdateMenuItem,
		ResourceType: model.AuditResourceMenuItem,
		ResourceID:   menuItemID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

func (u *StaffMenuUsecase) DeleteMenuItem(ctx context.Context, staffUserID int64, canteenID int64, menuItemID int64) error {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return err
	}
	if menuItemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid menu item id")
	}

	existing, err := u.menuRepo.FindByID(ctx, menuItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing.CanteenID != canteenID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	err = u.menuRepo.SoftDelete(ctx, menuItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	beforeJSON := fmt.Sprintf(`{"name":%q}`, existing.Name)
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  staffUserID,
		Action:       model.AuditActionDeleteMenuItem,
		ResourceType: model.AuditResourceMenuItem,
		ResourceID:   menuItemID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    "{}",
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}
