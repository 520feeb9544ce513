package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

// メニューを検索/カテゴリ/ソート/ページング付きで返す。
func (r *MenuItemGormRepository) List(ctx context.Context, q repo.MenuItemListQuery) ([]model.MenuItem, int64, error) {
	var items []model.MenuItem
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.MenuItem{})

	// q はnameとdescriptionを対象
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	if q.CanteenID != nil {
		tx = tx.Where("canteen_id = ?", *q.CanteenID)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.MenuItem{}, 0, err
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	case "new":
		tx = tx.Order("created_at desc").Order("id desc")
	default:
		tx = tx.Order("name asc").Order("id asc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&items).Error; err != nil {
		return []model.MenuItem{}, 0, err
	}

	return items, total, nil
}

// 食堂の全メニュー（スタッフ画面用）
func (r *MenuItemGormRepository) ListByCanteenID(ctx context.Context, canteenID int64) ([]model.MenuItem, error) {
	var items []model.MenuItem

	err := r.db.WithContext(ctx).
		Where("canteen_id = ?", canteenID).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return []model.MenuItem{}, err
	}
	return items, nil
}

// 使用中のカテゴリ名の一覧
func (r *MenuItemGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string

	err := r.db.WithContext(ctx).
		Model(&model.MenuItem{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return []string{}, err
	}
	return categories, nil
}

// IDでメニューを取得
func (r *MenuItemGormRepository) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MenuItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

// メニューの作成
func (r *MenuItemGormRepository) Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

// メニューの更新
func (r *MenuItemGormRepository) Update(ctx context.Context, m model.MenuItem) error {
	res := r.db.WithContext(ctx).Model(&model.MenuItem{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"name":               m.Name,
		"description":        m.Description,
		"price":              m.Price,
		"image_url":          m.ImageURL,
		"category":           m.Category,
		"serves":             m.Serves,
		"quantity_available": m.QuantityAvailable,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// メニュー削除（ソフトデリート。過去の注文明細は残る）
func (r *MenuItemGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
