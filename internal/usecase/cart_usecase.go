package usecase

import (
	repo "app/internal/repository"
	"context"
	"net/http"
)

// CartUsecase は /cart の業務ロジックです。
// カートは (user, menu item) につき1行。毎回の変更後に全明細を組み直して返す。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	menuRepo     repo.MenuItemRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	menuRepo repo.MenuItemRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		menuRepo:     menuRepo,
	}
}

// price は現在のメニュー価格を返す（スナップショットは注文時に取る）。
type CartItemResponse struct {
	ID         int64  `json:"id"`
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
	ImageURL   string `json:"image_url"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

type AddCartInput struct {
	MenuItemID int64
	Quantity   int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return u.buildCartResponse(ctx, userID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.MenuItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid menu_item_id")
	}
	//数量未指定は1個
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック
	m, err := u.menuRepo.FindByID(ctx, in.MenuItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 既存数量を調べる
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var existingQty int64 = 0
	for _, it := range items {
		if it.MenuItemID == in.MenuItemID {
			existingQty = it.Quantity
			break
		}
	}

	newQty := existingQty + in.Quantity
	if newQty > m.QuantityAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	// Upsert（同一商品は加算）
	if err := u.cartItemRepo.UpsertByUserAndItem(ctx, userID, in.MenuItemID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 数量変更（所有チェック＋在庫チェック）。
// 0以下は行削除。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, in UpdateCartItemInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if in.Quantity <= 0 {
		if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
			if err == repo.ErrNotFound {
				return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
			}
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return u.buildCartResponse(ctx, userID)
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品の在庫チェック
	m, err := u.menuRepo.FindByID(ctx, item.MenuItemID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.Quantity > m.QuantityAvailable {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, in.Quantity); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細削除
func (u *CartUsecase) DeleteCartItem(ctx context.Context, userID int64, cartItemID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if cartItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	owned, err := u.cartItemRepo.IsOwnedByUser(ctx, cartItemID, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.cartItemRepo.DeleteByID(ctx, cartItemID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, userID)
}

// ユーザーの明細をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total int64 = 0

	for _, it := range items {
		m, err := u.menuRepo.FindByID(ctx, it.MenuItemID)
		if err != nil {
			// 削除済みメニューの行は表示しない
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Name:       m.Name,
			Price:      m.Price,
			Quantity:   it.Quantity,
			ImageURL:   m.ImageURL,
		})

		total += m.Price * it.Quantity
	}

	return CartResponse{Items: respItems, Total: total}, nil
}
