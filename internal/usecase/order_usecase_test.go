package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaceOrder_Success(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	userID := int64(10)
	key := "key-abc"

	// 新規キー
	tx.repos.orders.On("FindByIdempotencyKey", ctx, userID, key).
		Return(model.Order{}, false, nil).Once()

	// カート（100円x2 + 50円x1 = 250円）
	tx.repos.cartItems.On("ListByUserID", ctx, userID).Return([]model.CartItem{
		{ID: 1, UserID: userID, MenuItemID: 101, Quantity: 2},
		{ID: 2, UserID: userID, MenuItemID: 102, Quantity: 1},
	}, nil).Once()

	tx.repos.menuItems.On("FindByID", ctx, int64(101)).
		Return(model.MenuItem{ID: 101, CanteenID: 5, Name: "Curry", Price: 100, QuantityAvailable: 10}, nil).Once()
	tx.repos.menuItems.On("FindByID", ctx, int64(102)).
		Return(model.MenuItem{ID: 102, CanteenID: 6, Name: "Tea", Price: 50, QuantityAvailable: 10}, nil).Once()

	tx.repos.inventory.On("DecreaseAvailableIfEnough", ctx, int64(101), int64(2)).Return(true, nil).Once()
	tx.repos.inventory.On("DecreaseAvailableIfEnough", ctx, int64(102), int64(1)).Return(true, nil).Once()

	tx.repos.orders.On("Create", ctx, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == userID &&
			o.Status == model.OrderStatusPending &&
			o.PaymentStatus == model.PaymentStatusCompleted &&
			o.TotalAmount == 250 &&
			o.IdempotencyKey == key &&
			o.Reference != ""
	})).Return(int64(77), nil).Once()

	tx.repos.orderItems.On("CreateBulk", ctx, int64(77), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		// スナップショットが保存されること
		return items[0].NameSnapshot == "Curry" && items[0].PriceSnapshot == 100 && items[0].CanteenID == 5 &&
			items[1].NameSnapshot == "Tea" && items[1].PriceSnapshot == 50 && items[1].CanteenID == 6
	})).Return(nil).Once()

	tx.repos.cartItems.On("DeleteByUserID", ctx, userID).Return(nil).Once()

	out, err := uc.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{IdempotencyKey: key})

	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, int64(250), out.TotalAmount)
	assert.Equal(t, "pending", out.Status)
	assert.Len(t, out.Items, 2)

	tx.repos.orders.AssertExpectations(t)
	tx.repos.orderItems.AssertExpectations(t)
	tx.repos.cartItems.AssertExpectations(t)
	tx.repos.inventory.AssertExpectations(t)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	tx.repos.orders.On("FindByIdempotencyKey", ctx, int64(10), "key").
		Return(model.Order{}, false, nil).Once()
	tx.repos.cartItems.On("ListByUserID", ctx, int64(10)).
		Return([]model.CartItem{}, nil).Once()

	_, err := uc.PlaceOrder(ctx, int64(10), usecase.PlaceOrderInput{IdempotencyKey: "key"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	// 注文もカートクリアも起きない
	tx.repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tx.repos.cartItems.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	tx.repos.orders.On("FindByIdempotencyKey", ctx, int64(10), "key").
		Return(model.Order{}, false, nil).Once()
	tx.repos.cartItems.On("ListByUserID", ctx, int64(10)).Return([]model.CartItem{
		{ID: 1, UserID: 10, MenuItemID: 101, Quantity: 3},
	}, nil).Once()
	tx.repos.menuItems.On("FindByID", ctx, int64(101)).
		Return(model.MenuItem{ID: 101, Name: "Curry", Price: 100, QuantityAvailable: 1}, nil).Once()

	// 条件付き減算が失敗
	tx.repos.inventory.On("DecreaseAvailableIfEnough", ctx, int64(101), int64(3)).
		Return(false, nil).Once()

	_, err := uc.PlaceOrder(ctx, int64(10), usecase.PlaceOrderInput{IdempotencyKey: "key"})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "out of stock", he.Message)

	tx.repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tx.repos.cartItems.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

func TestPlaceOrder_IdempotentReplay(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	existing := model.Order{
		ID:            55,
		Reference:     "ref-55",
		UserID:        10,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusCompleted,
		TotalAmount:   250,
	}

	// 既存キーは既存注文を返すだけ
	tx.repos.orders.On("FindByIdempotencyKey", ctx, int64(10), "same-key").
		Return(existing, true, nil).Once()
	tx.repos.orderItems.On("ListByOrderID", ctx, int64(55)).Return([]model.OrderItem{
		{OrderID: 55, MenuItemID: 101, NameSnapshot: "Curry", PriceSnapshot: 100, Quantity: 2},
	}, nil).Once()

	out, err := uc.PlaceOrder(ctx, int64(10), usecase.PlaceOrderInput{IdempotencyKey: "same-key"})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.ID)
	assert.Equal(t, "ref-55", out.Reference)

	tx.repos.cartItems.AssertNotCalled(t, "ListByUserID", mock.Anything, mock.Anything)
	tx.repos.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_MissingKey(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)

	_, err := uc.PlaceOrder(context.Background(), int64(10), usecase.PlaceOrderInput{IdempotencyKey: "  "})

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestGetMyOrderDetail_ForeignOrderHidden(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	// 他人の注文
	tx.repos.orders.On("FindByID", ctx, int64(55)).
		Return(model.Order{ID: 55, UserID: 999}, nil).Once()

	_, err := uc.GetMyOrderDetail(ctx, int64(10), int64(55))

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetMyOrderDetail_NotFound(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewOrderUsecase(tx)
	ctx := context.Background()

	tx.repos.orders.On("FindByID", ctx, int64(55)).
		Return(model.Order{}, repo.ErrNotFound).Once()

	_, err := uc.GetMyOrderDetail(ctx, int64(10), int64(55))

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
