package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type MenuRepoMock struct{ mock.Mock }

func (m *MenuRepoMock) List(ctx context.Context, q repo.MenuItemListQuery) ([]model.MenuItem, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MenuRepoMock) ListByCanteenID(ctx context.Context, canteenID int64) ([]model.MenuItem, error) {
	args := m.Called(ctx, canteenID)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepoMock) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func (m *MenuRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepoMock) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.MenuItem)
	return created, args.Error(1)
}

func (m *MenuRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) UpsertByUserAndItem(ctx context.Context, userID int64, menuItemID int64, addQty int64) error {
	args := m.Called(ctx, userID, menuItemID, addQty)
	return args.Error(0)
}

func (m *CartRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartRepoMock) DeleteByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartRepoMock) IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error) {
	args := m.Called(ctx, cartItemID, userID)
	return args.Bool(0), args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatusFrom(ctx context.Context, orderID int64, from model.OrderStatus, to model.OrderStatus) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, userID, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderRepoMock) ListByCanteenID(ctx context.Context, canteenID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, canteenID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderIDAndCanteen(ctx context.Context, orderID int64, canteenID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID, canteenID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseAvailableIfEnough(ctx context.Context, menuItemID int64, qty int64) (bool, error) {
	args := m.Called(ctx, menuItemID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseAvailable(ctx context.Context, menuItemID int64, qty int64) error {
	args := m.Called(ctx, menuItemID, qty)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByIDs(ctx context.Context, userIDs []int64) ([]model.User, error) {
	args := m.Called(ctx, userIDs)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	args := m.Called(ctx, filter)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// =====================
// Txスタブ（fnをそのまま実行するだけ）
// =====================

type txReposStub struct {
	orders     *OrderRepoMock
	orderItems *OrderItemRepoMock
	cartItems  *CartRepoMock
	inventory  *InventoryRepoMock
	menuItems  *MenuRepoMock
}

func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository { return s.orderItems }
func (s *txReposStub) CartItems() repo.CartItemRepository   { return s.cartItems }
func (s *txReposStub) Inventory() repo.InventoryRepository  { return s.inventory }
func (s *txReposStub) MenuItems() repo.MenuItemRepository   { return s.menuItems }

type txManagerStub struct {
	repos *txReposStub
}

func newTxManagerStub() *txManagerStub {
	return &txManagerStub{
		repos: &txReposStub{
			orders:     new(OrderRepoMock),
			orderItems: new(OrderItemRepoMock),
			cartItems:  new(CartRepoMock),
			inventory:  new(InventoryRepoMock),
			menuItems:  new(MenuRepoMock),
		},
	}
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}
