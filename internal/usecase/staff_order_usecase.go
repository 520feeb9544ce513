package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// StaffOrderUsecase は食堂側の注文ビューとステータス遷移。
// 注文のうち自食堂の明細だけを見せ、合計も自食堂分で計算し直す。
// canteenID は検証済みJWTのclaimから渡される。
type StaffOrderUsecase struct {
	tx        repo.TransactionManager
	userRepo  repo.UserRepository
	auditRepo repo.AuditLogRepository
}

func NewStaffOrderUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
	auditRepo repo.AuditLogRepository,
) *StaffOrderUsecase {
	return &StaffOrderUsecase{tx: tx, userRepo: userRepo, auditRepo: auditRepo}
}

// 注文者の表示用情報
type StudentInfo struct {
	FullName           string `json:"full_name"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	MobileNumber       string `json:"mobile_number,omitempty"`
}

// total_amount は自食堂分の小計（保存値ではない）。
type StaffOrderOutput struct {
	ID          int64             `json:"id"`
	Reference   string            `json:"reference"`
	Status      string            `json:"status"`
	TotalAmount int64             `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
	Student     StudentInfo       `json:"student"`
	Items       []OrderItemOutput `json:"items"`
}

type ListStaffOrdersInput struct {
	Page  int
	Limit int
}

type UpdateOrderStatusInput struct {
	Status string
}

func guardStaffCanteen(staffUserID int64, canteenID int64) error {
	if staffUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	// 未所属のトークン
	if canteenID <= 0 {
		return NewHTTPError(http.StatusForbidden, "staff only")
	}
	return nil
}

// 自食堂の明細を含む注文を新しい順で返す。
func (u *StaffOrderUsecase) List(ctx context.Context, staffUserID int64, canteenID int64, in ListStaffOrdersInput) ([]StaffOrderOutput, error) {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return []StaffOrderOutput{}, err
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 50
	}

	var outs []StaffOrderOutput
	var orderUserIDs []int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByCanteenID(ctx, canteenID, in.Page, in.Limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]StaffOrderOutput, 0, len(orders))
		for _, o := range orders {
			//自食堂の明細だけ
			items, err := r.OrderItems().ListByOrderIDAndCanteen(ctx, o.ID, canteenID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//自食堂分の小計を計算し直す
			var canteenTotal int64 = 0
			outItems := make([]OrderItemOutput, 0, len(items))
			for _, it := range items {
				canteenTotal += it.PriceSnapshot * it.Quantity
				outItems = append(outItems, OrderItemOutput{
					MenuItemID: it.MenuItemID,
					Name:       it.NameSnapshot,
					Price:      it.PriceSnapshot,
					Quantity:   it.Quantity,
				})
			}

			outs = append(outs, StaffOrderOutput{
				ID:          o.ID,
				Reference:   o.Reference,
				Status:      string(o.Status),
				TotalAmount: canteenTotal,
				CreatedAt:   o.CreatedAt,
				Items:       outItems,
			})
			orderUserIDs = append(orderUserIDs, o.UserID)
		}
		return nil
	})
	if err != nil {
		return []StaffOrderOutput{}, err
	}

	//注文者情報を付ける
	users, err := u.userRepo.FindByIDs(ctx, orderUserIDs)
	if err != nil {
		return []StaffOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	byID := make(map[int64]model.User, len(users))
	for _, usr := range users {
		byID[usr.ID] = usr
	}
	for i, id := range orderUserIDs {
		if usr, ok := byID[id]; ok {
			outs[i].Student = StudentInfo{
				FullName:           usr.FullName,
				RegistrationNumber: usr.RegistrationNumber,
				MobileNumber:       usr.MobileNumber,
			}
		}
	}

	return outs, nil
}

// ステータス遷移。pending→processing→ready→completed の順のみ。
// cancelled は pending / processing からで、在庫を戻す。
// 書き込みは「保存値がまだ遷移元のまま」を条件にする（競合は409）。
func (u *StaffOrderUsecase) UpdateStatus(ctx context.Context, staffUserID int64, canteenID int64, orderID int64, in UpdateOrderStatusInput) error {
	if err := guardStaffCanteen(staffUserID, canteenID); err != nil {
		return err
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus, ok := model.ParseOrderStatus(in.Status)
	if !ok {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 注文取得
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//自食堂の明細を含まない注文は「存在しない扱い」
		ownItems, err := r.OrderItems().ListByOrderIDAndCanteen(ctx, orderID, canteenID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(ownItems) == 0 {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		// すでに同じなら何もしない（200）
		if o.Status == newStatus {
			return nil
		}

		if !model.CanTransition(o.Status, newStatus) {
			return NewHTTPError(http.StatusBadRequest, "invalid transition")
		}

		// キャンセルは在庫を戻す（注文全体）
		if newStatus == model.OrderStatusCancelled {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			for _, it := range items {
				if err := r.Inventory().IncreaseAvailable(ctx, it.MenuItemID, it.Quantity); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}

		// 条件付き更新。0件なら別セッションが先に変えている。
		beforeStatus := string(o.Status)
		if err := r.Orders().UpdateStatusFrom(ctx, orderID, o.Status, newStatus); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusConflict, "status changed by another session")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 監査ログ（UPDATE_ORDER_STATUS）
		beforeJSON := `{"status":"` + beforeStatus + `"}`
		afterJSON := `{"status":"` + string(newStatus) + `"}`
		if err := u.auditRepo.Create(ctx, model.AuditLog{
			ActorUserID:  staffUserID,
			Action:       model.AuditActionUpdateOrderStatus,
			ResourceType: model.AuditResourceOrder,
			ResourceID:   orderID,
			BeforeJSON:   beforeJSON,
			AfterJSON:    afterJSON,
			CreatedAt:    time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		return nil
	})
}
