package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AuditLogUsecase はスタッフの操作ログ閲覧。
// 他人の操作は見せない（actor_user_id で絞る）。
type AuditLogUsecase struct {
	auditRepo repo.AuditLogRepository
}

// DI
func NewAuditLogUsecase(auditRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditRepo: auditRepo}
}

type ListAuditLogsInput struct {
	Action       string
	ResourceType string
	ResourceID   int64
	Page         int
	Limit        int
}

// 自分の操作ログを新しい順で返す。
func (u *AuditLogUsecase) ListMyActions(ctx context.Context, staffUserID int64, in ListAuditLogsInput) ([]model.AuditLog, error) {
	if staffUserID <= 0 {
		return []model.AuditLog{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 50
	}

	filter := repo.AuditLogFilter{
		ActorUserID: &staffUserID,
		Limit:       in.Limit,
		Offset:      (in.Page - 1) * in.Limit,
	}

	if in.Action != "" {
		switch model.AuditAction(in.Action) {
		case model.AuditActionUpdateOrderStatus, model.AuditActionCreateMenuItem,
			model.AuditActionUpdateMenuItem, model.AuditActionDeleteMenuItem:
		default:
			return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid action")
		}
		action := model.AuditAction(in.Action)
		filter.Action = &action
	}

	if in.ResourceType != "" {
		switch model.AuditResourceType(in.ResourceType) {
		case model.AuditResourceMenuItem, model.AuditResourceOrder:
		default:
			return []model.AuditLog{}, NewHTTPError(http.StatusBadRequest, "invalid resource_type")
		}
		resourceType := model.AuditResourceType(in.ResourceType)
		filter.ResourceType = &resourceType
	}

	if in.ResourceID > 0 {
		resourceID := in.ResourceID
		filter.ResourceID = &resourceID
	}

	logs, err := u.auditRepo.List(ctx, filter)
	if err != nil {
		return []model.AuditLog{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}
