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

func TestListMyActions_ScopedToActor(t *testing.T) {
	auditRepo := new(AuditRepoMock)
	uc := usecase.NewAuditLogUsecase(auditRepo)
	ctx := context.Background()

	action := model.AuditActionUpdateOrderStatus
	auditRepo.On("List", ctx, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		// 自分の操作だけに絞られること
		return f.ActorUserID != nil && *f.ActorUserID == 20 &&
			f.Action != nil && *f.Action == action &&
			f.Limit == 50 && f.Offset == 0
	})).Return([]model.AuditLog{
		{ID: 1, ActorUserID: 20, Action: action, ResourceType: model.AuditResourceOrder, ResourceID: 77},
	}, nil).Once()

	logs, err := uc.ListMyActions(ctx, int64(20), usecase.ListAuditLogsInput{
		Action: "UPDATE_ORDER_STATUS",
	})

	assert.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, int64(20), logs[0].ActorUserID)
	auditRepo.AssertExpectations(t)
}

func TestListMyActions_Paging(t *testing.T) {
	auditRepo := new(AuditRepoMock)
	uc := usecase.NewAuditLogUsecase(auditRepo)
	ctx := context.Background()

	auditRepo.On("List", ctx, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		return f.Limit == 10 && f.Offset == 20
	})).Return([]model.AuditLog{}, nil).Once()

	_, err := uc.ListMyActions(ctx, int64(20), usecase.ListAuditLogsInput{Page: 3, Limit: 10})

	assert.NoError(t, err)
	auditRepo.AssertExpectations(t)
}

func TestListMyActions_InvalidFilter(t *testing.T) {
	auditRepo := new(AuditRepoMock)
	uc := usecase.NewAuditLogUsecase(auditRepo)
	ctx := context.Background()

	_, err := uc.ListMyActions(ctx, int64(20), usecase.ListAuditLogsInput{Action: "DROP_TABLE"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.ListMyActions(ctx, int64(20), usecase.ListAuditLogsInput{ResourceType: "user"})
	he, ok = usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	auditRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
