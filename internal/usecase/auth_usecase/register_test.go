package auth_usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByIDs(ctx context.Context, userIDs []int64) ([]model.User, error) {
	args := m.Called(ctx, userIDs)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

type CanteenRepoMock struct{ mock.Mock }

func (m *CanteenRepoMock) Create(ctx context.Context, canteen model.Canteen) (model.Canteen, error) {
	args := m.Called(ctx, canteen)
	c, _ := args.Get(0).(model.Canteen)
	return c, args.Error(1)
}

func (m *CanteenRepoMock) FindByID(ctx context.Context, canteenID int64) (model.Canteen, error) {
	args := m.Called(ctx, canteenID)
	c, _ := args.Get(0).(model.Canteen)
	return c, args.Error(1)
}

func (m *CanteenRepoMock) FindByName(ctx context.Context, name string) (model.Canteen, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Canteen)
	return c, args.Error(1)
}

// ハッシュの固定スタブ
type fakeHasher struct{}

func (h *fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newRegisterUC(userRepo *AuthUserRepoMock, canteenRepo *CanteenRepoMock) *auth.RegisterUsecase {
	clock := &fixedClock{now: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)}
	return auth.NewRegisterUsecase(userRepo, canteenRepo, &fakeHasher{}, clock)
}

func TestRegisterStudent_Success(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	canteenRepo := new(CanteenRepoMock)
	uc := newRegisterUC(userRepo, canteenRepo)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "taro@example.com" &&
			u.Role == model.RoleStudent &&
			u.PasswordHash == "hashed:correct horse battery" &&
			u.IsActive &&
			u.CanteenID == nil
	})).Return(nil).Once()

	out, err := uc.RegisterStudent(ctx, auth.RegisterStudentInput{
		Email:              "taro@example.com",
		Password:           "correct horse battery",
		FullName:           "Taro",
		RegistrationNumber: "S-001",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleStudent, out.User.Role)
	userRepo.AssertExpectations(t)
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	uc := newRegisterUC(userRepo, new(CanteenRepoMock))
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(&model.User{ID: 1, Email: "taro@example.com"}, nil).Once()

	_, err := uc.RegisterStudent(ctx, auth.RegisterStudentInput{
		Email:    "taro@example.com",
		Password: "correct horse battery",
		FullName: "Taro",
	})

	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterStudent_InvalidInput(t *testing.T) {
	uc := newRegisterUC(new(AuthUserRepoMock), new(CanteenRepoMock))
	ctx := context.Background()

	_, err := uc.RegisterStudent(ctx, auth.RegisterStudentInput{
		Email:    "not-an-email",
		Password: "correct horse battery",
		FullName: "Taro",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)

	_, err = uc.RegisterStudent(ctx, auth.RegisterStudentInput{
		Email:    "taro@example.com",
		Password: "short",
		FullName: "Taro",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)

	_, err = uc.RegisterStudent(ctx, auth.RegisterStudentInput{
		Email:    "taro@example.com",
		Password: "password123",
		FullName: "Taro",
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestRegisterStaff_CreatesCanteen(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	canteenRepo := new(CanteenRepoMock)
	uc := newRegisterUC(userRepo, canteenRepo)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "chef@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	canteenRepo.On("FindByName", ctx, "North Canteen").
		Return(model.Canteen{}, repository.ErrNotFound).Once()
	canteenRepo.On("Create", ctx, mock.MatchedBy(func(c model.Canteen) bool {
		return c.Name == "North Canteen"
	})).Return(model.Canteen{ID: 5, Name: "North Canteen"}, nil).Once()

	userRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleStaff &&
			u.CanteenID != nil && *u.CanteenID == 5
	})).Return(nil).Once()

	out, err := uc.RegisterStaff(ctx, auth.RegisterStaffInput{
		Email:       "chef@example.com",
		Password:    "correct horse battery",
		FullName:    "Chef",
		CanteenName: "North Canteen",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.RoleStaff, out.User.Role)
	assert.NotNil(t, out.User.CanteenID)
	canteenRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestRegisterStaff_DuplicateCanteenName(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	canteenRepo := new(CanteenRepoMock)
	uc := newRegisterUC(userRepo, canteenRepo)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "chef@example.com").
		Return(nil, repository.ErrUserNotFound).Once()
	canteenRepo.On("FindByName", ctx, "North Canteen").
		Return(model.Canteen{ID: 5, Name: "North Canteen"}, nil).Once()

	_, err := uc.RegisterStaff(ctx, auth.RegisterStaffInput{
		Email:       "chef@example.com",
		Password:    "correct horse battery",
		FullName:    "Chef",
		CanteenName: "North Canteen",
	})

	assert.ErrorIs(t, err, auth.ErrCanteenAlreadyExists)
	canteenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterStaff_CanteenNameRequired(t *testing.T) {
	userRepo := new(AuthUserRepoMock)
	uc := newRegisterUC(userRepo, new(CanteenRepoMock))
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "chef@example.com").
		Return(nil, repository.ErrUserNotFound).Once()

	_, err := uc.RegisterStaff(ctx, auth.RegisterStaffInput{
		Email:       "chef@example.com",
		Password:    "correct horse battery",
		FullName:    "Chef",
		CanteenName: "   ",
	})

	assert.ErrorIs(t, err, auth.ErrCanteenNameRequired)
}
