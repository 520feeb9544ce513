package auth_usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 学生の会員登録の入力
type RegisterStudentInput struct {
	Email              string
	Password           string
	FullName           string
	RegistrationNumber string
	MobileNumber       string
}

// スタッフの会員登録の入力。CanteenName で食堂を作る。
type RegisterStaffInput struct {
	Email        string
	Password     string
	FullName     string
	MobileNumber string
	CanteenName  string
}

type RegisterOutput struct {
	User model.User
}

var (
	// 入力が不正
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrWeakPassword        = errors.New("weak password")
	ErrFullNameRequired    = errors.New("full name required")
	ErrCanteenNameRequired = errors.New("canteen name required")

	// 競合
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrCanteenAlreadyExists = errors.New("canteen already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// RegisterUsecaseは会員登録の処理。
type RegisterUsecase struct {
	userRepo    repository.UserRepository
	canteenRepo repository.CanteenRepository
	hasher      PasswordHasher
	clock       Clock
}

// DI
func NewRegisterUsecase(
	userRepo repository.UserRepository,
	canteenRepo repository.CanteenRepository,
	hasher PasswordHasher,
	clock Clock,
) *RegisterUsecase {
	return &RegisterUsecase{
		userRepo:    userRepo,
		canteenRepo: canteenRepo,
		hasher:      hasher,
		clock:       clock,
	}
}

// 学生の会員登録
func (u *RegisterUsecase) RegisterStudent(ctx context.Context, in RegisterStudentInput) (RegisterOutput, error) {
	var out RegisterOutput

	if err := u.validateCommon(ctx, in.Email, in.Password, in.FullName); err != nil {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	user := &model.User{
		Email:              strings.TrimSpace(in.Email),
		PasswordHash:       hashed,
		Role:               model.RoleStudent,
		FullName:           strings.TrimSpace(in.FullName),
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		MobileNumber:       strings.TrimSpace(in.MobileNumber),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return out, err
	}

	out.User = *user
	return out, nil
}

// スタッフの会員登録。食堂も一緒に作る。
func (u *RegisterUsecase) RegisterStaff(ctx context.Context, in RegisterStaffInput) (RegisterOutput, error) {
	var out RegisterOutput

	if err := u.validateCommon(ctx, in.Email, in.Password, in.FullName); err != nil {
		return out, err
	}

	canteenName := strings.TrimSpace(in.CanteenName)
	if canteenName == "" {
		return out, ErrCanteenNameRequired
	}

	// 食堂名の重複チェック
	_, err := u.canteenRepo.FindByName(ctx, canteenName)
	if err == nil {
		return out, ErrCanteenAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	canteen, err := u.canteenRepo.Create(ctx, model.Canteen{
		Name:      canteenName,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return out, err
	}

	user := &model.User{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hashed,
		Role:         model.RoleStaff,
		FullName:     strings.TrimSpace(in.FullName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		CanteenID:    &canteen.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return out, err
	}

	out.User = *user
	return out, nil
}

func (u *RegisterUsecase) validateCommon(ctx context.Context, email string, password string, fullName string) error {
	// emailの形式チェック
	if !isValidEmailFormat(email) {
		return ErrInvalidEmailFormat
	}

	// password の長さチェック（最小8文字）
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(password) {
		return ErrWeakPassword
	}

	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameRequired
	}

	// email重複チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return ErrEmailAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// よくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":    {},
		"password123": {},
		"12345678":    {},
		"123456789":   {},
		"1234567890":  {},
		"qwerty":      {},
		"qwertyuiop":  {},
		"letmein":     {},
		"admin123":    {},
	}

	_, ok := weak[normalized]
	return ok
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
