package main

import (
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, canteenID *int64, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	//canteen_id はスタッフのみ
	if canteenID != nil {
		claims["canteen_id"] = *canteenID
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	// .env は無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Canteen{},
		&model.User{},
		&model.MenuItem{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	canteenRepo := infraRepo.NewCanteenGormRepository(gormDB)
	menuRepo := infraRepo.NewMenuItemGormRepository(gormDB)
	cartRepo := infraRepo.NewCartItemGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUC := auth.NewRegisterUsecase(userRepo, canteenRepo, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, menuRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	staffOrderUC := usecase.NewStaffOrderUsecase(txManager, userRepo, auditRepo)
	staffMenuUC := usecase.NewStaffMenuUsecase(menuRepo, auditRepo)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成
	h := server.Handlers{
		Auth:      handler.NewAuthHandler(registerUC, loginUC),
		Menu:      handler.NewMenuHandler(menuUC),
		Cart:      handler.NewCartHandler(cartUC),
		Order:     handler.NewOrderHandler(orderUC),
		StaffMenu: handler.NewStaffMenuHandler(staffMenuUC),
		StaffOrd:  handler.NewStaffOrderHandler(staffOrderUC),
		Audit:     handler.NewAuditLogHandler(auditUC),
	}

	//Server起動
	e := server.New(cfg, h)
	if err := server.Start(e, cfg); err != nil {
		panic(err)
	}
}
