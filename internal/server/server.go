package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	appmw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なハンドラ一式
type Handlers struct {
	Auth      *handler.AuthHandler
	Menu      *handler.MenuHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	StaffMenu *handler.StaffMenuHandler
	StaffOrd  *handler.StaffOrderHandler
	Audit     *handler.AuditLogHandler
}

// New はechoを組み立てる。Startは呼ばない（テストでも使う）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderAuthorization, "X-Idempotency-Key",
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// 認証前
	h.Auth.RegisterRoutes(e)
	h.Menu.RegisterRoutes(e)

	// 要ログイン
	authed := e.Group("", appmw.AuthJWT(cfg))
	h.Cart.RegisterRoutes(authed)
	h.Order.RegisterRoutes(authed)

	// スタッフのみ
	staff := e.Group("/staff", appmw.AuthJWT(cfg), appmw.StaffRoleGuard())
	h.StaffMenu.RegisterRoutes(staff)
	h.StaffOrd.RegisterRoutes(staff)
	h.Audit.RegisterRoutes(staff)

	return e
}

// Start はサーバーを起動する
func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
