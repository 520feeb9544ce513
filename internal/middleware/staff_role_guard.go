package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleがstaffかどうかを確認します。

func StaffRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//学生は拒否、スタッフだけ許可
			if role != string(model.RoleStaff) {
				return c.JSON(http.StatusForbidden, errorJSON("staff only"))
			}

			return next(c)
		}
	}
}
