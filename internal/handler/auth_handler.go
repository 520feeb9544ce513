package handler

import (
	"errors"
	"net/http"

	"app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録とログイン
type AuthHandler struct {
	registerUC *auth_usecase.RegisterUsecase
	loginUC    *auth_usecase.LoginUsecase
}

// DI
func NewAuthHandler(
	registerUC *auth_usecase.RegisterUsecase,
	loginUC *auth_usecase.LoginUsecase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
	}
}

// 認証前のルート
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/auth/register/student", h.registerStudent)
	e.POST("/auth/register/staff", h.registerStaff)
	e.POST("/auth/login", h.login)
}

type registerStudentRequest struct {
	Email              string `json:"email"`
	Password           string `json:"password"`
	FullName           string `json:"full_name"`
	RegistrationNumber string `json:"registration_number"`
	MobileNumber       string `json:"mobile_number"`
}

type registerStaffRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	MobileNumber string `json:"mobile_number"`
	CanteenName  string `json:"canteen_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// サービス内のエラーをHTTPステータスへ
func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth_usecase.ErrInvalidEmailFormat),
		errors.Is(err, auth_usecase.ErrPasswordTooShort),
		errors.Is(err, auth_usecase.ErrWeakPassword),
		errors.Is(err, auth_usecase.ErrFullNameRequired),
		errors.Is(err, auth_usecase.ErrCanteenNameRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth_usecase.ErrEmailAlreadyExists),
		errors.Is(err, auth_usecase.ErrCanteenAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth_usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
	case errors.Is(err, auth_usecase.ErrUserInactive):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "account is inactive"})
	default:
		return writeError(c, err)
	}
}

func (h *AuthHandler) registerStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.registerUC.RegisterStudent(c.Request().Context(), auth_usecase.RegisterStudentInput{
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		RegistrationNumber: req.RegistrationNumber,
		MobileNumber:       req.MobileNumber,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	user := out.User
	user.PasswordHash = ""
	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

func (h *AuthHandler) registerStaff(c echo.Context) error {
	var req registerStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.registerUC.RegisterStaff(c.Request().Context(), auth_usecase.RegisterStaffInput{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		CanteenName:  req.CanteenName,
	})
	if err != nil {
		return writeAuthError(c, err)
	}

	user := out.User
	user.PasswordHash = ""
	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth_usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
