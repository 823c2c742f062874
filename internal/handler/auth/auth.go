package auth

import (
	"context"
	"net/http"

	"user-system/internal/api"
	"user-system/internal/handler"
	"user-system/internal/model"

	"github.com/labstack/echo/v4"
)

// AccountService 定義 handler 所需的帳號服務操作，便於測試時替換。
type AccountService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, token, newPassword string) error
}

// @Summary     登入使用者
// @Description 使用 Email 與 Password 驗證，成功推進最後登入時間並回傳摘要
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
	}
}

// @Summary     Request a password reset
// @Description 為未刪除的使用者產生一次性重設令牌，並以 out-of-band 通道送出
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.PasswordResetRequest true "目標 Email"
// @Success     202 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/password-reset [post]
func RequestPasswordResetHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PasswordResetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := svc.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusAccepted, api.MessageResponse{Message: "reset token issued"})
	}
}

// @Summary     Reset password
// @Description 消耗一次性令牌並替換密碼；令牌過期、不符或重複使用回 401
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.ResetPasswordRequest true "Email、令牌與新密碼"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/password-reset/confirm [post]
func ResetPasswordHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ResetPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := svc.ResetPassword(c.Request().Context(), req.Email, req.Token, req.NewPassword); err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "password updated"})
	}
}
