package handler

import (
	"errors"
	"net/http"

	"user-system/internal/api"
	"user-system/internal/model"

	"github.com/labstack/echo/v4"
)

// StatusOf 將業務錯誤對應到 HTTP 狀態碼，未知錯誤一律視為 500
func StatusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrBadResetToken):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrBlocked):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorJSON 以統一格式回傳錯誤響應
func ErrorJSON(c echo.Context, err error) error {
	return c.JSON(StatusOf(err), api.ErrorResponse{Message: err.Error()})
}
