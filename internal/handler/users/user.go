package users

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
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	ListActive(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Block(ctx context.Context, userIDs []int) (int64, error)
	Unblock(ctx context.Context, userIDs []int) (int64, error)
	Delete(ctx context.Context, userIDs []int) (int64, error)
}

// @Summary     Register a new user
// @Description 接收姓名、Email 與密碼並建立新帳號；被封鎖的 Email 回 403，已註冊回 409
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/register [post]
func RegisterHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := svc.Register(c.Request().Context(), req.Name, req.Email, req.Password)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}

		return c.JSON(http.StatusCreated, api.UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			RegisteredAt: user.RegisteredAt,
		})
	}
}

// @Summary     List active users
// @Description 列出所有未刪除的使用者，依最後登入時間由新到舊排序
// @Tags        users
// @Produce     json
// @Success     200 {array} api.ListUserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/all [get]
func ListUsersHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := svc.ListActive(c.Request().Context())
		if err != nil {
			return handler.ErrorJSON(c, err)
		}

		resp := make([]api.ListUserResponse, 0, len(users))
		for i := range users {
			u := &users[i]
			resp = append(resp, api.ListUserResponse{
				ID:           u.ID,
				Name:         u.Name,
				Email:        u.Email,
				RegisteredAt: u.RegisteredAt,
				Status:       u.Status(),
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by email
// @Description 透過 Email 查詢使用者；被封鎖或已刪除回 403，不存在回 404
// @Tags        users
// @Produce     json
// @Param       email path string true "使用者 Email"
// @Success     200 {object} api.UserResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /users/{email} [get]
func GetUserByEmailHandler(svc AccountService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := svc.GetByEmail(c.Request().Context(), c.Param("email"))
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			RegisteredAt: user.RegisteredAt,
		})
	}
}

// @Summary     Block users
// @Description 批次封鎖指定 id 的使用者；空清單回 400，無符合列回 404
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.UserIDsRequest true "目標使用者 id 清單"
// @Success     200 {object} api.CountResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /users/block [post]
func BlockUsersHandler(svc AccountService) echo.HandlerFunc {
	return bulkHandler(func(ctx context.Context, ids []int) (int64, error) {
		return svc.Block(ctx, ids)
	})
}

// @Summary     Unblock users
// @Description 批次解除封鎖指定 id 的使用者；空清單回 400，無符合列回 404
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.UserIDsRequest true "目標使用者 id 清單"
// @Success     200 {object} api.CountResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /users/unblock [post]
func UnblockUsersHandler(svc AccountService) echo.HandlerFunc {
	return bulkHandler(func(ctx context.Context, ids []int) (int64, error) {
		return svc.Unblock(ctx, ids)
	})
}

// @Summary     Delete users
// @Description 批次軟刪除指定 id 的使用者，刪除後不可復原
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.UserIDsRequest true "目標使用者 id 清單"
// @Success     200 {object} api.CountResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BasicAuth
// @Router      /users/delete [post]
func DeleteUsersHandler(svc AccountService) echo.HandlerFunc {
	return bulkHandler(func(ctx context.Context, ids []int) (int64, error) {
		return svc.Delete(ctx, ids)
	})
}

// bulkHandler 為三個批次操作共用的 bind/validate/回應流程
func bulkHandler(apply func(ctx context.Context, ids []int) (int64, error)) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UserIDsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		count, err := apply(c.Request().Context(), req.IDs)
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, api.CountResponse{Count: count})
	}
}
