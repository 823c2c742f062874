package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"user-system/internal/database"
	"user-system/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation 判斷是否違反唯一索引 (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsBlocked,
		&u.IsDeleted,
		&u.RegisteredAt,
		&u.LastLoginTime,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail 依 Email 取回使用者，包含已軟刪除的列。
// Email 為精確比對，不做大小寫正規化。
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_blocked, is_deleted, registered_at, last_login_time
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者，違反 email 唯一索引時回傳 model.ErrEmailTaken。
// 同時註冊的競態由資料庫的唯一索引仲裁。
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, registered_at, last_login_time`,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.RegisteredAt, &u.LastLoginTime); err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ResurrectUser 重用已軟刪除的列完成重新註冊：
// 清除兩個旗標、寫入新密碼哈希並刷新兩個時間戳，保留原 id。
func ResurrectUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET name = $1, password_hash = $2, is_blocked = FALSE, is_deleted = FALSE,
		     registered_at = now(), last_login_time = now()
		 WHERE id = $3 AND is_deleted
		 RETURNING registered_at, last_login_time`,
		u.Name,
		u.PasswordHash,
		u.ID,
	)
	if err := row.Scan(&u.RegisteredAt, &u.LastLoginTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("ResurrectUser: %w", err)
	}
	u.IsBlocked = false
	u.IsDeleted = false
	return u, nil
}

// ListActiveUsers 列出未刪除的使用者，依最後登入時間由新到舊排序。
func ListActiveUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, password_hash, is_blocked, is_deleted, registered_at, last_login_time
		 FROM users WHERE NOT is_deleted
		 ORDER BY last_login_time DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListActiveUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListActiveUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListActiveUsers: %w", err)
	}
	return users, nil
}

// UpdateLastLogin 於登入成功時推進 last_login_time。
func UpdateLastLogin(ctx context.Context, db database.DB, userID int, at time.Time) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET last_login_time = $1 WHERE id = $2`,
		at,
		userID,
	)
	if err != nil {
		return fmt.Errorf("UpdateLastLogin: %w", err)
	}
	return nil
}

// SetUsersBlocked 以單一敘述批次設定封鎖旗標，已刪除的列不受影響。
// 回傳實際更新的列數。
func SetUsersBlocked(ctx context.Context, db database.DB, userIDs []int, blocked bool) (int64, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users SET is_blocked = $1
		 WHERE id = ANY($2) AND NOT is_deleted`,
		blocked,
		userIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("SetUsersBlocked: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SoftDeleteUsers 以單一敘述批次設定刪除旗標並回傳受影響的 id，
// 不物理移除任何列。
func SoftDeleteUsers(ctx context.Context, db database.DB, userIDs []int) ([]int, error) {
	rows, err := db.Query(ctx,
		`UPDATE users SET is_deleted = TRUE
		 WHERE id = ANY($1) AND NOT is_deleted
		 RETURNING id`,
		userIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("SoftDeleteUsers: %w", err)
	}
	defer rows.Close()

	var deleted []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("SoftDeleteUsers: %w", err)
		}
		deleted = append(deleted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SoftDeleteUsers: %w", err)
	}
	return deleted, nil
}

// UpdateUserPassword 替換未刪除使用者的密碼哈希。
func UpdateUserPassword(ctx context.Context, db database.DB, email string, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET password_hash = $1
		 WHERE email = $2 AND NOT is_deleted`,
		passwordHash,
		email,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserPassword: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
