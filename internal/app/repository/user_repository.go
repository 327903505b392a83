package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
)

type UserRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUID(ctx context.Context, userUID *uuid.UUID) (*models.User, error)
	FindByVerifyToken(ctx context.Context, token string) (*models.User, error)
	MarkEmailVerified(ctx context.Context, userUID *uuid.UUID, verifiedAt time.Time) error
	UpdateStatus(ctx context.Context, userUID *uuid.UUID, status models.UserStatus) error
	ListUsers(ctx context.Context) (*[]models.User, error)
	GetDB() *sqlx.DB
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (ur *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT * FROM users WHERE email = $1;`
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) FindByUID(ctx context.Context, userUID *uuid.UUID) (*models.User, error) {
	query := `SELECT * FROM users WHERE uuid = $1;`
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) FindByVerifyToken(ctx context.Context, token string) (*models.User, error) {
	query := `SELECT * FROM users WHERE verify_token = $1;`
	user := models.User{}
	err := ur.db.GetContext(ctx, &user, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "User not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (ur *UserRepositoryImpl) Create(ctx context.Context, tx *sqlx.Tx, user *models.User) error {
	query := `INSERT INTO users (uuid, name, email, password_hash, role, status, verify_token, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, user.UUID, user.Name, user.Email, user.PasswordHash,
		user.Role.String(), user.Status.String(), user.VerifyToken, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return appErrors.NewWithCode(err, "User already exists", http.StatusConflict)
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (ur *UserRepositoryImpl) MarkEmailVerified(ctx context.Context, userUID *uuid.UUID, verifiedAt time.Time) error {
	query := `UPDATE users SET email_verified_at = $1, verify_token = '' WHERE uuid = $2;`
	_, err := ur.db.ExecContext(ctx, query, verifiedAt, userUID)
	if err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	return nil
}

func (ur *UserRepositoryImpl) UpdateStatus(ctx context.Context, userUID *uuid.UUID, status models.UserStatus) error {
	query := `UPDATE users SET status = $1 WHERE uuid = $2;`
	res, err := ur.db.ExecContext(ctx, query, status.String(), userUID)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return appErrors.NewWithCode(sql.ErrNoRows, "User not found", http.StatusNotFound)
	}
	return nil
}

func (ur *UserRepositoryImpl) ListUsers(ctx context.Context) (*[]models.User, error) {
	query := `SELECT * FROM users ORDER BY created_at;`
	users := make([]models.User, 0)
	err := ur.db.SelectContext(ctx, &users, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &users, nil
		}
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &users, nil
}

func (ur *UserRepositoryImpl) GetDB() *sqlx.DB {
	return ur.db
}
