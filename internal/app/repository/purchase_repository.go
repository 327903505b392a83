package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/videohub/videohub/internal/app/models"
)

// ErrDuplicatePurchase reports an insert that hit the partial unique index on
// completed (user, video) pairs. Callers treat it as "already purchased".
var ErrDuplicatePurchase = errors.New("completed purchase already exists")

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, tx *sqlx.Tx, purchase *models.Purchase) error
	CompletedPurchaseExists(ctx context.Context, userUID, videoUID *uuid.UUID) (bool, error)
	GetPurchasesByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Purchase, error)
	UpdateStatusByIntentID(ctx context.Context, tx *sqlx.Tx, intentID string, from, to models.PurchaseStatus) error
	GetDB() *sqlx.DB
}

type PurchaseRepositoryImpl struct {
	db *sqlx.DB
}

func NewPurchaseRepository(db *sqlx.DB) *PurchaseRepositoryImpl {
	return &PurchaseRepositoryImpl{db: db}
}

func (pr *PurchaseRepositoryImpl) CreatePurchase(ctx context.Context, tx *sqlx.Tx, purchase *models.Purchase) error {
	query := `INSERT INTO purchases (user_uuid, video_uuid, amount, status, payment_intent_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, purchase.UserUUID, purchase.VideoUUID, purchase.Amount,
		purchase.Status.String(), purchase.PaymentIntentID, purchase.CreatedAt).Scan(&purchase.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicatePurchase
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (pr *PurchaseRepositoryImpl) CompletedPurchaseExists(ctx context.Context, userUID, videoUID *uuid.UUID) (bool, error) {
	query := `SELECT count(*) FROM purchases WHERE user_uuid = $1 AND video_uuid = $2 AND status = 'completed';`
	var count int
	err := pr.db.GetContext(ctx, &count, query, userUID, videoUID)
	if err != nil {
		return false, fmt.Errorf("count completed purchases: %w", err)
	}
	return count > 0, nil
}

func (pr *PurchaseRepositoryImpl) GetPurchasesByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Purchase, error) {
	query := `SELECT * FROM purchases WHERE user_uuid = $1 ORDER BY created_at DESC;`
	purchases := make([]models.Purchase, 0)
	err := pr.db.SelectContext(ctx, &purchases, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &purchases, nil
		}
		return nil, fmt.Errorf("read user purchases: %w", err)
	}
	return &purchases, nil
}

func (pr *PurchaseRepositoryImpl) UpdateStatusByIntentID(ctx context.Context, tx *sqlx.Tx, intentID string, from, to models.PurchaseStatus) error {
	query := `UPDATE purchases SET status = $1 WHERE payment_intent_id = $2 AND status = $3;`
	_, err := tx.ExecContext(ctx, query, to.String(), intentID, from.String())
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	return nil
}

func (pr *PurchaseRepositoryImpl) GetDB() *sqlx.DB {
	return pr.db
}
