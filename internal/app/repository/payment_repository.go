package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByIntentID(ctx context.Context, intentID string) (*models.Payment, error)
	// TransitionStatus flips a payment from one status to another and reports
	// whether this call performed the flip. A false return with nil error
	// means another path already moved the row; both settlement paths key
	// their idempotency on it.
	TransitionStatus(ctx context.Context, tx *sqlx.Tx, intentID string, from, to models.PaymentStatus) (bool, error)
	CountPendingPayments() (int, error)
	GetPendingPayments(limit int, offset int) (*[]models.Payment, error)
	GetDB() *sqlx.DB
}

type PaymentRepositoryImpl struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepositoryImpl {
	return &PaymentRepositoryImpl{db: db}
}

func (pr *PaymentRepositoryImpl) CreatePayment(ctx context.Context, payment *models.Payment) error {
	query := `INSERT INTO payments (payment_intent_id, user_uuid, video_uuid, amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`
	err := pr.db.QueryRowContext(ctx, query, payment.PaymentIntentID, payment.UserUUID, payment.VideoUUID,
		payment.Amount, payment.Status.String(), payment.CreatedAt, payment.UpdatedAt).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (pr *PaymentRepositoryImpl) GetPaymentByIntentID(ctx context.Context, intentID string) (*models.Payment, error) {
	query := `SELECT * FROM payments WHERE payment_intent_id = $1;`
	payment := &models.Payment{}
	err := pr.db.GetContext(ctx, payment, query, intentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Payment not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

func (pr *PaymentRepositoryImpl) TransitionStatus(ctx context.Context, tx *sqlx.Tx, intentID string, from, to models.PaymentStatus) (bool, error) {
	query := `UPDATE payments SET status = $1, updated_at = $2 WHERE payment_intent_id = $3 AND status = $4;`
	res, err := tx.ExecContext(ctx, query, to.String(), time.Now(), intentID, from.String())
	if err != nil {
		return false, fmt.Errorf("transition payment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected == 1, nil
}

func (pr *PaymentRepositoryImpl) CountPendingPayments() (int, error) {
	query := `SELECT count(*) FROM payments WHERE status = 'pending'`
	var count int
	err := pr.db.Get(&count, query)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (pr *PaymentRepositoryImpl) GetPendingPayments(limit int, offset int) (*[]models.Payment, error) {
	query := `SELECT * FROM payments WHERE status = 'pending' ORDER BY created_at LIMIT $1 OFFSET $2`
	payments := make([]models.Payment, 0)
	err := pr.db.Select(&payments, query, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &payments, nil
		}
		return nil, fmt.Errorf("read pending payments: %w", err)
	}
	return &payments, nil
}

func (pr *PaymentRepositoryImpl) GetDB() *sqlx.DB {
	return pr.db
}
