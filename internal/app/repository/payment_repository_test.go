package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/videohub/videohub/internal/app/models"
)

const initPaymentDB = `
CREATE TABLE IF NOT EXISTS payments
(
    id                INTEGER PRIMARY KEY,
    payment_intent_id TEXT UNIQUE NOT NULL,
    user_uuid         TEXT NOT NULL,
    video_uuid        TEXT NOT NULL,
    amount            NUMERIC NOT NULL,
    status            TEXT NOT NULL DEFAULT 'pending',
    created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupInMemoryPaymentDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(initPaymentDB)
	if err != nil {
		t.Fatalf("could not create payment table: %v", err)
	}
	_, err = db.Exec(`DELETE FROM payments;`)
	if err != nil {
		t.Fatalf("could not clean payment table: %v", err)
	}
	return db
}

func newTestPayment(intentID string, status models.PaymentStatus) *models.Payment {
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Payment{
		PaymentIntentID: intentID,
		UserUUID:        uuid.New(),
		VideoUUID:       uuid.New(),
		Amount:          9.99,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPaymentRepositoryImpl_CreatePayment(t *testing.T) {
	db := setupInMemoryPaymentDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	tests := []struct {
		name    string
		payment *models.Payment
		wantErr bool
	}{
		{
			name:    "Successful Payment Creation",
			payment: newTestPayment("pi_create_1", models.PaymentPending),
			wantErr: false,
		},
		{
			name:    "Payment Creation with Duplicate Intent ID",
			payment: newTestPayment("pi_create_1", models.PaymentPending),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CreatePayment(context.Background(), tt.payment)
			if tt.wantErr {
				assert.Error(t, err, "CreatePayment should fail")
			} else {
				assert.NoError(t, err, "CreatePayment should not fail")
				assert.NotZero(t, tt.payment.ID, "inserted payment should get an id")
			}
		})
	}
}

func TestPaymentRepositoryImpl_GetPaymentByIntentID(t *testing.T) {
	db := setupInMemoryPaymentDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	payment := newTestPayment("pi_get_1", models.PaymentPending)
	require.NoError(t, repo.CreatePayment(context.Background(), payment))

	got, err := repo.GetPaymentByIntentID(context.Background(), "pi_get_1")
	assert.NoError(t, err)
	assert.Equal(t, payment.UserUUID, got.UserUUID)
	assert.Equal(t, payment.Amount, got.Amount)
	assert.Equal(t, models.PaymentPending, got.Status)

	_, err = repo.GetPaymentByIntentID(context.Background(), "pi_missing")
	assert.Error(t, err, "GetPaymentByIntentID should fail for an unknown intent")
}

func TestPaymentRepositoryImpl_TransitionStatus(t *testing.T) {
	db := setupInMemoryPaymentDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	payment := newTestPayment("pi_flip_1", models.PaymentPending)
	require.NoError(t, repo.CreatePayment(context.Background(), payment))

	// First flip wins.
	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.TransitionStatus(context.Background(), tx, "pi_flip_1", models.PaymentPending, models.PaymentSucceeded)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.True(t, flipped, "first transition should flip the row")

	// Second flip from the same source status is a no-op.
	tx, err = db.Beginx()
	require.NoError(t, err)
	flipped, err = repo.TransitionStatus(context.Background(), tx, "pi_flip_1", models.PaymentPending, models.PaymentSucceeded)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.False(t, flipped, "already settled payment should not flip again")

	got, err := repo.GetPaymentByIntentID(context.Background(), "pi_flip_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSucceeded, got.Status)
}

func TestPaymentRepositoryImpl_GetPendingPayments(t *testing.T) {
	db := setupInMemoryPaymentDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	require.NoError(t, repo.CreatePayment(context.Background(), newTestPayment("pi_pending_1", models.PaymentPending)))
	require.NoError(t, repo.CreatePayment(context.Background(), newTestPayment("pi_pending_2", models.PaymentPending)))
	require.NoError(t, repo.CreatePayment(context.Background(), newTestPayment("pi_done_1", models.PaymentSucceeded)))

	count, err := repo.CountPendingPayments()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	pending, err := repo.GetPendingPayments(10, 0)
	require.NoError(t, err)
	assert.Len(t, *pending, 2)
	for _, p := range *pending {
		assert.Equal(t, models.PaymentPending, p.Status)
	}

	page, err := repo.GetPendingPayments(1, 1)
	require.NoError(t, err)
	assert.Len(t, *page, 1)
}
