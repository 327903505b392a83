package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/videohub/videohub/internal/app/models"
)

const initPurchaseDB = `
CREATE TABLE IF NOT EXISTS purchases
(
    id                INTEGER PRIMARY KEY,
    user_uuid         TEXT NOT NULL,
    video_uuid        TEXT NOT NULL,
    amount            NUMERIC NOT NULL,
    status            TEXT NOT NULL DEFAULT 'pending',
    payment_intent_id TEXT NOT NULL,
    created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_purchases_user_video_completed
    ON purchases (user_uuid, video_uuid) WHERE status = 'completed';
`

func setupInMemoryPurchaseDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(initPurchaseDB)
	if err != nil {
		t.Fatalf("could not create purchase table: %v", err)
	}
	return db
}

func newTestPurchase(userUID, videoUID uuid.UUID, status models.PurchaseStatus, intentID string) *models.Purchase {
	return &models.Purchase{
		UserUUID:        userUID,
		VideoUUID:       videoUID,
		Amount:          4.99,
		Status:          status,
		PaymentIntentID: intentID,
		CreatedAt:       time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPurchaseRepositoryImpl_CreatePurchase(t *testing.T) {
	db := setupInMemoryPurchaseDB(t)
	defer db.Close()

	repo := NewPurchaseRepository(db)
	userUID := uuid.New()
	videoUID := uuid.New()

	tests := []struct {
		name     string
		purchase *models.Purchase
		wantErr  bool
	}{
		{
			name:     "Successful Purchase Creation",
			purchase: newTestPurchase(userUID, videoUID, models.PurchaseCompleted, "pi_1"),
			wantErr:  false,
		},
		{
			name:     "Second Completed Purchase for the Same Video",
			purchase: newTestPurchase(userUID, videoUID, models.PurchaseCompleted, "pi_2"),
			wantErr:  true, // Unique index allows at most one completed row per (user, video)
		},
		{
			name:     "Refunded Purchase Does Not Collide",
			purchase: newTestPurchase(userUID, videoUID, models.PurchaseRefunded, "pi_3"),
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.Beginx()
			require.NoError(t, err)

			err = repo.CreatePurchase(context.Background(), tx, tt.purchase)
			if tt.wantErr {
				assert.Error(t, err, "CreatePurchase should fail")
				assert.NoError(t, tx.Rollback(), "Rollback should succeed")
			} else {
				assert.NoError(t, err, "CreatePurchase should not fail")
				assert.NoError(t, tx.Commit(), "Commit should succeed")
				assert.NotZero(t, tt.purchase.ID, "inserted purchase should get an id")
			}
		})
	}
}

func TestPurchaseRepositoryImpl_CompletedPurchaseExists(t *testing.T) {
	db := setupInMemoryPurchaseDB(t)
	defer db.Close()

	repo := NewPurchaseRepository(db)
	userUID := uuid.New()
	videoUID := uuid.New()

	exists, err := repo.CompletedPurchaseExists(context.Background(), &userUID, &videoUID)
	require.NoError(t, err)
	assert.False(t, exists, "no purchase yet")

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreatePurchase(context.Background(), tx, newTestPurchase(userUID, videoUID, models.PurchaseCompleted, "pi_exists")))
	require.NoError(t, tx.Commit())

	exists, err = repo.CompletedPurchaseExists(context.Background(), &userUID, &videoUID)
	require.NoError(t, err)
	assert.True(t, exists, "completed purchase should be visible")

	otherVideo := uuid.New()
	exists, err = repo.CompletedPurchaseExists(context.Background(), &userUID, &otherVideo)
	require.NoError(t, err)
	assert.False(t, exists, "other videos stay unpurchased")
}

func TestPurchaseRepositoryImpl_UpdateStatusByIntentID(t *testing.T) {
	db := setupInMemoryPurchaseDB(t)
	defer db.Close()

	repo := NewPurchaseRepository(db)
	userUID := uuid.New()
	videoUID := uuid.New()

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreatePurchase(context.Background(), tx, newTestPurchase(userUID, videoUID, models.PurchaseCompleted, "pi_refund")))
	require.NoError(t, tx.Commit())

	tx, err = db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatusByIntentID(context.Background(), tx, "pi_refund", models.PurchaseCompleted, models.PurchaseRefunded))
	require.NoError(t, tx.Commit())

	exists, err := repo.CompletedPurchaseExists(context.Background(), &userUID, &videoUID)
	require.NoError(t, err)
	assert.False(t, exists, "refunded purchase no longer grants access")

	purchases, err := repo.GetPurchasesByUserUID(context.Background(), &userUID)
	require.NoError(t, err)
	require.Len(t, *purchases, 1)
	assert.Equal(t, models.PurchaseRefunded, (*purchases)[0].Status)
}
