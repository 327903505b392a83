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

const initWalletDB = `
CREATE TABLE IF NOT EXISTS wallets
(
    id INTEGER PRIMARY KEY,
    user_uuid TEXT UNIQUE NOT NULL,
    credits NUMERIC NOT NULL DEFAULT 0,
    debits NUMERIC NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (credits >= 0),
    CHECK (debits >= 0)
);
`

func setupInMemoryWalletDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(initWalletDB)
	if err != nil {
		t.Fatalf("could not create wallet table: %v", err)
	}
	return db
}

func createTestWallet(t *testing.T, db *sqlx.DB, repo WalletRepository) *models.Wallet {
	wallet := &models.Wallet{
		UserUUID:  uuid.New(),
		Credits:   0,
		Debits:    0,
		CreatedAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateWallet(context.Background(), tx, wallet))
	require.NoError(t, tx.Commit())
	return wallet
}

func TestWalletRepositoryImpl_CreateWallet(t *testing.T) {
	db := setupInMemoryWalletDB(t)
	defer db.Close()

	repo := NewWalletRepository(db)

	wallet := createTestWallet(t, db, repo)
	assert.NotZero(t, wallet.ID, "inserted wallet should get an id")

	retrieved, err := repo.GetWallet(context.Background(), &wallet.UserUUID)
	require.NoError(t, err)
	assert.Equal(t, wallet.UserUUID, retrieved.UserUUID)
	assert.Equal(t, 0.0, retrieved.Credits)
	assert.Equal(t, 0.0, retrieved.Debits)
}

func TestWalletRepositoryImpl_CreditAndDebit(t *testing.T) {
	db := setupInMemoryWalletDB(t)
	defer db.Close()

	repo := NewWalletRepository(db)
	wallet := createTestWallet(t, db, repo)

	tx, err := db.Beginx()
	require.NoError(t, err)
	credited, err := repo.Credit(context.Background(), tx, &wallet.UserUUID, 15.0)
	require.NoError(t, err)
	debited, err := repo.Debit(context.Background(), tx, &wallet.UserUUID, 5.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, 15.0, credited.Credits)
	assert.Equal(t, 5.0, debited.Debits)

	retrieved, err := repo.GetWallet(context.Background(), &wallet.UserUUID)
	require.NoError(t, err)
	assert.Equal(t, 15.0, retrieved.Credits)
	assert.Equal(t, 5.0, retrieved.Debits)
}

func TestWalletRepositoryImpl_ReverseMovements(t *testing.T) {
	db := setupInMemoryWalletDB(t)
	defer db.Close()

	repo := NewWalletRepository(db)
	wallet := createTestWallet(t, db, repo)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = repo.Credit(context.Background(), tx, &wallet.UserUUID, 10.0)
	require.NoError(t, err)
	_, err = repo.Debit(context.Background(), tx, &wallet.UserUUID, 10.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	tx, err = db.Beginx()
	require.NoError(t, err)
	_, err = repo.ReverseCredit(context.Background(), tx, &wallet.UserUUID, 10.0)
	require.NoError(t, err)
	_, err = repo.ReverseDebit(context.Background(), tx, &wallet.UserUUID, 10.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	retrieved, err := repo.GetWallet(context.Background(), &wallet.UserUUID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, retrieved.Credits)
	assert.Equal(t, 0.0, retrieved.Debits)
}

func TestWalletRepositoryImpl_ReverseCreditBelowZero(t *testing.T) {
	db := setupInMemoryWalletDB(t)
	defer db.Close()

	repo := NewWalletRepository(db)
	wallet := createTestWallet(t, db, repo)

	tx, err := db.Beginx()
	require.NoError(t, err)
	_, err = repo.ReverseCredit(context.Background(), tx, &wallet.UserUUID, 1.0)
	assert.Error(t, err, "credits must never go negative")
	require.NoError(t, tx.Rollback())
}
