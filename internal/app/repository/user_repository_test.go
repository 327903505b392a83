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

const initUserDB = `
CREATE TABLE IF NOT EXISTS users
(
    uuid              TEXT PRIMARY KEY,
    name              TEXT NOT NULL DEFAULT '',
    email             TEXT UNIQUE NOT NULL,
    password_hash     TEXT NOT NULL,
    role              TEXT NOT NULL DEFAULT 'viewer',
    status            TEXT NOT NULL DEFAULT 'active',
    verify_token      TEXT NOT NULL DEFAULT '',
    email_verified_at TIMESTAMP,
    created_at        TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupInMemoryUserDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb1?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(initUserDB)
	if err != nil {
		t.Fatalf("could not create user table: %v", err)
	}
	return db
}

func TestUserRepositoryImpl_Create(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()

	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		user    *models.User
		wantErr bool
	}{
		{
			name: "Successful User Creation",
			user: &models.User{
				UUID:         uuid.New(),
				Name:         "New User",
				Email:        "newuser@example.com",
				PasswordHash: "hash",
				Role:         models.RoleViewer,
				Status:       models.UserActive,
				VerifyToken:  "token-1",
				CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: false,
		},
		{
			name: "User Creation with Duplicate Email",
			user: &models.User{
				UUID:         uuid.New(),
				Name:         "Other User",
				Email:        "newuser@example.com", // Same email as above
				PasswordHash: "hash",
				Role:         models.RoleViewer,
				Status:       models.UserActive,
				VerifyToken:  "token-2",
				CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: true, // Expect an error due to unique constraint violation
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.Beginx()
			require.NoError(t, err)

			err = repo.Create(context.Background(), tx, tt.user)
			if tt.wantErr {
				assert.Error(t, err, "Create should fail")
				assert.NoError(t, tx.Rollback(), "Rollback should succeed")
			} else {
				assert.NoError(t, err, "Create should not fail")
				assert.NoError(t, tx.Commit(), "Commit should succeed")
			}
		})
	}
}

func TestUserRepositoryImpl_FindByEmail(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()

	// Insert a test user into the database
	testUser := &models.User{
		UUID:         uuid.New(),
		Name:         "Test User",
		Email:        "testuser@example.com",
		PasswordHash: "hash",
		Role:         models.RoleCreator,
		Status:       models.UserActive,
		VerifyToken:  "verify-token",
		CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := db.NamedExec(`INSERT INTO users (uuid, name, email, password_hash, role, status, verify_token, created_at)
							VALUES (:uuid, :name, :email, :password_hash, :role, :status, :verify_token, :created_at)`, testUser)
	require.NoError(t, err)

	repo := NewUserRepository(db)

	tests := []struct {
		name    string
		email   string
		want    *models.User
		wantErr bool
	}{
		{
			name:    "User Found by Email",
			email:   "testuser@example.com",
			want:    testUser,
			wantErr: false,
		},
		{
			name:    "User Not Found by Email",
			email:   "nonexistent@example.com",
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.wantErr {
				assert.Error(t, err, "FindByEmail should fail")
			} else {
				assert.NoError(t, err, "FindByEmail should not fail")
				assert.Equal(t, tt.want, got, "Expected retrieved user to match the test user")
			}
		})
	}
}

func TestUserRepositoryImpl_FindByVerifyToken(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()

	testUser := &models.User{
		UUID:         uuid.New(),
		Name:         "Pending User",
		Email:        "pending@example.com",
		PasswordHash: "hash",
		Role:         models.RoleViewer,
		Status:       models.UserActive,
		VerifyToken:  "pending-token",
		CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := db.NamedExec(`INSERT INTO users (uuid, name, email, password_hash, role, status, verify_token, created_at)
							VALUES (:uuid, :name, :email, :password_hash, :role, :status, :verify_token, :created_at)`, testUser)
	require.NoError(t, err)

	repo := NewUserRepository(db)

	got, err := repo.FindByVerifyToken(context.Background(), "pending-token")
	assert.NoError(t, err)
	assert.Equal(t, testUser.UUID, got.UUID)

	_, err = repo.FindByVerifyToken(context.Background(), "unknown-token")
	assert.Error(t, err, "FindByVerifyToken should fail for an unknown token")
}

func TestUserRepositoryImpl_MarkEmailVerified(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()

	testUser := &models.User{
		UUID:         uuid.New(),
		Name:         "Verify User",
		Email:        "verify@example.com",
		PasswordHash: "hash",
		Role:         models.RoleViewer,
		Status:       models.UserActive,
		VerifyToken:  "verify-me",
		CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := db.NamedExec(`INSERT INTO users (uuid, name, email, password_hash, role, status, verify_token, created_at)
							VALUES (:uuid, :name, :email, :password_hash, :role, :status, :verify_token, :created_at)`, testUser)
	require.NoError(t, err)

	repo := NewUserRepository(db)

	verifiedAt := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	err = repo.MarkEmailVerified(context.Background(), &testUser.UUID, verifiedAt)
	require.NoError(t, err)

	got, err := repo.FindByUID(context.Background(), &testUser.UUID)
	require.NoError(t, err)
	require.NotNil(t, got.EmailVerifiedAt)
	assert.Equal(t, verifiedAt, *got.EmailVerifiedAt)
	assert.Empty(t, got.VerifyToken, "verify token should be cleared")
}

func TestUserRepositoryImpl_UpdateStatus(t *testing.T) {
	db := setupInMemoryUserDB(t)
	defer db.Close()

	testUser := &models.User{
		UUID:         uuid.New(),
		Name:         "Blocked User",
		Email:        "blocked@example.com",
		PasswordHash: "hash",
		Role:         models.RoleViewer,
		Status:       models.UserActive,
		VerifyToken:  "",
		CreatedAt:    time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	_, err := db.NamedExec(`INSERT INTO users (uuid, name, email, password_hash, role, status, verify_token, created_at)
							VALUES (:uuid, :name, :email, :password_hash, :role, :status, :verify_token, :created_at)`, testUser)
	require.NoError(t, err)

	repo := NewUserRepository(db)

	err = repo.UpdateStatus(context.Background(), &testUser.UUID, models.UserBlocked)
	require.NoError(t, err)

	got, err := repo.FindByUID(context.Background(), &testUser.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.UserBlocked, got.Status)

	unknownUID := uuid.New()
	err = repo.UpdateStatus(context.Background(), &unknownUID, models.UserBlocked)
	assert.Error(t, err, "UpdateStatus should fail for an unknown user")
}
