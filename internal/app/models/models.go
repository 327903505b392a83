package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		UUID            uuid.UUID  `db:"uuid"`
		Name            string     `db:"name"`
		Email           string     `db:"email"`
		PasswordHash    string     `db:"password_hash"`
		Role            Role       `db:"role"`
		Status          UserStatus `db:"status"`
		VerifyToken     string     `db:"verify_token"`
		EmailVerifiedAt *time.Time `db:"email_verified_at"`
		CreatedAt       time.Time  `db:"created_at"`
	}
	Video struct {
		UUID        uuid.UUID   `db:"uuid"`
		CreatorUUID uuid.UUID   `db:"creator_uuid"`
		Title       string      `db:"title"`
		Description string      `db:"description"`
		Price       float64     `db:"price"`
		Status      VideoStatus `db:"status"`
		Views       int64       `db:"views"`
		Likes       int64       `db:"likes"`
		YoutubeID   *string     `db:"youtube_id"`
		CreatedAt   time.Time   `db:"created_at"`
		UpdatedAt   time.Time   `db:"updated_at"`
	}
	Purchase struct {
		ID              int64          `db:"id"`
		UserUUID        uuid.UUID      `db:"user_uuid"`
		VideoUUID       uuid.UUID      `db:"video_uuid"`
		Amount          float64        `db:"amount"`
		Status          PurchaseStatus `db:"status"`
		PaymentIntentID string         `db:"payment_intent_id"`
		CreatedAt       time.Time      `db:"created_at"`
	}
	Payment struct {
		ID              int64         `db:"id"`
		PaymentIntentID string        `db:"payment_intent_id"`
		UserUUID        uuid.UUID     `db:"user_uuid"`
		VideoUUID       uuid.UUID     `db:"video_uuid"`
		Amount          float64       `db:"amount"`
		Status          PaymentStatus `db:"status"`
		CreatedAt       time.Time     `db:"created_at"`
		UpdatedAt       time.Time     `db:"updated_at"`
	}
	Wallet struct {
		ID        int64     `db:"id"`
		UserUUID  uuid.UUID `db:"user_uuid"`
		Credits   float64   `db:"credits"`
		Debits    float64   `db:"debits"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	UserBalance struct {
		CurrentBalance float64
		TotalEarned    float64
		TotalSpent     float64
	}
)

type Role string

func (r Role) String() string {
	return string(r)
}

const (
	RoleAdmin   Role = "admin"
	RoleCreator Role = "creator"
	RoleViewer  Role = "viewer"
)

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleCreator || r == RoleViewer
}

type UserStatus string

func (s UserStatus) String() string {
	return string(s)
}

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

type VideoStatus string

func (s VideoStatus) String() string {
	return string(s)
}

const (
	VideoPending    VideoStatus = "pending"
	VideoProcessing VideoStatus = "processing"
	VideoPublished  VideoStatus = "published"
	VideoRemoved    VideoStatus = "removed"
)

func ValidVideoStatus(s VideoStatus) bool {
	switch s {
	case VideoPending, VideoProcessing, VideoPublished, VideoRemoved:
		return true
	}
	return false
}

type PurchaseStatus string

func (s PurchaseStatus) String() string {
	return string(s)
}

const (
	PurchasePending   PurchaseStatus = "pending"
	PurchaseCompleted PurchaseStatus = "completed"
	PurchaseFailed    PurchaseStatus = "failed"
	PurchaseRefunded  PurchaseStatus = "refunded"
)

type PaymentStatus string

func (s PaymentStatus) String() string {
	return string(s)
}

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCanceled  PaymentStatus = "canceled"
	PaymentRefunded  PaymentStatus = "refunded"
)
