package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
	"github.com/videohub/videohub/internal/app/service/clients"
)

type (
	PaymentService interface {
		CreateIntent(ctx context.Context, userUID, videoUID *uuid.UUID, amount float64) (*clients.IntentInfo, error)
		Confirm(ctx context.Context, userUID *uuid.UUID, intentID string) (*models.Payment, error)
		HandleWebhook(ctx context.Context, payload []byte, signature string) error
	}

	PaymentServiceImpl struct {
		paymentRepo     repository.PaymentRepository
		purchaseRepo    repository.PurchaseRepository
		videoRepo       repository.VideoRepository
		provider        clients.PaymentProvider
		purchaseService PurchaseService
		pendingChan     chan models.Payment
	}
)

func NewPaymentService(paymentRepo repository.PaymentRepository,
	purchaseRepo repository.PurchaseRepository,
	videoRepo repository.VideoRepository,
	provider clients.PaymentProvider,
	purchaseService PurchaseService,
	pendingChan chan models.Payment) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		purchaseRepo:    purchaseRepo,
		videoRepo:       videoRepo,
		provider:        provider,
		purchaseService: purchaseService,
		pendingChan:     pendingChan,
	}
}

func (ps *PaymentServiceImpl) CreateIntent(ctx context.Context, userUID, videoUID *uuid.UUID, amount float64) (*clients.IntentInfo, error) {
	video, err := ps.videoRepo.GetVideoByUID(ctx, videoUID)
	if err != nil {
		return nil, err
	}
	if video.Status != models.VideoPublished {
		msg := "video is not published"
		return nil, appErrors.NewWithCode(errors.New(msg), "Video is not published", http.StatusBadRequest)
	}
	if video.Price == 0 {
		msg := "video is free"
		return nil, appErrors.NewWithCode(errors.New(msg), "Video is free", http.StatusBadRequest)
	}
	if amount != video.Price {
		msg := "amount does not match video price"
		return nil, appErrors.NewWithCode(errors.New(msg), "Amount does not match video price", http.StatusBadRequest)
	}

	purchased, err := ps.purchaseRepo.CompletedPurchaseExists(ctx, userUID, videoUID)
	if err != nil {
		return nil, err
	}
	if purchased {
		msg := "video already purchased"
		return nil, appErrors.NewWithCode(errors.New(msg), "Video already purchased", http.StatusConflict)
	}

	// The key makes client retries land on the same provider intent instead
	// of minting duplicate pending ones.
	idempotencyKey := fmt.Sprintf("%s:%s", userUID, videoUID)
	intent, err := ps.provider.CreateIntent(amount, map[string]string{
		"user_uuid":  userUID.String(),
		"video_uuid": videoUID.String(),
	}, idempotencyKey)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Payment provider unavailable", http.StatusInternalServerError)
	}

	now := time.Now()
	payment := &models.Payment{
		PaymentIntentID: intent.IntentID,
		UserUUID:        *userUID,
		VideoUUID:       *videoUID,
		Amount:          amount,
		Status:          models.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := ps.paymentRepo.CreatePayment(ctx, payment); err != nil {
		// Retried requests reuse the provider intent; the local row already
		// exists then and the unique index rejects the second insert.
		existing, getErr := ps.paymentRepo.GetPaymentByIntentID(ctx, intent.IntentID)
		if getErr == nil && existing != nil {
			return intent, nil
		}
		return nil, fmt.Errorf("create payment: %w", err)
	}

	ps.pendingChan <- *payment
	return intent, nil
}

func (ps *PaymentServiceImpl) Confirm(ctx context.Context, userUID *uuid.UUID, intentID string) (*models.Payment, error) {
	payment, err := ps.paymentRepo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if payment.UserUUID != *userUID {
		msg := "payment belongs to another user"
		return nil, appErrors.NewWithCode(errors.New(msg), "Payment not found", http.StatusNotFound)
	}

	status, err := ps.provider.IntentStatus(intentID)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Payment provider unavailable", http.StatusInternalServerError)
	}

	if err := ps.applyProviderStatus(ctx, intentID, status); err != nil {
		return nil, err
	}
	return ps.paymentRepo.GetPaymentByIntentID(ctx, intentID)
}

func (ps *PaymentServiceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := ps.provider.VerifyWebhook(payload, signature)
	if err != nil {
		return appErrors.NewWithCode(err, "Invalid webhook signature", http.StatusBadRequest)
	}
	if event.Status == clients.IntentUnknown || event.IntentID == "" {
		// Event types outside the payment lifecycle are acknowledged as-is.
		return nil
	}
	return ps.applyProviderStatus(ctx, event.IntentID, event.Status)
}

func (ps *PaymentServiceImpl) applyProviderStatus(ctx context.Context, intentID string, status clients.IntentStatus) error {
	switch status {
	case clients.IntentSucceeded:
		return ps.purchaseService.Settle(ctx, intentID)
	case clients.IntentFailed:
		return ps.purchaseService.Fail(ctx, intentID, models.PaymentFailed)
	case clients.IntentCanceled:
		return ps.purchaseService.Fail(ctx, intentID, models.PaymentCanceled)
	}
	return nil
}
