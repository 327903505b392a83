package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/logger"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
	"go.uber.org/zap"
)

type (
	// PurchaseService owns settlement: the one code path that turns a
	// succeeded provider intent into a completed purchase. Client confirm,
	// webhook delivery and the background reconciler all funnel into Settle,
	// so racing callers converge on the conditional payment-status flip.
	PurchaseService interface {
		Settle(ctx context.Context, intentID string) error
		Fail(ctx context.Context, intentID string, status models.PaymentStatus) error
		Refund(ctx context.Context, intentID string) error
		GetPurchases(ctx context.Context, userUID *uuid.UUID) (*[]models.Purchase, error)
	}

	PurchaseServiceImpl struct {
		purchaseRepo  repository.PurchaseRepository
		paymentRepo   repository.PaymentRepository
		videoRepo     repository.VideoRepository
		walletService WalletService
	}
)

func NewPurchaseService(purchaseRepo repository.PurchaseRepository,
	paymentRepo repository.PaymentRepository,
	videoRepo repository.VideoRepository,
	walletService WalletService) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		purchaseRepo:  purchaseRepo,
		paymentRepo:   paymentRepo,
		videoRepo:     videoRepo,
		walletService: walletService,
	}
}

func (ps *PurchaseServiceImpl) Settle(ctx context.Context, intentID string) error {
	payment, err := ps.paymentRepo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return err
	}

	tx, err := ps.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The conditional flip is the idempotency gate: whichever of the racing
	// callers commits it first wins, the rest see zero rows and stop here.
	flipped, err := ps.paymentRepo.TransitionStatus(ctx, tx, intentID, models.PaymentPending, models.PaymentSucceeded)
	if err != nil {
		return err
	}
	if !flipped {
		logger.Log.Debug("payment already settled", zap.String("intent_id", intentID))
		return nil
	}

	video, err := ps.videoRepo.GetVideoByUID(ctx, &payment.VideoUUID)
	if err != nil {
		return err
	}

	purchase := &models.Purchase{
		UserUUID:        payment.UserUUID,
		VideoUUID:       payment.VideoUUID,
		Amount:          payment.Amount,
		Status:          models.PurchaseCompleted,
		PaymentIntentID: intentID,
		CreatedAt:       time.Now(),
	}
	err = ps.purchaseRepo.CreatePurchase(ctx, tx, purchase)
	if err != nil {
		// A different intent may already have bought this video for this user
		// (duplicate pending intents from pre-idempotency-key clients). Drop
		// the aborted transaction, then let the partial unique index arbitrate:
		// a completed purchase on record means another intent won, whatever
		// error type the driver reported for the collision.
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w", rbErr)
		}
		if !errors.Is(err, repository.ErrDuplicatePurchase) {
			exists, existsErr := ps.purchaseRepo.CompletedPurchaseExists(ctx, &payment.UserUUID, &payment.VideoUUID)
			if existsErr != nil || !exists {
				return fmt.Errorf("create purchase: %w", err)
			}
		}
		logger.Log.Info("purchase already exists, recording payment only",
			zap.String("intent_id", intentID))
		return ps.markSucceededOnly(ctx, intentID)
	}

	if _, err = ps.walletService.Credit(ctx, tx, &video.CreatorUUID, payment.Amount); err != nil {
		return fmt.Errorf("credit creator: %w", err)
	}
	if _, err = ps.walletService.Debit(ctx, tx, &payment.UserUUID, payment.Amount); err != nil {
		return fmt.Errorf("debit buyer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	logger.Log.Info("purchase settled",
		zap.String("intent_id", intentID),
		zap.String("video_uuid", payment.VideoUUID.String()),
		zap.String("user_uuid", payment.UserUUID.String()))
	return nil
}

func (ps *PurchaseServiceImpl) markSucceededOnly(ctx context.Context, intentID string) error {
	tx, err := ps.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()
	if _, err := ps.paymentRepo.TransitionStatus(ctx, tx, intentID, models.PaymentPending, models.PaymentSucceeded); err != nil {
		return err
	}
	return tx.Commit()
}

func (ps *PurchaseServiceImpl) Fail(ctx context.Context, intentID string, status models.PaymentStatus) error {
	if status != models.PaymentFailed && status != models.PaymentCanceled {
		msg := "not a terminal failure status"
		return appErrors.New(errors.New(msg), msg)
	}
	tx, err := ps.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := ps.paymentRepo.TransitionStatus(ctx, tx, intentID, models.PaymentPending, status)
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	logger.Log.Info("payment failed", zap.String("intent_id", intentID), zap.String("status", status.String()))
	return nil
}

// Refund revokes access and reverses the wallet movement along with the
// payment status flip, all in one transaction.
func (ps *PurchaseServiceImpl) Refund(ctx context.Context, intentID string) error {
	payment, err := ps.paymentRepo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	video, err := ps.videoRepo.GetVideoByUID(ctx, &payment.VideoUUID)
	if err != nil {
		return err
	}

	tx, err := ps.paymentRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := ps.paymentRepo.TransitionStatus(ctx, tx, intentID, models.PaymentSucceeded, models.PaymentRefunded)
	if err != nil {
		return err
	}
	if !flipped {
		msg := "payment is not refundable"
		return appErrors.NewWithCode(errors.New(msg), "Payment is not refundable", http.StatusConflict)
	}

	if err := ps.purchaseRepo.UpdateStatusByIntentID(ctx, tx, intentID, models.PurchaseCompleted, models.PurchaseRefunded); err != nil {
		return err
	}
	if _, err := ps.walletService.ReverseCredit(ctx, tx, &video.CreatorUUID, payment.Amount); err != nil {
		return fmt.Errorf("reverse creator credit: %w", err)
	}
	if _, err := ps.walletService.ReverseDebit(ctx, tx, &payment.UserUUID, payment.Amount); err != nil {
		return fmt.Errorf("reverse buyer debit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	logger.Log.Info("payment refunded", zap.String("intent_id", intentID))
	return nil
}

func (ps *PurchaseServiceImpl) GetPurchases(ctx context.Context, userUID *uuid.UUID) (*[]models.Purchase, error) {
	return ps.purchaseRepo.GetPurchasesByUserUID(ctx, userUID)
}
