package service

import (
	"context"

	"github.com/videohub/videohub/internal/app/logger"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
	"github.com/videohub/videohub/internal/app/service/clients"
	"go.uber.org/zap"
)

// PaymentReconciler polls the provider for payments stuck in pending,
// covering lost webhooks and clients that never called confirm.
type PaymentReconciler interface {
	ReconcilePayments(ctx context.Context)
}

type PaymentReconcilerImpl struct {
	paymentRepo     repository.PaymentRepository
	paymentCache    PaymentCache
	purchaseService PurchaseService
	provider        clients.PaymentProvider
	pendingChan     chan models.Payment
}

func NewPaymentReconciler(paymentRepo repository.PaymentRepository,
	paymentCache PaymentCache,
	purchaseService PurchaseService,
	provider clients.PaymentProvider,
	pendingChan chan models.Payment) *PaymentReconcilerImpl {
	r := &PaymentReconcilerImpl{
		paymentRepo:     paymentRepo,
		paymentCache:    paymentCache,
		purchaseService: purchaseService,
		provider:        provider,
		pendingChan:     pendingChan,
	}
	r.EnqueueUnsettledPayments()
	return r
}

// EnqueueUnsettledPayments republishes pending rows left over from a
// previous run.
func (r *PaymentReconcilerImpl) EnqueueUnsettledPayments() {
	logger.Log.Info("start processing unsettled payments")
	totalPayments, err := r.paymentRepo.CountPendingPayments()
	if err != nil {
		logger.Log.Error("failed to count pending payments", zap.Error(err))
		return
	}
	if totalPayments != 0 {
		cnt := 0
		for cnt < totalPayments {
			limit := 20
			offset := cnt
			payments, err := r.paymentRepo.GetPendingPayments(limit, offset)
			if err != nil {
				logger.Log.Error("failed to get pending payments", zap.Error(err))
				return
			}
			for _, payment := range *payments {
				r.pendingChan <- payment
			}
			cnt += 20
		}
	}
	logger.Log.Info("published unsettled payments", zap.Int("total_payments", totalPayments))
}

func (r *PaymentReconcilerImpl) ReconcilePayments(ctx context.Context) {
	for {
		select {
		case payment := <-r.pendingChan:
			logger.Log.Debug("reconciling payment", zap.String("intent_id", payment.PaymentIntentID))
			status, err := r.provider.IntentStatus(payment.PaymentIntentID)
			if err != nil {
				logger.Log.Debug("error getting intent status", zap.Error(err))
				r.paymentCache.AddPayment(&payment)
				continue
			}

			switch status {
			case clients.IntentSucceeded:
				if err := r.purchaseService.Settle(ctx, payment.PaymentIntentID); err != nil {
					logger.Log.Error("failed to settle payment", zap.Error(err))
					r.paymentCache.AddPayment(&payment)
				}
			case clients.IntentFailed:
				if err := r.purchaseService.Fail(ctx, payment.PaymentIntentID, models.PaymentFailed); err != nil {
					logger.Log.Error("failed to mark payment failed", zap.Error(err))
					r.paymentCache.AddPayment(&payment)
				}
			case clients.IntentCanceled:
				if err := r.purchaseService.Fail(ctx, payment.PaymentIntentID, models.PaymentCanceled); err != nil {
					logger.Log.Error("failed to mark payment canceled", zap.Error(err))
					r.paymentCache.AddPayment(&payment)
				}
			default:
				// Still pending on the provider side, retry after the cache TTL.
				r.paymentCache.AddPayment(&payment)
			}
		case <-ctx.Done():
			return
		}
	}
}
