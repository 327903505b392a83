package service

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/videohub/videohub/internal/app/logger"
	"github.com/videohub/videohub/internal/app/models"
	"go.uber.org/zap"
)

type PaymentCache interface {
	AddPayment(payment *models.Payment)
}

// PaymentCacheImpl parks still-pending payments between provider polls;
// eviction pushes them back onto the processing channel.
type PaymentCacheImpl struct {
	*cache.Cache
	paymentChan chan models.Payment
}

func NewPaymentCache(defaultExpiration, cleanupInterval time.Duration, paymentChan chan models.Payment) *PaymentCacheImpl {
	c := cache.New(defaultExpiration, cleanupInterval)
	c.OnEvicted(func(key string, value interface{}) {
		payment, ok := value.(models.Payment)
		if !ok {
			return
		}
		paymentChan <- payment
	})
	return &PaymentCacheImpl{
		Cache:       c,
		paymentChan: paymentChan,
	}
}

func (c *PaymentCacheImpl) AddPayment(payment *models.Payment) {
	err := c.Add(payment.PaymentIntentID, *payment, cache.DefaultExpiration)
	if err != nil {
		logger.Log.Debug("payment already exists in cache", zap.String("intent_id", payment.PaymentIntentID))
	}
}
