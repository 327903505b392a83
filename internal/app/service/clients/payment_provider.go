package clients

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
	"github.com/stripe/stripe-go/v75/webhook"
	"github.com/videohub/videohub/internal/app/config"
	"go.uber.org/ratelimit"
)

type (
	// PaymentProvider is the boundary to the payment processor. The core only
	// needs intent creation, status retrieval and signed webhook decoding.
	PaymentProvider interface {
		CreateIntent(amount float64, metadata map[string]string, idempotencyKey string) (*IntentInfo, error)
		IntentStatus(intentID string) (IntentStatus, error)
		VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
	}

	IntentInfo struct {
		IntentID     string
		ClientSecret string
		Status       IntentStatus
	}

	WebhookEvent struct {
		EventID  string
		IntentID string
		Status   IntentStatus
	}

	IntentStatus string

	StripeProvider struct {
		api           *client.API
		webhookSecret string
		rateLimiter   ratelimit.Limiter
	}
)

const (
	IntentPending   IntentStatus = "pending"
	IntentSucceeded IntentStatus = "succeeded"
	IntentFailed    IntentStatus = "failed"
	IntentCanceled  IntentStatus = "canceled"
	IntentUnknown   IntentStatus = "unknown"
)

func NewStripeProvider(c config.AppConfig) *StripeProvider {
	api := &client.API{}
	api.Init(c.StripeSecretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			HTTPClient: &http.Client{Timeout: time.Duration(c.StripeRequestTimeout) * time.Second},
		}),
	})
	return &StripeProvider{
		api:           api,
		webhookSecret: c.StripeWebhookSecret,
		rateLimiter:   ratelimit.New(c.StripeRequestsPerSec),
	}
}

func (sp *StripeProvider) CreateIntent(amount float64, metadata map[string]string, idempotencyKey string) (*IntentInfo, error) {
	sp.rateLimiter.Take()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toCents(amount)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.IdempotencyKey = stripe.String(idempotencyKey)
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := sp.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &IntentInfo{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       mapIntentStatus(pi.Status),
	}, nil
}

func (sp *StripeProvider) IntentStatus(intentID string) (IntentStatus, error) {
	sp.rateLimiter.Take()

	pi, err := sp.api.PaymentIntents.Get(intentID, nil)
	if err != nil {
		return IntentUnknown, fmt.Errorf("retrieve payment intent: %w", err)
	}
	return mapIntentStatus(pi.Status), nil
}

func (sp *StripeProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, sp.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	var status IntentStatus
	switch event.Type {
	case "payment_intent.succeeded":
		status = IntentSucceeded
	case "payment_intent.payment_failed":
		status = IntentFailed
	case "payment_intent.canceled":
		status = IntentCanceled
	default:
		status = IntentUnknown
	}

	intentID, _ := event.Data.Object["id"].(string)
	return &WebhookEvent{
		EventID:  event.ID,
		IntentID: intentID,
		Status:   status,
	}, nil
}

func mapIntentStatus(s stripe.PaymentIntentStatus) IntentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return IntentSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return IntentCanceled
	case stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusProcessing:
		return IntentPending
	}
	return IntentUnknown
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
