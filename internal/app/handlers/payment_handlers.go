package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	appContext "github.com/videohub/videohub/internal/app/context"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/service"
)

type (
	PaymentHandler struct {
		paymentService  service.PaymentService
		purchaseService service.PurchaseService
		contextTimeout  time.Duration
	}

	//easyjson:json
	CreatePaymentDTO struct {
		VideoID string  `json:"video_id"`
		Amount  float64 `json:"amount"`
	}
	//easyjson:json
	IntentDTO struct {
		IntentID     string `json:"intent_id"`
		ClientSecret string `json:"client_secret"`
		Status       string `json:"status"`
	}
	//easyjson:json
	ConfirmPaymentDTO struct {
		IntentID string `json:"intent_id"`
	}
	//easyjson:json
	PaymentDTO struct {
		IntentID  string    `json:"intent_id"`
		VideoID   string    `json:"video_id"`
		Amount    float64   `json:"amount"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
	//easyjson:json
	PurchaseDTO struct {
		VideoID     string    `json:"video_id"`
		Amount      float64   `json:"amount"`
		Status      string    `json:"status"`
		IntentID    string    `json:"intent_id"`
		PurchasedAt time.Time `json:"purchased_at"`
	}
	//easyjson:json
	PurchaseDTOSlice []PurchaseDTO
)

func NewPaymentHandler(contextTimeoutSec int, paymentService service.PaymentService, purchaseService service.PurchaseService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		purchaseService: purchaseService,
		contextTimeout:  time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreatePayment godoc
// @Summary Create a payment intent for a paid video
// @Description The video must be published and priced, the amount must match the price and
// the caller must not already own a completed purchase.
// @Tags payment
// @Accept json
// @Produce json
// @Param payment body CreatePaymentDTO true "Payment request"
// @Success 201 {object} IntentDTO
// @Failure 400 {object} ErrorResponse "Bad Request - invalid amount or unpublished video"
// @Failure 409 {object} ErrorResponse "Conflict - video already purchased"
// @Failure 500 {object} ErrorResponse "Payment provider unavailable"
// @Security ApiKeyAuth
// @Router /api/payments [post]
func (ph *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	createDto := CreatePaymentDTO{}
	err = createDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	videoUID, err := uuid.Parse(createDto.VideoID)
	if err != nil {
		err = appErrors.NewWithCode(err, "Invalid video id", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	if createDto.Amount <= 0 {
		msg := "non-positive amount"
		err = appErrors.NewWithCode(errors.New(msg), "Invalid amount", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	userUID := appContext.UserUID(r.Context())
	intent, err := ph.paymentService.CreateIntent(ctx, userUID, &videoUID, createDto.Amount)
	if err != nil {
		PrepareError(w, err)
		return
	}

	intentDto := IntentDTO{
		IntentID:     intent.IntentID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}
	rawBytes, err := intentDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(rawBytes)
}

// ConfirmPayment godoc
// @Summary Client-confirm path for a payment intent
// @Description The server re-checks the intent status with the provider and settles the
// purchase when it succeeded. Confirming twice is a no-op.
// @Tags payment
// @Accept json
// @Produce json
// @Param payment body ConfirmPaymentDTO true "Intent to confirm"
// @Success 200 {object} PaymentDTO
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 500 {object} ErrorResponse "Payment provider unavailable"
// @Security ApiKeyAuth
// @Router /api/payments/confirm [post]
func (ph *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	confirmDto := ConfirmPaymentDTO{}
	err = confirmDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	if confirmDto.IntentID == "" {
		msg := "intent id is required"
		err = appErrors.NewWithCode(errors.New(msg), "Intent id is required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	userUID := appContext.UserUID(r.Context())
	payment, err := ph.paymentService.Confirm(ctx, userUID, confirmDto.IntentID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	paymentDto := PaymentDTO{
		IntentID:  payment.PaymentIntentID,
		VideoID:   payment.VideoUUID.String(),
		Amount:    payment.Amount,
		Status:    payment.Status.String(),
		CreatedAt: payment.CreatedAt,
	}
	rawBytes, err := paymentDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

// StripeWebhook godoc
// @Summary Signed provider webhook
// @Description Verifies the Stripe-Signature header and applies the reported intent state
// through the same settlement path as client confirm.
// @Tags payment
// @Accept json
// @Success 200 "Event processed"
// @Failure 400 {object} ErrorResponse "Invalid signature or payload"
// @Router /api/webhooks/stripe [post]
func (ph *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Failed to read webhook body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if err := ph.paymentService.HandleWebhook(ctx, payload, signature); err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetPurchases godoc
// @Summary Purchases of the calling user
// @Tags payment
// @Produce json
// @Success 200 {array} PurchaseDTO
// @Success 204 "No purchases to display"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/purchases [get]
func (ph *PaymentHandler) GetPurchases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ph.contextTimeout)
	defer cancel()

	userUID := appContext.UserUID(r.Context())
	purchases, err := ph.purchaseService.GetPurchases(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*purchases) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := mapPurchasesToPurchaseDtoSlice(purchases)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func mapPurchasesToPurchaseDtoSlice(slice *[]models.Purchase) PurchaseDTOSlice {
	var responseSlice []PurchaseDTO
	for _, item := range *slice {
		responseItem := PurchaseDTO{
			VideoID:     item.VideoUUID.String(),
			Amount:      item.Amount,
			Status:      item.Status.String(),
			IntentID:    item.PaymentIntentID,
			PurchasedAt: item.CreatedAt,
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
