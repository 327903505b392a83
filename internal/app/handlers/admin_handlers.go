package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	appContext "github.com/videohub/videohub/internal/app/context"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/service"
)

type (
	AdminHandler struct {
		userService     service.UserService
		purchaseService service.PurchaseService
		contextTimeout  time.Duration
	}

	//easyjson:json
	AdminUserDTO struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Email         string    `json:"email"`
		Role          string    `json:"role"`
		Status        string    `json:"status"`
		EmailVerified bool      `json:"email_verified"`
		CreatedAt     time.Time `json:"created_at"`
	}
	//easyjson:json
	AdminUserDTOSlice []AdminUserDTO
	//easyjson:json
	UserStatusDTO struct {
		Status string `json:"status"`
	}
	//easyjson:json
	RefundRequestDTO struct {
		IntentID string `json:"intent_id"`
	}
)

func NewAdminHandler(contextTimeoutSec int, userService service.UserService, purchaseService service.PurchaseService) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		purchaseService: purchaseService,
		contextTimeout:  time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetUsers godoc
// @Summary User listing
// @Tags admin
// @Produce json
// @Success 200 {array} AdminUserDTO
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /api/admin/users [get]
func (ah *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	users, err := ah.userService.ListUsers(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	response := mapUsersToAdminUserDtoSlice(users)
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

// UpdateUserStatus godoc
// @Summary Activate or block a user
// @Description Users are never hard-deleted, only their status changes.
// @Tags admin
// @Accept json
// @Param id path string true "User ID"
// @Param status body UserStatusDTO true "New status"
// @Success 200 "Status updated"
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security ApiKeyAuth
// @Router /api/admin/users/{id}/status [put]
func (ah *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	raw := chi.URLParam(r, "id")
	userUID, err := uuid.Parse(raw)
	if err != nil {
		err = appErrors.NewWithCode(err, "Invalid user id", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	statusDto := UserStatusDTO{}
	err = statusDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	if err := ah.userService.UpdateStatus(ctx, &userUID, models.UserStatus(statusDto.Status)); err != nil {
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

// RefundPayment godoc
// @Summary Refund a succeeded payment
// @Description Flips the payment and purchase to refunded and reverses the wallet movement;
// the buyer loses access to the video.
// @Tags admin
// @Accept json
// @Param refund body RefundRequestDTO true "Intent to refund"
// @Success 200 "Refunded"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not refundable"
// @Security ApiKeyAuth
// @Router /api/admin/payments/refund [post]
func (ah *AdminHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), ah.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	refundDto := RefundRequestDTO{}
	err = refundDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	if refundDto.IntentID == "" {
		msg := "intent id is required"
		err = appErrors.NewWithCode(errors.New(msg), "Intent id is required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	if err := ah.purchaseService.Refund(ctx, refundDto.IntentID); err != nil {
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

func mapUsersToAdminUserDtoSlice(slice *[]models.User) AdminUserDTOSlice {
	var responseSlice []AdminUserDTO
	for _, item := range *slice {
		responseItem := AdminUserDTO{
			ID:            item.UUID.String(),
			Name:          item.Name,
			Email:         item.Email,
			Role:          item.Role.String(),
			Status:        item.Status.String(),
			EmailVerified: item.EmailVerifiedAt != nil,
			CreatedAt:     item.CreatedAt,
		}
		responseSlice = append(responseSlice, responseItem)
	}
	return responseSlice
}
