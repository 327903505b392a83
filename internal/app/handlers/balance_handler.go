package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appContext "github.com/videohub/videohub/internal/app/context"
	"github.com/videohub/videohub/internal/app/service"
)

type (
	BalanceHandler struct {
		walletService  service.WalletService
		contextTimeout time.Duration
	}

	//easyjson:json
	BalanceDto struct {
		CurrentBalance float64 `json:"current"`
		TotalEarned    float64 `json:"earned"`
		TotalSpent     float64 `json:"spent"`
	}
)

func NewBalanceHandler(contextTimeoutSec int, walletService service.WalletService) *BalanceHandler {
	return &BalanceHandler{
		walletService:  walletService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetBalance godoc
// @Summary Wallet state of the calling user
// @Description Earned reflects creator revenue from settled purchases, spent reflects the
// caller's own purchases.
// @Tags wallet
// @Produce json
// @Success 200 {object} BalanceDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/user/balance [get]
func (bh *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), bh.contextTimeout)
	defer cancel()
	userUID := appContext.UserUID(r.Context())

	balance, err := bh.walletService.GetBalance(ctx, userUID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	balanceDto := BalanceDto{
		CurrentBalance: balance.CurrentBalance,
		TotalEarned:    balance.TotalEarned,
		TotalSpent:     balance.TotalSpent,
	}
	json, err := balanceDto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("unable to marshal json: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(json)
}
