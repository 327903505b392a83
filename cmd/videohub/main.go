package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/videohub/videohub/internal/app/config"
	"github.com/videohub/videohub/internal/app/handlers"
	"github.com/videohub/videohub/internal/app/logger"
	middlware "github.com/videohub/videohub/internal/app/middleware"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
	"github.com/videohub/videohub/internal/app/router"
	"github.com/videohub/videohub/internal/app/service"
	"github.com/videohub/videohub/internal/app/service/clients"
)

// @title           Swagger Docs for VideoHub API
// @version         1.0
// @description     This is the `videohub` service. Creators publish videos, viewers purchase
// and watch them, admins manage users and refunds. Payments are settled through Stripe.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Server run context
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	c := config.ParseFlags()
	logger.InitLogger(c.LogLevel)

	//setup repositories
	ts := service.NewTokenService(c)
	s := repository.NewDBStorage(c)
	ur := repository.NewUserRepository(s.DBConn)
	vr := repository.NewVideoRepository(s.DBConn)
	pr := repository.NewPurchaseRepository(s.DBConn)
	pmr := repository.NewPaymentRepository(s.DBConn)
	wr := repository.NewWalletRepository(s.DBConn)

	pendingPaymentChannel := make(chan models.Payment, 100)

	//setup clients and services
	provider := clients.NewStripeProvider(c)
	mail := clients.NewMailClient(c)
	ws := service.NewWalletService(wr)
	us := service.NewUserService(ur, ws, mail, c)
	vs := service.NewVideoService(vr, pr)
	pcs := service.NewPurchaseService(pr, pmr, vr, ws)
	pms := service.NewPaymentService(pmr, pr, vr, provider, pcs, pendingPaymentChannel)
	pc := service.NewPaymentCache(time.Duration(c.PaymentRetryTimeoutSec)*time.Second, 5*time.Minute, pendingPaymentChannel)

	// setup handlers
	uh := handlers.NewUserHandler(us, ts, c.ContextTimeoutSec)
	vh := handlers.NewVideoHandler(c.ContextTimeoutSec, vs)
	ph := handlers.NewPaymentHandler(c.ContextTimeoutSec, pms, pcs)
	bh := handlers.NewBalanceHandler(c.ContextTimeoutSec, ws)
	ah := handlers.NewAdminHandler(c.ContextTimeoutSec, us, pcs)

	am := middlware.NewAuthMiddleware(ts, us, c.ContextTimeoutSec)

	r := router.NewAppRouter(uh, vh, ph, bh, ah, am)

	// Start the reconciler goroutine
	pre := service.NewPaymentReconciler(pmr, pc, pcs, provider, pendingPaymentChannel)
	go pre.ReconcilePayments(serverCtx)

	// The HTTP Server
	server := &http.Server{Addr: c.ServerAddr, Handler: r}

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds. The reconciler
		// goroutine stops with serverCtx; the pending channel stays open so a
		// late cache eviction cannot send on a closed channel.
		shutdownCtx, cancelFunc := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancelFunc()
		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// Trigger graceful shutdown
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	// Run the server
	fmt.Printf("Starting server on port %s...\n", strings.Split(c.ServerAddr, ":")[1])
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	// Wait for server context to be stopped
	<-serverCtx.Done()
}
