package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/videohub/videohub/internal/app/handlers"
	middlware "github.com/videohub/videohub/internal/app/middleware"
	"github.com/videohub/videohub/internal/app/models"
)

func NewAppRouter(uh *handlers.UserHandler,
	vh *handlers.VideoHandler,
	ph *handlers.PaymentHandler,
	bh *handlers.BalanceHandler,
	ah *handlers.AdminHandler,
	am middlware.AuthMiddleware) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlware.RequestLogger)
	r.Use(middlware.ResponseLogger)

	r.Post("/api/user/register", uh.Register)
	r.Post("/api/user/login", uh.Login)
	r.Get("/api/user/verify", uh.VerifyEmail)
	r.Get("/api/videos", vh.GetVideos)
	r.Post("/api/webhooks/stripe", ph.StripeWebhook)

	r.Group(func(r chi.Router) {
		r.Use(am.Authenticate)

		r.Get("/api/user/balance", bh.GetBalance)
		r.Get("/api/user/purchases", ph.GetPurchases)

		r.Get("/api/videos/{id}", vh.GetVideo)
		r.Put("/api/videos/{id}", vh.UpdateVideo)
		r.Post("/api/videos/{id}/view", vh.RegisterView)
		r.Post("/api/videos/{id}/like", vh.RegisterLike)
		r.Get("/api/videos/{id}/access", vh.CheckAccess)

		r.Post("/api/payments", ph.CreatePayment)
		r.Post("/api/payments/confirm", ph.ConfirmPayment)

		r.Group(func(r chi.Router) {
			r.Use(middlware.RequireRole(models.RoleCreator, models.RoleAdmin))
			r.Post("/api/videos", vh.CreateVideo)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlware.RequireRole(models.RoleAdmin))
			r.Get("/api/admin/users", ah.GetUsers)
			r.Put("/api/admin/users/{id}/status", ah.UpdateUserStatus)
			r.Post("/api/admin/payments/refund", ah.RefundPayment)
		})
	})
	return r
}
