package middlware

import (
	"context"
	"net/http"
	"strings"
	"time"

	appContext "github.com/videohub/videohub/internal/app/context"
	"github.com/videohub/videohub/internal/app/handlers"
	"github.com/videohub/videohub/internal/app/logger"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/service"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	tokenService   service.TokenService
	userService    service.UserService
	contextTimeout time.Duration
}

func NewAuthMiddleware(tokenService service.TokenService, userService service.UserService, contextTimeoutSec int) AuthMiddleware {
	return AuthMiddleware{
		tokenService:   tokenService,
		userService:    userService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), am.contextTimeout)
		defer cancel()

		authHeader := r.Header.Get("Authorization")
		parts := strings.Split(authHeader, "Bearer ")
		if len(parts) != 2 {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}
		token := parts[1]

		userEmail, err := am.tokenService.GetUserEmail(token)
		if err != nil {
			logger.Log.Error("failed to get user email", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := am.userService.GetByUserEmail(ctx, userEmail)
		if err != nil {
			logger.Log.Error("failed to get user", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: User not found", http.StatusUnauthorized)
			return
		}
		if user.Status == models.UserBlocked {
			handlers.WriteJSONErrorResponse(w, "Forbidden: user is blocked", http.StatusForbidden)
			return
		}

		err = appContext.GetContextError(ctx)
		if err != nil {
			handlers.PrepareError(w, err)
			return
		}

		reqCtx := appContext.WithUserUID(r.Context(), &user.UUID)
		reqCtx = appContext.WithUserRole(reqCtx, user.Role)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

// RequireRole guards a route subtree to the given roles. Runs after
// Authenticate, which put the role into the request context.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := appContext.UserRole(r.Context())
			if !allowed[role] {
				handlers.WriteJSONErrorResponse(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
