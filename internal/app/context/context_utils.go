package context

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
)

type key string

const userUIDKey key = "userUID"
const userRoleKey key = "userRole"

func WithUserUID(ctx context.Context, userUID *uuid.UUID) context.Context {
	return context.WithValue(ctx, userUIDKey, userUID)
}

func UserUID(ctx context.Context) *uuid.UUID {
	val := ctx.Value(userUIDKey)
	userUID, ok := val.(*uuid.UUID)
	if !ok {
		return nil
	}
	return userUID
}

func WithUserRole(ctx context.Context, role models.Role) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

func UserRole(ctx context.Context) models.Role {
	val := ctx.Value(userRoleKey)
	role, ok := val.(models.Role)
	if !ok {
		return models.RoleViewer
	}
	return role
}

func GetContextError(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		var errMsg string
		var errCode int

		switch err {
		case context.Canceled:
			errMsg, errCode = "Request canceled", http.StatusInternalServerError
		case context.DeadlineExceeded:
			errMsg, errCode = "Timeout exceeded", http.StatusInternalServerError
		default:
			errMsg, errCode = "Context error", http.StatusInternalServerError
		}
		return appErrors.NewWithCode(err, errMsg, errCode)
	}
	return nil
}
