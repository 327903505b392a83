package handlers

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAdminHandler_GetUsers(t *testing.T) {
	userUID := uuid.New()
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	verifiedAt := createdAt.Add(time.Hour)
	tests := []struct {
		name            string
		mockUserService func() *MockUserService
		wantResponse    string
		wantStatusCode  int
	}{
		{
			name: "Users Returned",
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				users := &[]models.User{
					{
						UUID:            userUID,
						Name:            "viewer",
						Email:           "viewer@example.com",
						Role:            models.RoleViewer,
						Status:          models.UserActive,
						EmailVerifiedAt: &verifiedAt,
						CreatedAt:       createdAt,
					},
				}
				m.On("ListUsers", mock.Anything).Return(users, nil)
				return m
			},
			wantResponse: fmt.Sprintf(`[{"id":%q,"name":"viewer","email":"viewer@example.com","role":"viewer","status":"active","email_verified":true,"created_at":"2025-03-10T12:00:00Z"}]`,
				userUID),
			wantStatusCode: http.StatusOK,
		},
		{
			name: "Service Error",
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("ListUsers", mock.Anything).Return((*[]models.User)(nil), errors.New("db down"))
				return m
			},
			wantResponse:   "{\"code\":500,\"message\":\"Internal Server Error\"}\n",
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/admin/users", nil)
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			ah := &AdminHandler{
				userService:    tt.mockUserService(),
				contextTimeout: 5 * time.Second,
			}

			ah.GetUsers(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponse, w.Body.String())
		})
	}
}

func TestAdminHandler_UpdateUserStatus(t *testing.T) {
	userUID := uuid.New()
	tests := []struct {
		name            string
		userID          string
		request         string
		mockUserService func() *MockUserService
		wantErr         bool
		wantResponse    string
		wantStatusCode  int
	}{
		{
			name:    "User Blocked",
			userID:  userUID.String(),
			request: `{"status":"blocked"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				m.On("UpdateStatus", mock.Anything, &userUID, models.UserBlocked).Return(nil)
				return m
			},
			wantErr:        false,
			wantResponse:   "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Invalid User ID",
			userID:  "not-a-uuid",
			request: `{"status":"blocked"}`,
			mockUserService: func() *MockUserService {
				return &MockUserService{}
			},
			wantErr:        true,
			wantResponse:   "{\"code\":400,\"message\":\"Invalid user id\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "Unknown Status",
			userID:  userUID.String(),
			request: `{"status":"suspended"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New(""), "Unknown status", http.StatusBadRequest)
				m.On("UpdateStatus", mock.Anything, &userUID, models.UserStatus("suspended")).Return(err)
				return m
			},
			wantErr:        true,
			wantResponse:   "{\"code\":400,\"message\":\"Unknown status\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "User Not Found",
			userID:  userUID.String(),
			request: `{"status":"blocked"}`,
			mockUserService: func() *MockUserService {
				m := &MockUserService{}
				err := appErrors.NewWithCode(errors.New(""), "User not found", http.StatusNotFound)
				m.On("UpdateStatus", mock.Anything, &userUID, models.UserBlocked).Return(err)
				return m
			},
			wantErr:        true,
			wantResponse:   "{\"code\":404,\"message\":\"User not found\"}\n",
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(tt.request)
			req, err := http.NewRequest("PUT", "/api/admin/users/"+tt.userID+"/status", body)
			assert.NoError(t, err)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			ah := &AdminHandler{
				userService:    tt.mockUserService(),
				contextTimeout: 5 * time.Second,
			}

			ah.UpdateUserStatus(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantErr {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			} else {
				assert.Equal(t, tt.wantResponse, w.Body.String())
			}
		})
	}
}

func TestAdminHandler_RefundPayment(t *testing.T) {
	tests := []struct {
		name                string
		request             string
		mockPurchaseService func() *MockPurchaseService
		wantErr             bool
		wantResponse        string
		wantStatusCode      int
	}{
		{
			name:    "Successful Refund",
			request: `{"intent_id":"pi_123"}`,
			mockPurchaseService: func() *MockPurchaseService {
				m := &MockPurchaseService{}
				m.On("Refund", mock.Anything, "pi_123").Return(nil)
				return m
			},
			wantErr:        false,
			wantResponse:   "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Missing Intent ID",
			request: `{"intent_id":""}`,
			mockPurchaseService: func() *MockPurchaseService {
				return &MockPurchaseService{}
			},
			wantErr:        true,
			wantResponse:   "{\"code\":400,\"message\":\"Intent id is required\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "Payment Not Refundable",
			request: `{"intent_id":"pi_pending"}`,
			mockPurchaseService: func() *MockPurchaseService {
				m := &MockPurchaseService{}
				err := appErrors.NewWithCode(errors.New(""), "Payment is not refundable", http.StatusConflict)
				m.On("Refund", mock.Anything, "pi_pending").Return(err)
				return m
			},
			wantErr:        true,
			wantResponse:   "{\"code\":409,\"message\":\"Payment is not refundable\"}\n",
			wantStatusCode: http.StatusConflict,
		},
		{
			name:    "Payment Not Found",
			request: `{"intent_id":"pi_missing"}`,
			mockPurchaseService: func() *MockPurchaseService {
				m := &MockPurchaseService{}
				err := appErrors.NewWithCode(errors.New(""), "Payment not found", http.StatusNotFound)
				m.On("Refund", mock.Anything, "pi_missing").Return(err)
				return m
			},
			wantErr:        true,
			wantResponse:   "{\"code\":404,\"message\":\"Payment not found\"}\n",
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(tt.request)
			req, err := http.NewRequest("POST", "/api/admin/payments/refund", body)
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			ah := &AdminHandler{
				purchaseService: tt.mockPurchaseService(),
				contextTimeout:  5 * time.Second,
			}

			ah.RefundPayment(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantErr {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			} else {
				assert.Equal(t, tt.wantResponse, w.Body.String())
			}
		})
	}
}
