package handlers

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	appContext "github.com/videohub/videohub/internal/app/context"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) CreateVideo(ctx context.Context, creatorUID *uuid.UUID, title, description string, price float64, youtubeID *string) (*models.Video, error) {
	args := m.Called(ctx, creatorUID, title, description, price, youtubeID)
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) GetVideoByUID(ctx context.Context, videoUID *uuid.UUID) (*models.Video, error) {
	args := m.Called(ctx, videoUID)
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) GetPublishedVideos(ctx context.Context) (*[]models.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).(*[]models.Video), args.Error(1)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role, update service.VideoUpdate) (*models.Video, error) {
	args := m.Called(ctx, videoUID, callerUID, callerRole, update)
	return args.Get(0).(*models.Video), args.Error(1)
}

func (m *MockVideoService) RegisterView(ctx context.Context, videoUID *uuid.UUID) error {
	args := m.Called(ctx, videoUID)
	return args.Error(0)
}

func (m *MockVideoService) RegisterLike(ctx context.Context, videoUID *uuid.UUID) error {
	args := m.Called(ctx, videoUID)
	return args.Error(0)
}

func (m *MockVideoService) CheckAccess(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role) (bool, *models.Video, error) {
	args := m.Called(ctx, videoUID, callerUID, callerRole)
	return args.Bool(0), args.Get(1).(*models.Video), args.Error(2)
}

func requestWithVideoID(req *http.Request, videoID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", videoID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestVideoHandler_CreateVideo(t *testing.T) {
	creatorUID := uuid.New()
	videoUID := uuid.New()
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name             string
		request          string
		mockVideoService func() *MockVideoService
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Successful Creation",
			request: `{"title":"Go Tutorial","description":"intro","price":9.99}`,
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				video := &models.Video{
					UUID:        videoUID,
					CreatorUUID: creatorUID,
					Title:       "Go Tutorial",
					Description: "intro",
					Price:       9.99,
					Status:      models.VideoPending,
					CreatedAt:   createdAt,
				}
				m.On("CreateVideo", mock.Anything, &creatorUID, "Go Tutorial", "intro", 9.99, (*string)(nil)).Return(video, nil)
				return m
			},
			wantResponse: fmt.Sprintf(`{"id":%q,"creator_id":%q,"title":"Go Tutorial","description":"intro","price":9.99,"status":"pending","views":0,"likes":0,"created_at":"2025-03-10T12:00:00Z"}`,
				videoUID, creatorUID),
			wantStatusCode: http.StatusCreated,
		},
		{
			name:    "Negative Price",
			request: `{"title":"Go Tutorial","description":"intro","price":-1}`,
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				err := appErrors.NewWithCode(errors.New(""), "Invalid price", http.StatusBadRequest)
				m.On("CreateVideo", mock.Anything, &creatorUID, "Go Tutorial", "intro", -1.0, (*string)(nil)).Return((*models.Video)(nil), err)
				return m
			},
			wantResponse:   "{\"code\":400,\"message\":\"Invalid price\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:    "Invalid JSON Request",
			request: `{"title":Go,"price":9.99}`, // Malformed JSON
			mockVideoService: func() *MockVideoService {
				return &MockVideoService{}
			},
			wantResponse:   "{\"code\":400,\"message\":\"Unable to parse body\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(tt.request)
			req, err := http.NewRequest("POST", "/api/videos", body)
			assert.NoError(t, err)
			req = req.WithContext(appContext.WithUserUID(req.Context(), &creatorUID))
			w := httptest.NewRecorder()

			vh := &VideoHandler{
				videoService:   tt.mockVideoService(),
				contextTimeout: 5 * time.Second,
			}

			vh.CreateVideo(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponse, w.Body.String())
		})
	}
}

func TestVideoHandler_GetVideos(t *testing.T) {
	creatorUID := uuid.New()
	videoUID := uuid.New()
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name             string
		mockVideoService func() *MockVideoService
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name: "Published Videos Returned",
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				videos := &[]models.Video{
					{
						UUID:        videoUID,
						CreatorUUID: creatorUID,
						Title:       "Go Tutorial",
						Description: "intro",
						Price:       0,
						Status:      models.VideoPublished,
						Views:       3,
						Likes:       1,
						CreatedAt:   createdAt,
					},
				}
				m.On("GetPublishedVideos", mock.Anything).Return(videos, nil)
				return m
			},
			wantResponse: fmt.Sprintf(`[{"id":%q,"creator_id":%q,"title":"Go Tutorial","description":"intro","price":0,"status":"published","views":3,"likes":1,"created_at":"2025-03-10T12:00:00Z"}]`,
				videoUID, creatorUID),
			wantStatusCode: http.StatusOK,
		},
		{
			name: "No Videos",
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				m.On("GetPublishedVideos", mock.Anything).Return(&[]models.Video{}, nil)
				return m
			},
			wantResponse:   "",
			wantStatusCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/videos", nil)
			assert.NoError(t, err)
			w := httptest.NewRecorder()

			vh := &VideoHandler{
				videoService:   tt.mockVideoService(),
				contextTimeout: 5 * time.Second,
			}

			vh.GetVideos(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantResponse == "" {
				assert.Equal(t, tt.wantResponse, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			}
		})
	}
}

func TestVideoHandler_CheckAccess(t *testing.T) {
	videoUID := uuid.New()
	callerUID := uuid.New()
	tests := []struct {
		name             string
		videoID          string
		mockVideoService func() *MockVideoService
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "Free Video Granted",
			videoID: videoUID.String(),
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				video := &models.Video{UUID: videoUID, Price: 0, Status: models.VideoPublished}
				m.On("CheckAccess", mock.Anything, &videoUID, &callerUID, models.RoleViewer).Return(true, video, nil)
				return m
			},
			wantResponse:   `{"granted":true,"price":0}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Paid Video Denied",
			videoID: videoUID.String(),
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				video := &models.Video{UUID: videoUID, Price: 9.99, Status: models.VideoPublished}
				m.On("CheckAccess", mock.Anything, &videoUID, &callerUID, models.RoleViewer).Return(false, video, nil)
				return m
			},
			wantResponse:   `{"granted":false,"price":9.99}`,
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Video Not Found",
			videoID: videoUID.String(),
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				err := appErrors.NewWithCode(errors.New(""), "Video not found", http.StatusNotFound)
				m.On("CheckAccess", mock.Anything, &videoUID, &callerUID, models.RoleViewer).Return(false, (*models.Video)(nil), err)
				return m
			},
			wantResponse:   "{\"code\":404,\"message\":\"Video not found\"}\n",
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:    "Invalid Video ID",
			videoID: "not-a-uuid",
			mockVideoService: func() *MockVideoService {
				return &MockVideoService{}
			},
			wantResponse:   "{\"code\":400,\"message\":\"Invalid video id\"}\n",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/videos/"+tt.videoID+"/access", nil)
			assert.NoError(t, err)
			ctx := appContext.WithUserUID(req.Context(), &callerUID)
			ctx = appContext.WithUserRole(ctx, models.RoleViewer)
			req = requestWithVideoID(req.WithContext(ctx), tt.videoID)
			w := httptest.NewRecorder()

			vh := &VideoHandler{
				videoService:   tt.mockVideoService(),
				contextTimeout: 5 * time.Second,
			}

			vh.CheckAccess(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.JSONEq(t, tt.wantResponse, w.Body.String())
		})
	}
}

func TestVideoHandler_RegisterView(t *testing.T) {
	videoUID := uuid.New()
	tests := []struct {
		name             string
		videoID          string
		mockVideoService func() *MockVideoService
		wantErr          bool
		wantResponse     string
		wantStatusCode   int
	}{
		{
			name:    "View Counted",
			videoID: videoUID.String(),
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				video := &models.Video{UUID: videoUID, Status: models.VideoPublished}
				m.On("GetVideoByUID", mock.Anything, &videoUID).Return(video, nil)
				m.On("RegisterView", mock.Anything, &videoUID).Return(nil)
				return m
			},
			wantErr:        false,
			wantResponse:   "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:    "Video Not Found",
			videoID: videoUID.String(),
			mockVideoService: func() *MockVideoService {
				m := &MockVideoService{}
				err := appErrors.NewWithCode(errors.New(""), "Video not found", http.StatusNotFound)
				m.On("GetVideoByUID", mock.Anything, &videoUID).Return((*models.Video)(nil), err)
				return m
			},
			wantErr:        true,
			wantResponse:   "{\"code\":404,\"message\":\"Video not found\"}\n",
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/videos/"+tt.videoID+"/view", nil)
			assert.NoError(t, err)
			req = requestWithVideoID(req, tt.videoID)
			w := httptest.NewRecorder()

			vh := &VideoHandler{
				videoService:   tt.mockVideoService(),
				contextTimeout: 5 * time.Second,
			}

			vh.RegisterView(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			if tt.wantErr {
				assert.JSONEq(t, tt.wantResponse, w.Body.String())
			} else {
				assert.Equal(t, tt.wantResponse, w.Body.String())
			}
		})
	}
}
