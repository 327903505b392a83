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
	VideoHandler struct {
		videoService   service.VideoService
		contextTimeout time.Duration
	}

	//easyjson:json
	VideoDTO struct {
		ID          string    `json:"id"`
		CreatorID   string    `json:"creator_id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Price       float64   `json:"price"`
		Status      string    `json:"status"`
		Views       int64     `json:"views"`
		Likes       int64     `json:"likes"`
		YoutubeID   *string   `json:"youtube_id,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
	//easyjson:json
	VideoDTOSlice []VideoDTO
	//easyjson:json
	CreateVideoDTO struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		YoutubeID   *string `json:"youtube_id,omitempty"`
	}
	//easyjson:json
	UpdateVideoDTO struct {
		Title       *string  `json:"title,omitempty"`
		Description *string  `json:"description,omitempty"`
		Price       *float64 `json:"price,omitempty"`
		Status      *string  `json:"status,omitempty"`
		YoutubeID   *string  `json:"youtube_id,omitempty"`
	}
	//easyjson:json
	AccessDTO struct {
		Granted bool    `json:"granted"`
		Price   float64 `json:"price"`
	}
)

func NewVideoHandler(contextTimeoutSec int, videoService service.VideoService) *VideoHandler {
	return &VideoHandler{
		videoService:   videoService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// CreateVideo godoc
// @Summary Create a video entry
// @Description Available to creators and admins. The video starts in pending status.
// @Tags video
// @Accept json
// @Produce json
// @Param video body CreateVideoDTO true "Video metadata"
// @Success 201 {object} VideoDTO
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /api/videos [post]
func (vh *VideoHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	createDto := CreateVideoDTO{}
	err = createDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	userUID := appContext.UserUID(r.Context())
	video, err := vh.videoService.CreateVideo(ctx, userUID, createDto.Title, createDto.Description, createDto.Price, createDto.YoutubeID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeVideoResponse(w, video, http.StatusCreated)
}

// GetVideos godoc
// @Summary Published video listing
// @Tags video
// @Produce json
// @Success 200 {array} VideoDTO
// @Success 204 "No videos to display"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/videos [get]
func (vh *VideoHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	videos, err := vh.videoService.GetPublishedVideos(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if len(*videos) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response := mapVideosToVideoDtoSlice(videos)
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

// GetVideo godoc
// @Summary Video metadata
// @Tags video
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} VideoDTO
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security ApiKeyAuth
// @Router /api/videos/{id} [get]
func (vh *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	videoUID, err := parseVideoUID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	video, err := vh.videoService.GetVideoByUID(ctx, videoUID)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeVideoResponse(w, video, http.StatusOK)
}

// UpdateVideo godoc
// @Summary Edit video metadata or lifecycle status
// @Description Only the owning creator or an admin may edit.
// @Tags video
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param video body UpdateVideoDTO true "Fields to update"
// @Success 200 {object} VideoDTO
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security ApiKeyAuth
// @Router /api/videos/{id} [put]
func (vh *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	videoUID, err := parseVideoUID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	updateDto := UpdateVideoDTO{}
	err = updateDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	update := service.VideoUpdate{
		Title:       updateDto.Title,
		Description: updateDto.Description,
		Price:       updateDto.Price,
		YoutubeID:   updateDto.YoutubeID,
	}
	if updateDto.Status != nil {
		status := models.VideoStatus(*updateDto.Status)
		update.Status = &status
	}

	userUID := appContext.UserUID(r.Context())
	role := appContext.UserRole(r.Context())
	video, err := vh.videoService.UpdateVideo(ctx, videoUID, userUID, role, update)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	writeVideoResponse(w, video, http.StatusOK)
}

// RegisterView godoc
// @Summary Increment the view counter
// @Tags video
// @Param id path string true "Video ID"
// @Success 200 "View counted"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security ApiKeyAuth
// @Router /api/videos/{id}/view [post]
func (vh *VideoHandler) RegisterView(w http.ResponseWriter, r *http.Request) {
	vh.incrementCounter(w, r, vh.videoService.RegisterView)
}

// RegisterLike godoc
// @Summary Increment the like counter
// @Tags video
// @Param id path string true "Video ID"
// @Success 200 "Like counted"
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security ApiKeyAuth
// @Router /api/videos/{id}/like [post]
func (vh *VideoHandler) RegisterLike(w http.ResponseWriter, r *http.Request) {
	vh.incrementCounter(w, r, vh.videoService.RegisterLike)
}

func (vh *VideoHandler) incrementCounter(w http.ResponseWriter, r *http.Request, inc func(context.Context, *uuid.UUID) error) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	videoUID, err := parseVideoUID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if _, err := vh.videoService.GetVideoByUID(ctx, videoUID); err != nil {
		PrepareError(w, err)
		return
	}
	if err := inc(ctx, videoUID); err != nil {
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

// CheckAccess godoc
// @Summary Access decision for the calling user
// @Description Granted when the video is free, the caller is privileged or owns the video,
// or a completed purchase exists. The price is always echoed so clients can offer checkout.
// @Tags video
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} AccessDTO
// @Failure 404 {object} ErrorResponse "Video not found"
// @Security ApiKeyAuth
// @Router /api/videos/{id}/access [get]
func (vh *VideoHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), vh.contextTimeout)
	defer cancel()

	videoUID, err := parseVideoUID(r)
	if err != nil {
		PrepareError(w, err)
		return
	}

	userUID := appContext.UserUID(r.Context())
	role := appContext.UserRole(r.Context())
	granted, video, err := vh.videoService.CheckAccess(ctx, videoUID, userUID, role)
	if err != nil {
		PrepareError(w, err)
		return
	}

	accessDto := AccessDTO{
		Granted: granted,
		Price:   video.Price,
	}
	rawBytes, err := accessDto.MarshalJSON()
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

func parseVideoUID(r *http.Request) (*uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	videoUID, err := uuid.Parse(raw)
	if err != nil {
		msg := "invalid video id"
		return nil, appErrors.NewWithCode(errors.New(msg), "Invalid video id", http.StatusBadRequest)
	}
	return &videoUID, nil
}

func writeVideoResponse(w http.ResponseWriter, video *models.Video, status int) {
	dto := mapVideoToVideoDto(video)
	rawBytes, err := dto.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(rawBytes)
}

func mapVideoToVideoDto(video *models.Video) VideoDTO {
	return VideoDTO{
		ID:          video.UUID.String(),
		CreatorID:   video.CreatorUUID.String(),
		Title:       video.Title,
		Description: video.Description,
		Price:       video.Price,
		Status:      video.Status.String(),
		Views:       video.Views,
		Likes:       video.Likes,
		YoutubeID:   video.YoutubeID,
		CreatedAt:   video.CreatedAt,
	}
}

func mapVideosToVideoDtoSlice(slice *[]models.Video) VideoDTOSlice {
	var responseSlice []VideoDTO
	for _, item := range *slice {
		video := item
		responseSlice = append(responseSlice, mapVideoToVideoDto(&video))
	}
	return responseSlice
}
