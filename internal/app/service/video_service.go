package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
)

type (
	VideoUpdate struct {
		Title       *string
		Description *string
		Price       *float64
		Status      *models.VideoStatus
		YoutubeID   *string
	}

	VideoService interface {
		CreateVideo(ctx context.Context, creatorUID *uuid.UUID, title, description string, price float64, youtubeID *string) (*models.Video, error)
		GetVideoByUID(ctx context.Context, videoUID *uuid.UUID) (*models.Video, error)
		GetPublishedVideos(ctx context.Context) (*[]models.Video, error)
		UpdateVideo(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role, update VideoUpdate) (*models.Video, error)
		RegisterView(ctx context.Context, videoUID *uuid.UUID) error
		RegisterLike(ctx context.Context, videoUID *uuid.UUID) error
		CheckAccess(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role) (bool, *models.Video, error)
	}

	VideoServiceImpl struct {
		videoRepo    repository.VideoRepository
		purchaseRepo repository.PurchaseRepository
	}
)

func NewVideoService(videoRepo repository.VideoRepository, purchaseRepo repository.PurchaseRepository) *VideoServiceImpl {
	return &VideoServiceImpl{
		videoRepo:    videoRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (vs *VideoServiceImpl) CreateVideo(ctx context.Context, creatorUID *uuid.UUID, title, description string, price float64, youtubeID *string) (*models.Video, error) {
	if title == "" {
		msg := "title is required"
		return nil, appErrors.NewWithCode(errors.New(msg), "Title is required", http.StatusBadRequest)
	}
	if price < 0 {
		msg := "negative price"
		return nil, appErrors.NewWithCode(errors.New(msg), "Price must not be negative", http.StatusBadRequest)
	}

	now := time.Now()
	video := &models.Video{
		UUID:        uuid.New(),
		CreatorUUID: *creatorUID,
		Title:       title,
		Description: description,
		Price:       price,
		Status:      models.VideoPending,
		YoutubeID:   youtubeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := vs.videoRepo.CreateVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return video, nil
}

func (vs *VideoServiceImpl) GetVideoByUID(ctx context.Context, videoUID *uuid.UUID) (*models.Video, error) {
	return vs.videoRepo.GetVideoByUID(ctx, videoUID)
}

func (vs *VideoServiceImpl) GetPublishedVideos(ctx context.Context) (*[]models.Video, error) {
	return vs.videoRepo.GetPublishedVideos(ctx)
}

func (vs *VideoServiceImpl) UpdateVideo(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role, update VideoUpdate) (*models.Video, error) {
	video, err := vs.videoRepo.GetVideoByUID(ctx, videoUID)
	if err != nil {
		return nil, err
	}
	if video.CreatorUUID != *callerUID && callerRole != models.RoleAdmin {
		msg := "not the video owner"
		return nil, appErrors.NewWithCode(errors.New(msg), "Forbidden", http.StatusForbidden)
	}

	if update.Title != nil {
		video.Title = *update.Title
	}
	if update.Description != nil {
		video.Description = *update.Description
	}
	if update.Price != nil {
		if *update.Price < 0 {
			msg := "negative price"
			return nil, appErrors.NewWithCode(errors.New(msg), "Price must not be negative", http.StatusBadRequest)
		}
		video.Price = *update.Price
	}
	if update.Status != nil {
		if !models.ValidVideoStatus(*update.Status) {
			msg := "unknown video status"
			return nil, appErrors.NewWithCode(errors.New(msg), "Unknown video status", http.StatusBadRequest)
		}
		video.Status = *update.Status
	}
	if update.YoutubeID != nil {
		video.YoutubeID = update.YoutubeID
	}
	video.UpdatedAt = time.Now()

	if err := vs.videoRepo.UpdateVideo(ctx, video); err != nil {
		return nil, fmt.Errorf("update video: %w", err)
	}
	return video, nil
}

func (vs *VideoServiceImpl) RegisterView(ctx context.Context, videoUID *uuid.UUID) error {
	return vs.videoRepo.IncrementViews(ctx, videoUID)
}

func (vs *VideoServiceImpl) RegisterLike(ctx context.Context, videoUID *uuid.UUID) error {
	return vs.videoRepo.IncrementLikes(ctx, videoUID)
}

// CheckAccess resolves the access decision for one (caller, video) pair and
// returns the video so handlers can echo the price on denial.
func (vs *VideoServiceImpl) CheckAccess(ctx context.Context, videoUID, callerUID *uuid.UUID, callerRole models.Role) (bool, *models.Video, error) {
	video, err := vs.videoRepo.GetVideoByUID(ctx, videoUID)
	if err != nil {
		return false, nil, err
	}

	isOwner := video.CreatorUUID == *callerUID
	if Decide(callerRole, isOwner, video.Price, false) {
		return true, video, nil
	}

	purchased, err := vs.purchaseRepo.CompletedPurchaseExists(ctx, callerUID, videoUID)
	if err != nil {
		return false, nil, err
	}
	return Decide(callerRole, isOwner, video.Price, purchased), video, nil
}
