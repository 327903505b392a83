package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
)

type VideoRepository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByUID(ctx context.Context, videoUID *uuid.UUID) (*models.Video, error)
	GetPublishedVideos(ctx context.Context) (*[]models.Video, error)
	GetVideosByCreator(ctx context.Context, creatorUID *uuid.UUID) (*[]models.Video, error)
	UpdateVideo(ctx context.Context, video *models.Video) error
	IncrementViews(ctx context.Context, videoUID *uuid.UUID) error
	IncrementLikes(ctx context.Context, videoUID *uuid.UUID) error
	GetDB() *sqlx.DB
}

type VideoRepositoryImpl struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) *VideoRepositoryImpl {
	return &VideoRepositoryImpl{db: db}
}

func (vr *VideoRepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	query := `INSERT INTO videos (uuid, creator_uuid, title, description, price, status, views, likes, youtube_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := vr.db.ExecContext(ctx, query, video.UUID, video.CreatorUUID, video.Title, video.Description,
		video.Price, video.Status.String(), video.Views, video.Likes, video.YoutubeID, video.CreatedAt, video.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (vr *VideoRepositoryImpl) GetVideoByUID(ctx context.Context, videoUID *uuid.UUID) (*models.Video, error) {
	query := `SELECT * FROM videos WHERE uuid = $1;`
	video := &models.Video{}
	err := vr.db.GetContext(ctx, video, query, videoUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Video not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get video: %w", err)
	}
	return video, nil
}

func (vr *VideoRepositoryImpl) GetPublishedVideos(ctx context.Context) (*[]models.Video, error) {
	query := `SELECT * FROM videos WHERE status = 'published' ORDER BY created_at DESC;`
	videos := make([]models.Video, 0)
	err := vr.db.SelectContext(ctx, &videos, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &videos, nil
		}
		return nil, fmt.Errorf("read published videos: %w", err)
	}
	return &videos, nil
}

func (vr *VideoRepositoryImpl) GetVideosByCreator(ctx context.Context, creatorUID *uuid.UUID) (*[]models.Video, error) {
	query := `SELECT * FROM videos WHERE creator_uuid = $1 ORDER BY created_at DESC;`
	videos := make([]models.Video, 0)
	err := vr.db.SelectContext(ctx, &videos, query, creatorUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &videos, nil
		}
		return nil, fmt.Errorf("read creator videos: %w", err)
	}
	return &videos, nil
}

func (vr *VideoRepositoryImpl) UpdateVideo(ctx context.Context, video *models.Video) error {
	query := `UPDATE videos SET title = $1, description = $2, price = $3, status = $4, youtube_id = $5, updated_at = $6
			  WHERE uuid = $7;`
	_, err := vr.db.ExecContext(ctx, query, video.Title, video.Description, video.Price,
		video.Status.String(), video.YoutubeID, video.UpdatedAt, video.UUID)
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

func (vr *VideoRepositoryImpl) IncrementViews(ctx context.Context, videoUID *uuid.UUID) error {
	query := `UPDATE videos SET views = views + 1 WHERE uuid = $1;`
	_, err := vr.db.ExecContext(ctx, query, videoUID)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

func (vr *VideoRepositoryImpl) IncrementLikes(ctx context.Context, videoUID *uuid.UUID) error {
	query := `UPDATE videos SET likes = likes + 1 WHERE uuid = $1;`
	_, err := vr.db.ExecContext(ctx, query, videoUID)
	if err != nil {
		return fmt.Errorf("increment likes: %w", err)
	}
	return nil
}

func (vr *VideoRepositoryImpl) GetDB() *sqlx.DB {
	return vr.db
}
