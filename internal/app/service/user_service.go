package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/videohub/videohub/internal/app/config"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/repository"
	"github.com/videohub/videohub/internal/app/service/clients"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, name, email, password string, role models.Role) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByUserEmail(ctx context.Context, email string) (*models.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ListUsers(ctx context.Context) (*[]models.User, error)
	UpdateStatus(ctx context.Context, userUID *uuid.UUID, status models.UserStatus) error
}

type UserServiceImpl struct {
	userRepo      repository.UserRepository
	walletService WalletService
	mailClient    clients.MailClient
	publicBaseURL string
}

func NewUserService(userRepo repository.UserRepository, walletService WalletService,
	mailClient clients.MailClient, cfg config.AppConfig) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:      userRepo,
		walletService: walletService,
		mailClient:    mailClient,
		publicBaseURL: cfg.PublicBaseURL,
	}
}

func (us *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Invalid password", http.StatusUnauthorized)
	}
	if user.Status == models.UserBlocked {
		msg := "user is blocked"
		return nil, appErrors.NewWithCode(errors.New(msg), "User is blocked", http.StatusForbidden)
	}
	return user, nil
}

func (us *UserServiceImpl) GetByUserEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		appErr := &appErrors.ResponseCodeError{}
		if errors.As(err, appErr) {
			return nil, *appErr
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (us *UserServiceImpl) Create(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	passwordHash := generatePasswordHash(password)
	user := &models.User{
		UUID:         uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       models.UserActive,
		VerifyToken:  uuid.NewString(),
		CreatedAt:    time.Now(),
	}
	tx, err := us.userRepo.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := us.userRepo.Create(ctx, tx, user); err != nil {
		appErr := &appErrors.ResponseCodeError{}
		if errors.As(err, appErr) {
			return nil, appErrors.NewWithCode(err, appErr.Msg(), http.StatusConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	err = us.walletService.CreateWallet(ctx, tx, &user.UUID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	go us.sendVerificationMail(user)
	return user, nil
}

func (us *UserServiceImpl) sendVerificationMail(user *models.User) {
	link := fmt.Sprintf("%s/api/user/verify?token=%s", us.publicBaseURL, user.VerifyToken)
	body := fmt.Sprintf("<p>Hi %s,</p><p>Confirm your VideoHub account: <a href=%q>verify email</a></p>",
		user.Name, link)
	us.mailClient.Send(user.Email, "Verify your VideoHub account", body)
}

func (us *UserServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := us.userRepo.FindByVerifyToken(ctx, token)
	if err != nil {
		appErr := &appErrors.ResponseCodeError{}
		if errors.As(err, appErr) {
			return appErrors.NewWithCode(err, "Invalid verification token", http.StatusNotFound)
		}
		return fmt.Errorf("find user by token: %w", err)
	}
	if user.EmailVerifiedAt != nil {
		return nil
	}
	return us.userRepo.MarkEmailVerified(ctx, &user.UUID, time.Now())
}

func (us *UserServiceImpl) ListUsers(ctx context.Context) (*[]models.User, error) {
	return us.userRepo.ListUsers(ctx)
}

func (us *UserServiceImpl) UpdateStatus(ctx context.Context, userUID *uuid.UUID, status models.UserStatus) error {
	if status != models.UserActive && status != models.UserBlocked {
		msg := "unknown user status"
		return appErrors.NewWithCode(errors.New(msg), "Unknown user status", http.StatusBadRequest)
	}
	return us.userRepo.UpdateStatus(ctx, userUID, status)
}

func generatePasswordHash(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword(
		[]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Errorf("generate hash error: %w", err))
	}
	return string(hashedBytes)
}
