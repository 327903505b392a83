package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	appContext "github.com/videohub/videohub/internal/app/context"
	appErrors "github.com/videohub/videohub/internal/app/errors"
	"github.com/videohub/videohub/internal/app/models"
	"github.com/videohub/videohub/internal/app/service"
)

const errMsgEnableReadBody = "Unable to read body"

type (
	UserHandler struct {
		userService    service.UserService
		tokenService   service.TokenService
		contextTimeout time.Duration
	}
	//easyjson:json
	UserLoginDto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	//easyjson:json
	UserRegisterDto struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
)

func NewUserHandler(userService service.UserService, tokenService service.TokenService, contextTimeoutSec int) *UserHandler {
	return &UserHandler{
		userService:    userService,
		tokenService:   tokenService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Register godoc
// @Summary User registration
// @Description Registration is carried out using a name/email/password triple plus a requested
// role. Each email must be unique. After successful registration, automatic user
// authentication occurs and a verification mail is dispatched.
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRegisterDto true "User Registration Information"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 409 {object} ErrorResponse "Conflict - Email already registered"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/user/register [post]
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	registerDto := UserRegisterDto{}
	err = registerDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	if registerDto.Email == "" || registerDto.Password == "" {
		err = appErrors.NewWithCode(err, "Email and password are required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}
	role := models.Role(registerDto.Role)
	if registerDto.Role == "" {
		role = models.RoleViewer
	}
	if !models.ValidRole(role) || role == models.RoleAdmin {
		err = appErrors.NewWithCode(err, "Unknown role", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	user, err := uh.userService.Create(ctx, registerDto.Name, registerDto.Email, registerDto.Password, role)
	if err != nil {
		PrepareError(w, err)
		return
	}

	token, err := uh.generateToken(user)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	bearerToken := fmt.Sprintf("Bearer %s", token)
	w.Header().Add("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", bearerToken)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user using an email/password pair and returns a bearer token if successful.
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserLoginDto true "User Login Credentials"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request - Unable to read body or parse body or email and password are required"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid login credentials"
// @Failure 403 {object} ErrorResponse "Forbidden - User is blocked"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Unable to generate token"
// @Router /api/user/login [post]
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		err = appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	loginDto := UserLoginDto{}
	err = loginDto.UnmarshalJSON(body)
	if err != nil {
		err = appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	if loginDto.Email == "" || loginDto.Password == "" {
		err = appErrors.NewWithCode(err, "Email and password are required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	user, err := uh.userService.Authenticate(ctx, loginDto.Email, loginDto.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}

	token, err := uh.generateToken(user)
	if err != nil {
		PrepareError(w, err)
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	bearerToken := fmt.Sprintf("Bearer %s", token)
	w.Header().Add("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", bearerToken)
}

// VerifyEmail godoc
// @Summary Email verification
// @Description Marks the account email as verified using the token from the verification mail.
// @Tags user
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 "Email verified"
// @Failure 404 {object} ErrorResponse "Invalid verification token"
// @Router /api/user/verify [get]
func (uh *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	token := r.URL.Query().Get("token")
	if token == "" {
		msg := "token is required"
		err := appErrors.NewWithCode(errors.New(msg), "Token is required", http.StatusBadRequest)
		PrepareError(w, err)
		return
	}

	if err := uh.userService.VerifyEmail(ctx, token); err != nil {
		PrepareError(w, err)
		return
	}

	err := appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (uh *UserHandler) generateToken(user *models.User) (string, error) {
	token, err := uh.tokenService.GenerateToken(user.Email)
	if err != nil {
		return "", appErrors.NewWithCode(err, "Unable to generate token", http.StatusInternalServerError)
	}
	return token, nil
}
