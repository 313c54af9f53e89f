package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/katatrina/vgvault-BE/internal/validator"
)

var errInvalidCredentials = errors.New("invalid username or password")

type registerUserRequest struct {
	Username    string `json:"username" example:"samus"`
	DisplayName string `json:"display_name" example:"Samus Aran"`
	Email       string `json:"email" example:"samus@example.com"`
	Password    string `json:"password" example:"S3cret-pass"`
}

func (req *registerUserRequest) normalize() {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

func validateRegisterUserRequest(req *registerUserRequest) (violations []*FieldViolation) {
	if err := validator.ValidateUsername(req.Username); err != nil {
		violations = append(violations, fieldViolation("username", err))
	}
	if err := validator.ValidateDisplayName(req.DisplayName); err != nil {
		violations = append(violations, fieldViolation("display_name", err))
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		violations = append(violations, fieldViolation("email", err))
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		violations = append(violations, fieldViolation("password", err))
	}

	return violations
}

//	@Summary		Register a new user
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerUserRequest	true	"New account"
//	@Success		201		{object}	userResponse
//	@Failure		400		{object}	FailedValidationResponse
//	@Failure		409		{object}	errorBody	"Username or email already taken"
//	@Router			/auth/register [post]
func (server *Server) registerUser(c *gin.Context) {
	req := new(registerUserRequest)
	if err := c.ShouldBindJSON(req); err != nil {
		abortBadRequest(c, err)
		return
	}
	req.normalize()

	if violations := validateRegisterUserRequest(req); violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	hashedPassword, err := util.HashPassword(req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	userID, err := uuid.NewV7()
	if err != nil {
		abortWithError(c, fmt.Errorf("failed to generate user ID: %w", err))
		return
	}

	user, err := server.store.CreateUser(c, db.CreateUserParams{
		ID:             userID,
		Username:       req.Username,
		DisplayName:    req.DisplayName,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		errCode, constraintName := db.ErrorDescription(err)
		if errCode == db.UniqueViolationCode {
			switch constraintName {
			case db.UniqueUsernameConstraint:
				abortWithError(c, apperror.Conflict("username %s is already taken", req.Username))
				return
			case db.UniqueEmailConstraint:
				abortWithError(c, apperror.Conflict("email %s is already registered", req.Email))
				return
			}
		}

		abortWithError(c, fmt.Errorf("failed to create user: %w", err))
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

type loginUserRequest struct {
	Username string `json:"username" binding:"required" example:"samus"`
	Password string `json:"password" binding:"required" example:"S3cret-pass"`
}

type loginUserResponse struct {
	User                 userResponse `json:"user"`
	AccessToken          string       `json:"access_token"`
	AccessTokenExpiresAt time.Time    `json:"access_token_expires_at"`
}

//	@Summary		Log in
//	@Description	Returns an access token and also sets it as the access_token cookie for browser streams.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginUserRequest	true	"Credentials"
//	@Success		200		{object}	loginUserResponse
//	@Failure		401		{object}	errorBody
//	@Router			/auth/login [post]
func (server *Server) loginUser(c *gin.Context) {
	req := new(loginUserRequest)
	if err := c.ShouldBindJSON(req); err != nil {
		abortBadRequest(c, err)
		return
	}

	user, err := server.store.GetUserByUsername(c, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			abortWithError(c, apperror.Wrap(apperror.KindUnauthorized, errInvalidCredentials.Error(), err))
			return
		}

		abortWithError(c, fmt.Errorf("failed to get user: %w", err))
		return
	}

	if err = util.CheckPassword(req.Password, user.HashedPassword); err != nil {
		abortWithError(c, apperror.Wrap(apperror.KindUnauthorized, errInvalidCredentials.Error(), err))
		return
	}

	accessToken, accessPayload, err := server.tokenMaker.CreateToken(token.UserClaims{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	}, server.config.AccessTokenDuration)
	if err != nil {
		abortWithError(c, fmt.Errorf("failed to create access token: %w", err))
		return
	}

	server.setAccessTokenCookie(c, accessToken, int(server.config.AccessTokenDuration.Seconds()))

	c.JSON(http.StatusOK, loginUserResponse{
		User:                 newUserResponse(user),
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessPayload.ExpiresAt.Time,
	})
}

//	@Summary	Log out
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (server *Server) logoutUser(c *gin.Context) {
	server.setAccessTokenCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (server *Server) setAccessTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookieName, value, maxAge, "/", "", server.config.Environment == util.EnvironmentProduction, true)
}

type authStatusResponse struct {
	Authenticated bool              `json:"authenticated"`
	User          *token.UserClaims `json:"user,omitempty"`
}

//	@Summary	Current session
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	authStatusResponse
//	@Security	accessToken
//	@Router		/auth/status [get]
func (server *Server) getAuthStatus(c *gin.Context) {
	payload, ok := authPayloadFromContext(c)
	if !ok {
		c.JSON(http.StatusOK, authStatusResponse{Authenticated: false})
		return
	}

	claims := payload.UserClaims
	c.JSON(http.StatusOK, authStatusResponse{Authenticated: true, User: &claims})
}
