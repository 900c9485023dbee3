package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	"github.com/iceghosttth/bkalendar/internal/http/api/auth/packets"
	"github.com/iceghosttth/bkalendar/internal/http/middleware"
	"github.com/iceghosttth/bkalendar/internal/model"
)

type AccountManager struct {
	jwtSecret string
	store     db.Store
}

// AuthPublicModule exposes signup and login, mounted without auth.
func AuthPublicModule(secret string, store db.Store) api.Module {
	ctl := &AccountManager{jwtSecret: secret, store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RouterGroup.POST("/auth/signup", ctl.signup)
		c.RouterGroup.POST("/auth/login", ctl.login)
	})
}

// AuthSessionModule exposes the profile endpoints, mounted behind JWT auth.
func AuthSessionModule(secret string, store db.Store) api.Module {
	ctl := &AccountManager{jwtSecret: secret, store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.currentProfile)
		c.PUT("/auth/current_profile", ctl.updateProfile)
	})
}

func (a *AccountManager) signup(c *gin.Context) {
	var request packets.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if existing, _ := a.store.GetUserByEmail(request.Email); existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	userID, err := a.store.CreateUser(request.Email, hashed, request.Name)
	if err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("could not create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	token, err := middleware.GenerateJWT(userID, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("could not generate JWT")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusCreated, packets.TokenResponse{Token: token})
}

func (a *AccountManager) login(c *gin.Context) {
	var request packets.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := a.store.GetUserByEmail(request.Email)
	if err != nil || !middleware.CheckPassword(user.HashedPassword, request.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": middleware.ErrInvalidCredentials.Error()})
		return
	}

	token, err := middleware.GenerateJWT(user.ID, a.jwtSecret)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("could not generate JWT")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		return
	}

	c.JSON(http.StatusOK, packets.TokenResponse{Token: token})
}

func (a *AccountManager) currentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (a *AccountManager) updateProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	email := user.Email
	if request.Email != nil {
		email = *request.Email
	}
	name := user.Name
	if request.Name != nil {
		name = request.Name
	}

	if err := a.store.UpdateUserProfile(user.ID, email, name); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}
	return packets.ProfileResponse{ID: user.ID, Email: email, Name: name}, nil
}
