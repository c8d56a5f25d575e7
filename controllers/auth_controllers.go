package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"paytrack/config"
	"paytrack/dto"
	"paytrack/models"
	"paytrack/response"
	"paytrack/services"
	"paytrack/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

const accessTokenExpiryMinutes = 60 * 24 * 3

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateEmail(input.Email); err != nil {
		response.ValidationError(c, "Invalid email")
		return
	}

	if err := validator.ValidatePassword(input.Password); err != nil {
		response.ValidationError(c, "Password must be at least 6 characters")
		return
	}

	user, err := services.CreateUser(config.DB, input)
	if err != nil {
		response.StorageError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "User registered successfully",
		"id":      user.ID,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.UnauthorizedMessage(c, "Invalid email or password")
			return
		}
		response.StorageError(c, err)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.UnauthorizedMessage(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
	}

	accessToken, err := services.GenerateToken(userInfo, accessTokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info": userResponse,
		"token":     accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// AuthGoogle signs a user in with a Google ID token, creating the account
// on first sight.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          payload.Claims["name"].(string),
		Email:         payload.Claims["email"].(string),
		VerifiedEmail: payload.Claims["email_verified"].(bool),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(googleUser.Email)).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(config.DB, googleUser.Name, googleUser.Email)
		if err != nil {
			response.StorageError(c, err)
			return
		}
	} else if result.Error != nil {
		response.StorageError(c, result.Error)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
	}

	accessToken, err := services.GenerateToken(userInfo, accessTokenExpiryMinutes)
	if err != nil {
		log.Println("Error generating access token:", err)
		response.ServerError(c)
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	response.Success(c, gin.H{
		"user_info": userResponse,
		"token":     accessToken,
	})
}

func verifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, err
	}
	return payload, nil
}
