package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"paytrack/dto"
	"paytrack/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetUserByEmail looks a user up by email
func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword compares a stored hash with a login attempt
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// CreateUser registers a new user; the email must be unused
func CreateUser(db *gorm.DB, input dto.RegisterInput) (models.User, error) {
	email := strings.ToLower(input.Email)

	existing, err := GetUserByEmail(db, email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      input.Name,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	result := db.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The stored password hash is random and can never match a login attempt.
func CreateGoogleUser(db *gorm.DB, name, email string) (models.User, error) {
	placeholder, err := HashPassword(fmt.Sprintf("google:%s:%d", email, time.Now().UnixNano()))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  placeholder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}
