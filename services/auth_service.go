package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ayurbackend/config"
	"ayurbackend/models"
	"ayurbackend/utils"
)

func RegisterUser(email, password, firstName, lastName, role string) error {
	switch role {
	case models.RolePatient, models.RoleDoctor:
	case "":
		role = models.RolePatient
	default:
		return errors.New("role must be patient or doctor")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	rand.Seed(time.Now().UnixNano())
	base := strings.ToLower(strings.ReplaceAll(firstName, " ", ""))
	userID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		UserID:    userID,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
		Disabled:  false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		return "", err
	}

	return token, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, id)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
