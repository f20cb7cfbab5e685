package services

import (
	"errors"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/models"
	"github.com/suportelm/nutri-ai-vision-scan-17/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	// Every user gets a profile with default goals; onboarding refines them.
	profile := models.Profile{
		UserID:            user.ID,
		FullName:          fullName,
		ActivityLevel:     "moderate",
		MainObjective:     "maintain",
		DailyCalorieGoal:  2000,
		ProteinGoal:       120,
		CarbGoal:          250,
		FatGoal:           65,
		DailyWaterGoal:    8,
		DailyExerciseGoal: 30,
	}
	return config.DB.Create(&profile).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
