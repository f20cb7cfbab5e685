package services

import (
	"errors"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/models"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FullName      *string  `json:"full_name"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	ActivityLevel *string  `json:"activity_level"`
	MainObjective *string  `json:"main_objective"`

	TargetWeight     *float64 `json:"target_weight"`
	WeeklyWeightGoal *float64 `json:"weekly_weight_goal"`

	DailyCalorieGoal  *float64 `json:"daily_calorie_goal"`
	ProteinGoal       *float64 `json:"protein_goal"`
	CarbGoal          *float64 `json:"carb_goal"`
	FatGoal           *float64 `json:"fat_goal"`
	DailyWaterGoal    *float64 `json:"daily_water_goal"`
	DailyExerciseGoal *float64 `json:"daily_exercise_goal"`
}

func GetUserProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.New("profile not found")
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile applies only the fields the client sent; absent fields
// keep their current values.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.Profile, error) {
	profile, err := GetUserProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.Age != nil {
		profile.Age = *input.Age
	}
	if input.Weight != nil {
		profile.Weight = *input.Weight
	}
	if input.Height != nil {
		profile.Height = *input.Height
	}
	if input.ActivityLevel != nil {
		profile.ActivityLevel = *input.ActivityLevel
	}
	if input.MainObjective != nil {
		profile.MainObjective = *input.MainObjective
	}
	if input.TargetWeight != nil {
		profile.TargetWeight = *input.TargetWeight
	}
	if input.WeeklyWeightGoal != nil {
		profile.WeeklyWeightGoal = *input.WeeklyWeightGoal
	}
	if input.DailyCalorieGoal != nil {
		profile.DailyCalorieGoal = *input.DailyCalorieGoal
	}
	if input.ProteinGoal != nil {
		profile.ProteinGoal = *input.ProteinGoal
	}
	if input.CarbGoal != nil {
		profile.CarbGoal = *input.CarbGoal
	}
	if input.FatGoal != nil {
		profile.FatGoal = *input.FatGoal
	}
	if input.DailyWaterGoal != nil {
		profile.DailyWaterGoal = *input.DailyWaterGoal
	}
	if input.DailyExerciseGoal != nil {
		profile.DailyExerciseGoal = *input.DailyExerciseGoal
	}

	if err := config.DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
