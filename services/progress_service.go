package services

import (
	"errors"
	"math"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/models"

	"gorm.io/gorm"
)

func dayStartLocal(t time.Time) time.Time {
	tt := t.Local()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// pctOfGoal caps at 1 so progress rings never overflow.
func pctOfGoal(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / goal
	if p > 1 {
		return 1
	}
	return round2(p)
}

// RecomputeDailyProgress re-aggregates the day's meals into the
// daily_progress row for that date. Water, exercise and weight live on the
// same row and are preserved across recomputes.
func RecomputeDailyProgress(userID uint, t time.Time) error {
	start := dayStartLocal(t)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	if err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return err
	}

	var dp models.DailyProgress
	err := config.DB.Where("user_id = ? AND date = ?", userID, start).First(&dp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dp = models.DailyProgress{UserID: userID, Date: start}
	} else if err != nil {
		return err
	}

	dp.TotalCalories, dp.TotalProteins, dp.TotalCarbs = 0, 0, 0
	dp.TotalFats, dp.TotalFiber, dp.TotalSugar = 0, 0, 0
	for _, m := range meals {
		dp.TotalCalories += m.Calories
		dp.TotalProteins += m.Proteins
		dp.TotalCarbs += m.Carbs
		dp.TotalFats += m.Fats
		dp.TotalFiber += m.Fiber
		dp.TotalSugar += m.Sugar
	}

	return config.DB.Save(&dp).Error
}

// GetGoalsAndProgress returns the user's targets alongside the day's consumed
// totals and capped percentages, one entry per tracked metric.
func GetGoalsAndProgress(userID uint, date time.Time) (*models.Profile, map[string]interface{}, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.Profile{UserID: userID}
		} else {
			return nil, nil, err
		}
	}

	start := dayStartLocal(date)

	var dp models.DailyProgress
	err = config.DB.Where("user_id = ? AND date = ?", userID, start).First(&dp).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return &profile, nil, err
	}

	metric := func(consumed, goal float64) map[string]float64 {
		return map[string]float64{
			"consumed": round2(consumed),
			"goal":     goal,
			"percent":  pctOfGoal(consumed, goal),
		}
	}

	progress := map[string]interface{}{
		"calories": metric(dp.TotalCalories, profile.DailyCalorieGoal),
		"proteins": metric(dp.TotalProteins, profile.ProteinGoal),
		"carbs":    metric(dp.TotalCarbs, profile.CarbGoal),
		"fats":     metric(dp.TotalFats, profile.FatGoal),
		"water":    metric(dp.WaterIntake, profile.DailyWaterGoal),
		"exercise": metric(dp.ExerciseMinutes, profile.DailyExerciseGoal),
	}

	return &profile, progress, nil
}

// UpsertDailyActivity records water intake, exercise minutes and an optional
// weigh-in on today's progress row without touching the meal totals.
func UpsertDailyActivity(userID uint, water, exercise float64, weight *float64) error {
	start := dayStartLocal(time.Now())

	var dp models.DailyProgress
	err := config.DB.Where("user_id = ? AND date = ?", userID, start).First(&dp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dp = models.DailyProgress{UserID: userID, Date: start}
	} else if err != nil {
		return err
	}

	dp.WaterIntake = water
	dp.ExerciseMinutes = exercise
	if weight != nil {
		dp.Weight = weight
	}

	return config.DB.Save(&dp).Error
}

func GetProgressHistory(userID uint) ([]models.DailyProgress, error) {
	var rows []models.DailyProgress
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}
