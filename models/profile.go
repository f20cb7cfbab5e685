package models

import (
	"gorm.io/gorm"
)

// Profile holds per-user body data and daily nutrient targets.
type Profile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	FullName      string
	Age           int
	Weight        float64 // kg
	Height        float64 // cm
	ActivityLevel string  // "sedentary" | "light" | "moderate" | "intense"
	MainObjective string  // "lose_weight" | "maintain" | "gain_muscle"

	TargetWeight     float64
	WeeklyWeightGoal float64

	DailyCalorieGoal  float64 // e.g. 2000 kcal
	ProteinGoal       float64 // g
	CarbGoal          float64 // g
	FatGoal           float64 // g
	DailyWaterGoal    float64 // glasses
	DailyExerciseGoal float64 // minutes
}
