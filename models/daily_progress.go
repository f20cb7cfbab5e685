package models

import (
	"time"

	"gorm.io/gorm"
)

type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to local midnight

	TotalCalories float64
	TotalProteins float64
	TotalCarbs    float64
	TotalFats     float64
	TotalFiber    float64
	TotalSugar    float64

	WaterIntake     float64 // glasses
	ExerciseMinutes float64
	Weight          *float64
}
