package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one logged diary entry. Rows are immutable once created; the diary
// has no update or delete path.
type Meal struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`

	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	Sugar    float64

	MealType   string    `gorm:"size:16"` // "breakfast" | "lunch" | "dinner" | "snack"
	ImageURL   string
	ConsumedAt time.Time `gorm:"index;not null"`
}

// MealImage keeps the uploaded photo plus the raw analysis the meal was saved
// from, for later inspection.
type MealImage struct {
	gorm.Model
	MealID       uint   `gorm:"index;not null"`
	ImageURL     string `gorm:"not null"`
	AnalysisData string `gorm:"type:jsonb"`
}
