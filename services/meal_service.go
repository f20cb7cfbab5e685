package services

import (
	"encoding/json"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/models"
)

type MealService struct{}

func NewMealService() *MealService { return &MealService{} }

// CreateMealRequest carries the user-edited analysis values. Anything the
// model estimated may have been changed by hand before saving.
type CreateMealRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`

	MealType   string          `json:"meal_type"`
	ImageURL   string          `json:"image_url"`
	ConsumedAt *time.Time      `json:"consumed_at"`
	Analysis   json.RawMessage `json:"analysis,omitempty"`
}

// MealTypeForHour buckets a local hour of day into the diary category used
// for grouping: 06-11 breakfast, 12-17 lunch, 18-23 dinner, 00-05 snack.
func MealTypeForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "breakfast"
	case hour >= 12 && hour < 18:
		return "lunch"
	case hour >= 18:
		return "dinner"
	default:
		return "snack"
	}
}

func (s *MealService) CreateMeal(userID uint, req CreateMealRequest) (*models.Meal, error) {
	consumedAt := time.Now()
	if req.ConsumedAt != nil {
		consumedAt = *req.ConsumedAt
	}

	mealType := req.MealType
	if mealType == "" {
		mealType = MealTypeForHour(consumedAt.Local().Hour())
	}

	meal := &models.Meal{
		UserID:     userID,
		Name:       req.Name,
		Calories:   req.Calories,
		Proteins:   req.Proteins,
		Carbs:      req.Carbs,
		Fats:       req.Fats,
		Fiber:      req.Fiber,
		Sugar:      req.Sugar,
		MealType:   mealType,
		ImageURL:   req.ImageURL,
		ConsumedAt: consumedAt,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	if req.ImageURL != "" || len(req.Analysis) > 0 {
		img := &models.MealImage{
			MealID:       meal.ID,
			ImageURL:     req.ImageURL,
			AnalysisData: string(req.Analysis),
		}
		if err := config.DB.Create(img).Error; err != nil {
			return nil, err
		}
	}

	// Keep the day's aggregate row in sync with the diary.
	if err := RecomputeDailyProgress(userID, consumedAt); err != nil {
		return nil, err
	}

	return meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByDate(userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 10
	}
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}
