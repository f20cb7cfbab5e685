package services

import (
	"context"
	"errors"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

type MacroShare struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
}

type StatsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`
	Period string `json:"period"` // week|month|year

	AvgCalories float64 `json:"avg_calories"`
	Streak      int     `json:"streak"`       // days in range with anything logged
	PerfectDays int     `json:"perfect_days"` // within ±10% of the calorie goal
	MealsLogged int64   `json:"meals_logged"`

	CurrentWeight float64 `json:"current_weight"`
	TargetWeight  float64 `json:"target_weight"`
	WeightChange  float64 `json:"weight_change"`

	Macros []MacroShare `json:"macros"`
}

func periodStart(now time.Time, period string) (time.Time, error) {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), nil
	case "month":
		return now.AddDate(0, -1, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, errors.New("period must be 'week', 'month' or 'year'")
}

func (s *StatsService) Summary(ctx context.Context, userID uint, period string) (*StatsSummary, error) {
	now := time.Now()
	from, err := periodStart(now, period)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	calorieGoal := profile.DailyCalorieGoal
	if calorieGoal <= 0 {
		calorieGoal = 2000
	}

	var rows []models.DailyProgress
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStartLocal(from), dayStartLocal(now)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := &StatsSummary{Period: period}
	out.Range.From = from.Format("2006-01-02")
	out.Range.To = now.Format("2006-01-02")

	var calSum float64
	for _, r := range rows {
		calSum += r.TotalCalories
		if r.TotalCalories > 0 {
			out.Streak++
		}
		if r.TotalCalories >= calorieGoal*0.9 && r.TotalCalories <= calorieGoal*1.1 {
			out.PerfectDays++
		}
	}
	if len(rows) > 0 {
		out.AvgCalories = round2(calSum / float64(len(rows)))
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&out.MealsLogged).Error; err != nil {
		return nil, err
	}

	out.CurrentWeight = profile.Weight
	out.TargetWeight = profile.TargetWeight
	out.WeightChange = round2(profile.TargetWeight - profile.Weight)

	macros, err := s.macroDistribution(ctx, userID)
	if err != nil {
		return nil, err
	}
	out.Macros = macros

	return out, nil
}

// macroDistribution reports each macro's share of the macro grams in the last
// ten meals. Falls back to a typical 25/45/30 split when nothing is logged.
func (s *StatsService) macroDistribution(ctx context.Context, userID uint) ([]MacroShare, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consumed_at DESC").
		Limit(10).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	var prot, carbs, fats float64
	for _, m := range meals {
		prot += m.Proteins
		carbs += m.Carbs
		fats += m.Fats
	}
	total := prot + carbs + fats
	if total <= 0 {
		return []MacroShare{
			{Name: "proteins", Percent: 25},
			{Name: "carbs", Percent: 45},
			{Name: "fats", Percent: 30},
		}, nil
	}

	return []MacroShare{
		{Name: "proteins", Percent: round2(prot / total * 100)},
		{Name: "carbs", Percent: round2(carbs / total * 100)},
		{Name: "fats", Percent: round2(fats / total * 100)},
	}, nil
}
