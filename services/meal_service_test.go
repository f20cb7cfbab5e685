package services

import "testing"

func TestMealTypeForHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "snack"},
		{2, "snack"},
		{5, "snack"},
		{6, "breakfast"},
		{7, "breakfast"},
		{11, "breakfast"},
		{12, "lunch"},
		{13, "lunch"},
		{17, "lunch"},
		{18, "dinner"},
		{19, "dinner"},
		{23, "dinner"},
	}

	for _, tc := range cases {
		if got := MealTypeForHour(tc.hour); got != tc.want {
			t.Errorf("MealTypeForHour(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}
