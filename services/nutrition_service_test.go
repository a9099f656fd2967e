package services

import (
	"testing"

	"ayurbackend/models"

	"github.com/stretchr/testify/assert"
)

func TestLookupNutritionalTargets(t *testing.T) {
	t.Run("nil profile falls back to adult", func(t *testing.T) {
		targets := LookupNutritionalTargets(nil)
		assert.Equal(t, "adult", targets.LifeStage)
	})

	t.Run("unknown life stage falls back to adult", func(t *testing.T) {
		targets := LookupNutritionalTargets(&models.PatientProfile{LifeStage: "toddler"})
		assert.Equal(t, "adult", targets.LifeStage)
	})

	t.Run("pregnancy second trimester selects its own row", func(t *testing.T) {
		targets := LookupNutritionalTargets(&models.PatientProfile{
			LifeStage:          models.LifeStagePregnancy,
			PregnancyTrimester: "second",
		})
		assert.Equal(t, "pregnancy (second trimester)", targets.LifeStage)
		assert.Equal(t, NutrientRange{2200, 2600}, targets.Calories)
		assert.Equal(t, 27.0, targets.IronMg.Min)
	})

	t.Run("pregnancy without trimester defaults to first", func(t *testing.T) {
		targets := LookupNutritionalTargets(&models.PatientProfile{LifeStage: models.LifeStagePregnancy})
		assert.Equal(t, "pregnancy (first trimester)", targets.LifeStage)
	})

	t.Run("breastfeeding without stage defaults to early", func(t *testing.T) {
		targets := LookupNutritionalTargets(&models.PatientProfile{LifeStage: models.LifeStageBreastfeeding})
		assert.Equal(t, "breastfeeding (0-6 months)", targets.LifeStage)
	})

	t.Run("menopause without stage defaults to peri", func(t *testing.T) {
		targets := LookupNutritionalTargets(&models.PatientProfile{LifeStage: models.LifeStageMenopause})
		assert.Equal(t, "perimenopause", targets.LifeStage)
	})

	t.Run("lookup is deterministic", func(t *testing.T) {
		p := &models.PatientProfile{LifeStage: models.LifeStageSenior}
		assert.Equal(t, LookupNutritionalTargets(p), LookupNutritionalTargets(p))
	})
}

func TestDailyCalorieTarget(t *testing.T) {
	adult := LookupNutritionalTargets(nil)

	t.Run("missing anthropometrics use the band midpoint", func(t *testing.T) {
		got := DailyCalorieTarget(nil, adult)
		assert.InDelta(t, 2100, got, 1e-9)

		got = DailyCalorieTarget(&models.PatientProfile{HeightCm: 165}, adult)
		assert.InDelta(t, 2100, got, 1e-9)
	})

	t.Run("moderate female adult", func(t *testing.T) {
		// BMR = 10*60 + 6.25*165 - 5*30 - 161 = 1320.25; x1.55 = 2046.3875
		profile := &models.PatientProfile{
			Gender:        "female",
			WeightKg:      60,
			HeightCm:      165,
			ActivityLevel: "moderate",
		}
		got := DailyCalorieTarget(profile, adult)
		assert.InDelta(t, 2046.39, got, 0.01)
	})

	t.Run("unknown activity level defaults to moderate", func(t *testing.T) {
		base := &models.PatientProfile{Gender: "female", WeightKg: 60, HeightCm: 165, ActivityLevel: "moderate"}
		odd := &models.PatientProfile{Gender: "female", WeightKg: 60, HeightCm: 165, ActivityLevel: "couch"}
		assert.Equal(t, DailyCalorieTarget(base, adult), DailyCalorieTarget(odd, adult))
	})

	t.Run("weight loss never drops below band minimum", func(t *testing.T) {
		profile := &models.PatientProfile{
			Gender:        "female",
			WeightKg:      50,
			HeightCm:      155,
			ActivityLevel: "sedentary",
			HealthGoals:   "weight loss",
		}
		got := DailyCalorieTarget(profile, adult)
		assert.Equal(t, adult.Calories.Min, got)
	})

	t.Run("weight gain is capped at band maximum", func(t *testing.T) {
		profile := &models.PatientProfile{
			Gender:        "male",
			WeightKg:      100,
			HeightCm:      190,
			ActivityLevel: "active",
			HealthGoals:   "weight gain",
		}
		got := DailyCalorieTarget(profile, adult)
		assert.Equal(t, adult.Calories.Max, got)
	})
}
