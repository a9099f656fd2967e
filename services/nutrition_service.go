package services

import (
	"strings"

	"ayurbackend/models"
	"ayurbackend/utils"
)

// NutrientRange is an inclusive min/max band for one nutrient.
type NutrientRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NutritionalTargets is one static row of the life-stage table.
type NutritionalTargets struct {
	LifeStage  string        `json:"life_stage"`
	Calories   NutrientRange `json:"calories"`
	ProteinG   NutrientRange `json:"protein_g"`
	IronMg     NutrientRange `json:"iron_mg"`
	CalciumMg  NutrientRange `json:"calcium_mg"`
	FolateMcg  NutrientRange `json:"folate_mcg"`
	VitaminDIU NutrientRange `json:"vitamin_d_iu"`
	FiberG     NutrientRange `json:"fiber_g"`
	Omega3Mg   NutrientRange `json:"omega3_mg"`
	Notes      []string      `json:"notes"`
}

var adultTargets = NutritionalTargets{
	LifeStage:  "adult",
	Calories:   NutrientRange{1800, 2400},
	ProteinG:   NutrientRange{46, 70},
	IronMg:     NutrientRange{8, 18},
	CalciumMg:  NutrientRange{1000, 1200},
	FolateMcg:  NutrientRange{400, 600},
	VitaminDIU: NutrientRange{600, 800},
	FiberG:     NutrientRange{25, 35},
	Omega3Mg:   NutrientRange{250, 500},
	Notes:      []string{"Standard adult maintenance targets."},
}

var nutritionalTargetTable = map[string]NutritionalTargets{
	"adult": adultTargets,
	"adolescent": {
		LifeStage:  "adolescent",
		Calories:   NutrientRange{2000, 2800},
		ProteinG:   NutrientRange{46, 75},
		IronMg:     NutrientRange{11, 15},
		CalciumMg:  NutrientRange{1300, 1300},
		FolateMcg:  NutrientRange{400, 400},
		VitaminDIU: NutrientRange{600, 600},
		FiberG:     NutrientRange{26, 38},
		Omega3Mg:   NutrientRange{250, 500},
		Notes:      []string{"Growth phase: prioritise calcium and iron-rich meals."},
	},
	"pregnancy/first": {
		LifeStage:  "pregnancy (first trimester)",
		Calories:   NutrientRange{1800, 2200},
		ProteinG:   NutrientRange{60, 75},
		IronMg:     NutrientRange{27, 27},
		CalciumMg:  NutrientRange{1000, 1300},
		FolateMcg:  NutrientRange{600, 800},
		VitaminDIU: NutrientRange{600, 800},
		FiberG:     NutrientRange{28, 34},
		Omega3Mg:   NutrientRange{300, 600},
		Notes: []string{
			"Folate is critical in the first trimester.",
			"Small frequent meals help with nausea.",
		},
	},
	"pregnancy/second": {
		LifeStage:  "pregnancy (second trimester)",
		Calories:   NutrientRange{2200, 2600},
		ProteinG:   NutrientRange{70, 90},
		IronMg:     NutrientRange{27, 27},
		CalciumMg:  NutrientRange{1000, 1300},
		FolateMcg:  NutrientRange{600, 800},
		VitaminDIU: NutrientRange{600, 800},
		FiberG:     NutrientRange{28, 34},
		Omega3Mg:   NutrientRange{300, 600},
		Notes: []string{
			"Add roughly 340 kcal/day over pre-pregnancy intake.",
			"Iron and calcium needs stay elevated.",
		},
	},
	"pregnancy/third": {
		LifeStage:  "pregnancy (third trimester)",
		Calories:   NutrientRange{2400, 2800},
		ProteinG:   NutrientRange{75, 100},
		IronMg:     NutrientRange{27, 27},
		CalciumMg:  NutrientRange{1000, 1300},
		FolateMcg:  NutrientRange{600, 800},
		VitaminDIU: NutrientRange{600, 800},
		FiberG:     NutrientRange{28, 34},
		Omega3Mg:   NutrientRange{300, 600},
		Notes: []string{
			"Add roughly 450 kcal/day over pre-pregnancy intake.",
			"Favor smaller portions as the stomach is compressed.",
		},
	},
	"breastfeeding/early": {
		LifeStage:  "breastfeeding (0-6 months)",
		Calories:   NutrientRange{2300, 2800},
		ProteinG:   NutrientRange{71, 90},
		IronMg:     NutrientRange{9, 10},
		CalciumMg:  NutrientRange{1000, 1300},
		FolateMcg:  NutrientRange{500, 600},
		VitaminDIU: NutrientRange{600, 800},
		FiberG:     NutrientRange{29, 34},
		Omega3Mg:   NutrientRange{300, 600},
		Notes:      []string{"Hydration and galactagogue foods (fenugreek, cumin) support lactation."},
	},
	"breastfeeding/late": {
		LifeStage:  "breastfeeding (6+ months)",
		Calories:   NutrientRange{2100, 2600},
		ProteinG:   NutrientRange{65, 85},
		IronMg:     NutrientRange{9, 10},
		CalciumMg:  NutrientRange{1000, 1300},
		FolateMcg:  NutrientRange{500, 600},
		VitaminDIU: NutrientRange{600, 800},
		FiberG:     NutrientRange{29, 34},
		Omega3Mg:   NutrientRange{300, 600},
		Notes:      []string{"Calorie needs taper as solids are introduced."},
	},
	"menopause/peri": {
		LifeStage:  "perimenopause",
		Calories:   NutrientRange{1700, 2100},
		ProteinG:   NutrientRange{55, 75},
		IronMg:     NutrientRange{8, 18},
		CalciumMg:  NutrientRange{1200, 1500},
		FolateMcg:  NutrientRange{400, 500},
		VitaminDIU: NutrientRange{800, 1000},
		FiberG:     NutrientRange{25, 32},
		Omega3Mg:   NutrientRange{300, 600},
		Notes:      []string{"Calcium and vitamin D protect bone density through the transition."},
	},
	"menopause/post": {
		LifeStage:  "postmenopause",
		Calories:   NutrientRange{1600, 2000},
		ProteinG:   NutrientRange{55, 75},
		IronMg:     NutrientRange{8, 8},
		CalciumMg:  NutrientRange{1200, 1500},
		FolateMcg:  NutrientRange{400, 500},
		VitaminDIU: NutrientRange{800, 1000},
		FiberG:     NutrientRange{22, 30},
		Omega3Mg:   NutrientRange{300, 600},
		Notes:      []string{"Iron needs drop after menopause; keep calcium high."},
	},
	"senior": {
		LifeStage:  "senior",
		Calories:   NutrientRange{1600, 2200},
		ProteinG:   NutrientRange{60, 80},
		IronMg:     NutrientRange{8, 8},
		CalciumMg:  NutrientRange{1200, 1500},
		FolateMcg:  NutrientRange{400, 500},
		VitaminDIU: NutrientRange{800, 1000},
		FiberG:     NutrientRange{22, 30},
		Omega3Mg:   NutrientRange{300, 600},
		Notes:      []string{"Higher protein guards against sarcopenia; soft, warm preparations digest easily."},
	},
}

// LookupNutritionalTargets picks the row for a life-stage and sub-state
// (pregnancy trimester, breastfeeding stage, menopause stage). Unknown
// inputs fall back to the generic adult row.
func LookupNutritionalTargets(profile *models.PatientProfile) NutritionalTargets {
	if profile == nil {
		return adultTargets
	}

	stage := strings.ToLower(strings.TrimSpace(profile.LifeStage))
	key := stage
	switch stage {
	case models.LifeStagePregnancy:
		sub := strings.ToLower(strings.TrimSpace(profile.PregnancyTrimester))
		if sub == "" {
			sub = "first"
		}
		key = stage + "/" + sub
	case models.LifeStageBreastfeeding:
		sub := strings.ToLower(strings.TrimSpace(profile.BreastfeedingStage))
		if sub == "" {
			sub = "early"
		}
		key = stage + "/" + sub
	case models.LifeStageMenopause:
		sub := strings.ToLower(strings.TrimSpace(profile.MenopauseStage))
		if sub == "" {
			sub = "peri"
		}
		key = stage + "/" + sub
	}

	if row, ok := nutritionalTargetTable[key]; ok {
		return row
	}
	return adultTargets
}

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"moderate":  1.55,
	"active":    1.725,
}

var goalAdjustments = map[string]float64{
	"weight_loss": -400,
	"maintenance": 0,
	"weight_gain": 400,
}

// DailyCalorieTarget estimates a daily calorie goal from the assessment
// record: Mifflin-St Jeor BMR, an activity multiplier and a goal adjustment,
// clamped into the life-stage target band.
func DailyCalorieTarget(profile *models.PatientProfile, targets NutritionalTargets) float64 {
	if profile == nil || profile.WeightKg <= 0 || profile.HeightCm <= 0 {
		return (targets.Calories.Min + targets.Calories.Max) / 2
	}

	age := 30
	if !profile.DateOfBirth.IsZero() {
		age = utils.CalculateAge(profile.DateOfBirth)
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(age)
	if strings.EqualFold(profile.Gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[strings.ToLower(profile.ActivityLevel)]
	if !ok {
		multiplier = activityMultipliers["moderate"]
	}
	target := bmr * multiplier

	for _, goal := range splitList(profile.HealthGoals) {
		if adj, ok := goalAdjustments[strings.ReplaceAll(goal, " ", "_")]; ok {
			target += adj
			break
		}
	}

	// weight-loss floors
	if target < 1200 {
		target = 1200
	}
	if strings.EqualFold(profile.Gender, "male") && target < 1500 {
		target = 1500
	}

	if target < targets.Calories.Min {
		target = targets.Calories.Min
	}
	if target > targets.Calories.Max {
		target = targets.Calories.Max
	}
	return target
}
