package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"ayurbackend/config"
	"ayurbackend/models"
	"ayurbackend/utils"

	"github.com/google/uuid"
)

// ErrIncompleteProfile blocks generation when required assessment fields are
// missing; callers surface it as a validation failure rather than proceeding
// with defaults.
var ErrIncompleteProfile = errors.New("assessment incomplete: body frame and skin type are required")

// ErrTooManyDays rejects charts beyond the supported horizon. Unset day
// counts default to a week; an explicit out-of-range request is an error,
// not a silent clamp.
var ErrTooManyDays = errors.New("num_days cannot exceed 30")

type mealSlot struct {
	Name     string
	Fraction float64
}

// Five fixed slots per day with the calorie split between them.
var mealSlots = []mealSlot{
	{models.SlotBreakfast, 0.25},
	{models.SlotMidMorning, 0.10},
	{models.SlotLunch, 0.30},
	{models.SlotEveningSnack, 0.10},
	{models.SlotDinner, 0.25},
}

// slot queries tolerate recipes within this band around the slot target
const slotCalorieTolerance = 0.35

type DietChartService struct {
	recipes RecipeSource
}

func NewDietChartService(rs RecipeSource) *DietChartService {
	return &DietChartService{recipes: rs}
}

func dietParam(preference string) string {
	switch strings.ToLower(strings.TrimSpace(preference)) {
	case "vegetarian":
		return "vegetarian"
	case "vegan":
		return "vegan"
	default:
		return ""
	}
}

// Generate builds the full chart aggregate for a patient. It does not
// persist; call SaveDietChart with the result.
func (s *DietChartService) Generate(
	doctorID uint,
	patient *models.User,
	profile *models.PatientProfile,
	numDays int,
) (*models.DietChart, error) {
	if profile == nil || profile.BodyFrame == "" || profile.SkinType == "" {
		return nil, ErrIncompleteProfile
	}
	if numDays <= 0 {
		numDays = 7
	}
	if numDays > 30 {
		return nil, ErrTooManyDays
	}

	score := ScoreDosha(profile)
	primary := score.Primary()
	targets := LookupNutritionalTargets(profile)
	exclusions := BuildExclusions(profile, primary)
	inclusions := BuildInclusions(profile, primary)
	dailyCalories := DailyCalorieTarget(profile, targets)

	targetsJSON, err := json.Marshal(targets)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize targets: %w", err)
	}

	medicalNotes := strings.Join(targets.Notes, " ")
	if bmi, err := utils.CalculateBMI(profile.HeightCm, profile.WeightKg); err == nil {
		medicalNotes = fmt.Sprintf("BMI %.1f (%s). %s", bmi, utils.BMICategory(bmi), medicalNotes)
	}

	chart := &models.DietChart{
		ChartID:             uuid.NewString(),
		PatientID:           patient.ID,
		DoctorID:            doctorID,
		PatientName:         patient.FullName(),
		PrimaryDosha:        primary,
		VataScore:           score.Vata,
		PittaScore:          score.Pitta,
		KaphaScore:          score.Kapha,
		LifeStage:           targets.LifeStage,
		TargetsJSON:         string(targetsJSON),
		DoshaRecommendation: DoshaRecommendation(primary),
		ExcludedIngredients: strings.Join(exclusions, ","),
		MedicalNotes:        medicalNotes,
	}

	diet := dietParam(profile.DietaryPreference)

	for dayNum := 1; dayNum <= numDays; dayNum++ {
		day := models.DietChartDay{
			DayNumber: dayNum,
			Label:     fmt.Sprintf("Day %d", dayNum),
		}

		usedToday := make(map[string]bool)
		for _, slot := range mealSlots {
			target := dailyCalories * slot.Fraction

			candidates, err := s.recipes.SearchRecipes(RecipeQuery{
				Region:             "Indian",
				Diet:               diet,
				MinCalories:        target * (1 - slotCalorieTolerance),
				MaxCalories:        target * (1 + slotCalorieTolerance),
				ExcludeIngredients: exclusions,
				Limit:              5,
			})
			if err != nil {
				// a failed slot is omitted, not fatal: the day simply
				// renders with fewer than five meals
				log.Printf("recipe lookup failed for day %d %s: %v", dayNum, slot.Name, err)
				continue
			}

			picked, ok := pickRecipe(candidates, usedToday, inclusions)
			if !ok {
				continue
			}
			usedToday[picked.ID] = true

			ingredientSummary := strings.Join(picked.Ingredients, ", ")
			if ingredientSummary == "" {
				// search results sometimes omit the ingredient list; fall
				// back to the per-recipe detail lookup
				if details, ok := s.recipes.(RecipeDetailSource); ok {
					if names, err := details.GetRecipeIngredients(picked.ID); err == nil {
						ingredientSummary = strings.Join(names, ", ")
					}
				}
			}

			day.Meals = append(day.Meals, models.DietChartMeal{
				Slot:              slot.Name,
				TargetCalories:    target,
				RecipeID:          picked.ID,
				RecipeTitle:       picked.Title,
				Region:            picked.Region,
				Calories:          picked.Calories,
				Protein:           picked.Protein,
				Carbs:             picked.Carbs,
				Fat:               picked.Fat,
				IngredientSummary: ingredientSummary,
			})
			day.CalorieTotal += picked.Calories
			day.ProteinTotal += picked.Protein
			day.CarbTotal += picked.Carbs
			day.FatTotal += picked.Fat
		}

		chart.Days = append(chart.Days, day)
	}

	return chart, nil
}

// pickRecipe selects the first unused candidate, preferring one whose title
// or ingredients match a favored term.
func pickRecipe(candidates []Recipe, used map[string]bool, inclusions []string) (Recipe, bool) {
	var fallback *Recipe
	for i := range candidates {
		c := &candidates[i]
		if used[c.ID] {
			continue
		}
		if fallback == nil {
			fallback = c
		}
		if matchesAny(c, inclusions) {
			return *c, true
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Recipe{}, false
}

func matchesAny(r *Recipe, terms []string) bool {
	title := strings.ToLower(r.Title)
	for _, term := range terms {
		if strings.Contains(title, term) {
			return true
		}
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), term) {
				return true
			}
		}
	}
	return false
}

// SaveDietChart persists the aggregate in a single create; regeneration
// writes a new chart rather than merging into an old one.
func (s *DietChartService) SaveDietChart(chart *models.DietChart) error {
	return config.DB.Create(chart).Error
}

func (s *DietChartService) GetChart(chartID string) (*models.DietChart, error) {
	var chart models.DietChart
	err := config.DB.
		Preload("Days.Meals").
		Preload("Days").
		Where("chart_id = ?", chartID).
		First(&chart).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

func (s *DietChartService) ListChartsForPatient(patientID uint) ([]models.DietChart, error) {
	var charts []models.DietChart
	err := config.DB.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&charts).Error
	return charts, err
}

func (s *DietChartService) DeleteChart(chartID string, doctorID uint) error {
	var chart models.DietChart
	if err := config.DB.Where("chart_id = ? AND doctor_id = ?", chartID, doctorID).First(&chart).Error; err != nil {
		return err
	}
	return config.DB.Select("Days", "Days.Meals").Delete(&chart).Error
}

// AddReviewNote lets the generating doctor annotate a chart after review.
// The note overwrite is also captured in the chart's edit history.
func (s *DietChartService) AddReviewNote(chartID string, doctorID uint, note string) error {
	var chart models.DietChart
	if err := config.DB.Where("chart_id = ? AND doctor_id = ?", chartID, doctorID).First(&chart).Error; err != nil {
		return errors.New("chart not found")
	}

	if err := config.DB.Model(&chart).Update("review_note", note).Error; err != nil {
		return err
	}
	return config.DB.Create(&models.ChartEdit{
		DietChartID: chart.ID,
		DoctorID:    doctorID,
		EditType:    models.ChartEditReviewNote,
		Changes:     note,
	}).Error
}

// RecordChartEdit appends an audit entry for a doctor change to a chart and
// notifies the patient. Only the generating doctor may edit.
func (s *DietChartService) RecordChartEdit(chartID string, doctorID uint, editType, reason, changes string) (*models.ChartEdit, error) {
	if editType == "" {
		return nil, errors.New("edit_type is required")
	}

	var chart models.DietChart
	if err := config.DB.Where("chart_id = ? AND doctor_id = ?", chartID, doctorID).First(&chart).Error; err != nil {
		return nil, errors.New("chart not found")
	}

	edit := &models.ChartEdit{
		DietChartID: chart.ID,
		DoctorID:    doctorID,
		EditType:    editType,
		Reason:      reason,
		Changes:     changes,
	}
	if err := config.DB.Create(edit).Error; err != nil {
		return nil, err
	}

	EmitNotification(chart.PatientID, models.NotifyDietChart, "Your diet chart was updated by your doctor")
	return edit, nil
}

// ListChartEdits returns a chart's edit history, newest first, to either
// participant.
func (s *DietChartService) ListChartEdits(chartID string, userID uint) ([]models.ChartEdit, error) {
	var chart models.DietChart
	if err := config.DB.Where("chart_id = ? AND (doctor_id = ? OR patient_id = ?)", chartID, userID, userID).
		First(&chart).Error; err != nil {
		return nil, errors.New("chart not found")
	}

	var edits []models.ChartEdit
	err := config.DB.
		Where("diet_chart_id = ?", chart.ID).
		Order("created_at DESC").
		Find(&edits).Error
	return edits, err
}

// SubmitFeedback records a patient rating for a chart.
func (s *DietChartService) SubmitFeedback(chartID string, patientID uint, rating int, comment string) (*models.ChartFeedback, error) {
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	var chart models.DietChart
	if err := config.DB.Where("chart_id = ? AND patient_id = ?", chartID, patientID).First(&chart).Error; err != nil {
		return nil, errors.New("chart not found")
	}

	fb := &models.ChartFeedback{
		DietChartID: chart.ID,
		PatientID:   patientID,
		Rating:      rating,
		Comment:     comment,
	}
	if err := config.DB.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}
