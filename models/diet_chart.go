package models

import (
    "gorm.io/gorm"
)

// Meal slots, in serving order. Five per day.
const (
    SlotBreakfast    = "breakfast"
    SlotMidMorning   = "mid_morning"
    SlotLunch        = "lunch"
    SlotEveningSnack = "evening_snack"
    SlotDinner       = "dinner"
)

// DietChart is the generated aggregate. It is written once per generation
// request; regeneration creates a new chart rather than merging.
type DietChart struct {
    gorm.Model
    ChartID   string `gorm:"uniqueIndex;size:36"`
    PatientID uint   `gorm:"index;not null"`
    DoctorID  uint   `gorm:"index"`

    PatientName  string
    PrimaryDosha string `gorm:"size:8"`
    VataScore    float64
    PittaScore   float64
    KaphaScore   float64

    LifeStage           string
    TargetsJSON         string `gorm:"type:text"` // serialized NutritionalTargets row
    DoshaRecommendation string `gorm:"type:text"`
    ExcludedIngredients string `gorm:"type:text"` // comma-separated
    MedicalNotes        string `gorm:"type:text"`
    ReviewNote          string `gorm:"type:text"` // doctor review, added after generation

    Days []DietChartDay
}

type DietChartDay struct {
    gorm.Model
    DietChartID uint `gorm:"index;not null"`
    DayNumber   int
    Label       string

    CalorieTotal float64
    ProteinTotal float64
    CarbTotal    float64
    FatTotal     float64

    Meals []DietChartMeal
}

type DietChartMeal struct {
    gorm.Model
    DietChartDayID uint `gorm:"index;not null"`

    Slot           string `gorm:"size:16"`
    TargetCalories float64

    RecipeID    string `gorm:"size:64"`
    RecipeTitle string
    Region      string

    Calories float64
    Protein  float64
    Carbs    float64
    Fat      float64

    IngredientSummary string `gorm:"type:text"`
}

// Edit types recorded in the chart history.
const (
    ChartEditReviewNote = "review_note"
    ChartEditMealSwap   = "meal_swap"
    ChartEditAnnotation = "annotation"
)

// ChartEdit is the audit record for a doctor change made after generation.
// The chart itself stays append-only; edits explain what changed and why.
type ChartEdit struct {
    gorm.Model
    DietChartID uint   `gorm:"index;not null"`
    DoctorID    uint   `gorm:"index;not null"`
    EditType    string `gorm:"size:32;not null"`
    Reason      string `gorm:"type:text"`
    Changes     string `gorm:"type:text"` // free-form description or JSON payload
}

type ChartFeedback struct {
    gorm.Model
    DietChartID uint   `gorm:"index;not null"`
    PatientID   uint   `gorm:"index;not null"`
    Rating      int    // 1-5
    Comment     string `gorm:"type:text"`
}
