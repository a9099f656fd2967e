package models

import (
    "time"

    "gorm.io/gorm"
)

// Life-stage categories driving nutritional-target selection.
const (
    LifeStageAdult         = "adult"
    LifeStageAdolescent    = "adolescent"
    LifeStagePregnancy     = "pregnancy"
    LifeStageBreastfeeding = "breastfeeding"
    LifeStageMenopause     = "menopause"
    LifeStageSenior        = "senior"
)

// PatientProfile is the self-reported assessment record a patient fills in
// before a diet chart can be generated. It is read-only input to the
// generator; updates overwrite the row.
type PatientProfile struct {
    gorm.Model
    UserID uint `gorm:"uniqueIndex;not null"`

    Gender      string
    DateOfBirth time.Time
    HeightCm    float64
    WeightKg    float64

    LifeStage          string `gorm:"size:32"`
    PregnancyTrimester string `gorm:"size:16"` // "first" | "second" | "third"
    BreastfeedingStage string `gorm:"size:16"` // "early" | "late"
    MenopauseStage     string `gorm:"size:16"` // "peri" | "post"

    Allergies         string // comma-separated
    DietaryPreference string // "vegetarian" | "vegan" | "non_vegetarian"
    MedicalConditions string // comma-separated
    HealthGoals       string // comma-separated

    BodyFrame         string // "thin" | "medium" | "heavy"
    SkinType          string // "dry" | "normal" | "sensitive" | "oily"
    HairType          string // "dry" | "normal" | "thick" | "oily"
    PersonalityTraits string // comma-separated
    DigestionIssues   string // comma-separated

    EnergyLevel   int // 1-5
    StressLevel   int // 1-5
    ActivityLevel string
    SleepHours    float64
}
