package services

import (
	"errors"
	"fmt"
	"time"

	"ayurbackend/config"
	"ayurbackend/models"
	"ayurbackend/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfilePicture  string `json:"profile_picture"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
	ClinicAddress   string `json:"clinic_address"`
	Onboarded       bool   `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	out := map[string]interface{}{
		"id":              user.ID,
		"user_id":         user.UserID,
		"email":           user.Email,
		"role":            user.Role,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}
	if user.Role == models.RoleDoctor {
		out["specialization"] = user.Specialization
		out["experience_years"] = user.ExperienceYears
		out["clinic_address"] = user.ClinicAddress
	}
	return out, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Specialization != "" {
		user.Specialization = input.Specialization
	}
	if input.ExperienceYears > 0 {
		user.ExperienceYears = input.ExperienceYears
	}
	if input.ClinicAddress != "" {
		user.ClinicAddress = input.ClinicAddress
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

// ListDoctors returns active doctors for the patient-facing directory.
func ListDoctors() ([]map[string]interface{}, error) {
	var doctors []models.User
	err := config.DB.
		Where("role = ? AND disabled = ?", models.RoleDoctor, false).
		Order("first_name").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, map[string]interface{}{
			"id":               d.ID,
			"name":             d.FullName(),
			"specialization":   d.Specialization,
			"experience_years": d.ExperienceYears,
			"clinic_address":   d.ClinicAddress,
			"profile_picture":  d.ProfilePicture,
		})
	}
	return out, nil
}

type AssessmentInput struct {
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	HeightCm    float64 `json:"height_cm"`
	WeightKg    float64 `json:"weight_kg"`

	LifeStage          string `json:"life_stage"`
	PregnancyTrimester string `json:"pregnancy_trimester"`
	BreastfeedingStage string `json:"breastfeeding_stage"`
	MenopauseStage     string `json:"menopause_stage"`

	Allergies         string `json:"allergies"`
	DietaryPreference string `json:"dietary_preference"`
	MedicalConditions string `json:"medical_conditions"`
	HealthGoals       string `json:"health_goals"`

	BodyFrame         string `json:"body_frame"`
	SkinType          string `json:"skin_type"`
	HairType          string `json:"hair_type"`
	PersonalityTraits string `json:"personality_traits"`
	DigestionIssues   string `json:"digestion_issues"`

	EnergyLevel   int     `json:"energy_level"`
	StressLevel   int     `json:"stress_level"`
	ActivityLevel string  `json:"activity_level"`
	SleepHours    float64 `json:"sleep_hours"`
}

// UpsertAssessment overwrites the patient's assessment record; there are no
// merge semantics beyond full replacement of submitted fields.
func UpsertAssessment(userID uint, input AssessmentInput) (*models.PatientProfile, error) {
	// 0 means the question was skipped; 1-5 are the recorded scale values
	if input.EnergyLevel < 0 || input.EnergyLevel > 5 || input.StressLevel < 0 || input.StressLevel > 5 {
		return nil, errors.New("energy and stress levels must be between 0 and 5")
	}

	var profile models.PatientProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	profile.UserID = userID

	profile.Gender = input.Gender
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, errors.New("date_of_birth must be YYYY-MM-DD")
		}
		profile.DateOfBirth = dob
	}
	profile.HeightCm = input.HeightCm
	profile.WeightKg = input.WeightKg
	profile.LifeStage = input.LifeStage
	profile.PregnancyTrimester = input.PregnancyTrimester
	profile.BreastfeedingStage = input.BreastfeedingStage
	profile.MenopauseStage = input.MenopauseStage
	profile.Allergies = input.Allergies
	profile.DietaryPreference = input.DietaryPreference
	profile.MedicalConditions = input.MedicalConditions
	profile.HealthGoals = input.HealthGoals
	profile.BodyFrame = input.BodyFrame
	profile.SkinType = input.SkinType
	profile.HairType = input.HairType
	profile.PersonalityTraits = input.PersonalityTraits
	profile.DigestionIssues = input.DigestionIssues
	profile.EnergyLevel = input.EnergyLevel
	profile.StressLevel = input.StressLevel
	profile.ActivityLevel = input.ActivityLevel
	profile.SleepHours = input.SleepHours

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetAssessment(userID uint) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
