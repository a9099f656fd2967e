package services

import (
	"sort"
	"strings"

	"ayurbackend/models"
)

// Ingredient terms derived from a declared allergy. The allergy term itself
// is always part of the exclusion list even when it carries no mapping.
var allergenIngredients = map[string][]string{
	"dairy":     {"milk", "cheese", "yogurt", "butter", "ghee", "cream", "paneer", "curd"},
	"milk":      {"milk", "cheese", "yogurt", "butter", "cream", "paneer", "curd"},
	"nuts":      {"almond", "cashew", "walnut", "pistachio", "hazelnut"},
	"peanuts":   {"peanut", "groundnut", "peanut oil"},
	"gluten":    {"wheat", "barley", "rye", "semolina", "maida"},
	"wheat":     {"wheat", "semolina", "maida"},
	"soy":       {"soybean", "soy sauce", "tofu", "soy milk"},
	"eggs":      {"egg", "mayonnaise"},
	"shellfish": {"prawn", "shrimp", "crab", "lobster"},
	"fish":      {"fish", "anchovy", "fish sauce"},
	"sesame":    {"sesame", "tahini", "sesame oil"},
}

// Foods contraindicated for a life-stage regardless of dosha.
var lifeStageContraindications = map[string][]string{
	models.LifeStagePregnancy: {
		"papaya", "raw sprouts", "unpasteurized cheese", "alcohol",
		"swordfish", "king mackerel", "raw egg",
	},
	models.LifeStageBreastfeeding: {"alcohol", "sage", "excess caffeine"},
	models.LifeStageMenopause:     {"alcohol", "excess caffeine"},
}

var doshaAvoid = map[string][]string{
	DoshaVata:  {"raw salad", "dry crackers", "iced drinks", "popcorn", "carbonated drinks"},
	DoshaPitta: {"chili", "vinegar", "sour pickles", "fried food", "red meat"},
	DoshaKapha: {"fried food", "cheese", "ice cream", "heavy sweets", "cold milk"},
}

var doshaFavor = map[string][]string{
	DoshaVata:  {"warm soup", "ghee", "cooked grains", "root vegetables", "sesame oil", "dates"},
	DoshaPitta: {"coconut", "cucumber", "cilantro", "sweet fruits", "mint", "rose water"},
	DoshaKapha: {"ginger", "legumes", "leafy greens", "barley", "honey", "black pepper"},
}

var goalIngredients = map[string][]string{
	"weight_loss": {"leafy greens", "barley", "green tea", "millet"},
	"weight_gain": {"ghee", "whole milk", "dates", "almond", "banana"},
	"immunity":    {"turmeric", "amla", "ginger", "tulsi"},
	"digestion":   {"cumin", "fennel", "ginger", "buttermilk"},
	"energy":      {"dates", "almond", "oats", "jaggery"},
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// BuildExclusions unions allergy-derived ingredients, the life-stage
// contraindication table and the primary dosha's avoid list. Every listed
// allergy appears verbatim (case-normalized) in the result.
func BuildExclusions(profile *models.PatientProfile, primaryDosha string) []string {
	set := make(map[string]struct{})

	if profile != nil {
		for _, allergy := range splitList(profile.Allergies) {
			set[allergy] = struct{}{}
			for _, ingredient := range allergenIngredients[allergy] {
				set[ingredient] = struct{}{}
			}
		}
		stage := strings.ToLower(strings.TrimSpace(profile.LifeStage))
		for _, food := range lifeStageContraindications[stage] {
			set[food] = struct{}{}
		}
	}

	for _, food := range doshaAvoid[strings.ToLower(primaryDosha)] {
		set[food] = struct{}{}
	}

	return sortedSet(set)
}

// BuildInclusions unions the primary dosha's favor list with the
// health-goal-to-ingredient mapping. Inclusions guide recipe selection; they
// are preferences, not hard filters.
func BuildInclusions(profile *models.PatientProfile, primaryDosha string) []string {
	set := make(map[string]struct{})

	for _, food := range doshaFavor[strings.ToLower(primaryDosha)] {
		set[food] = struct{}{}
	}

	if profile != nil {
		for _, goal := range splitList(profile.HealthGoals) {
			key := strings.ReplaceAll(goal, " ", "_")
			for _, ingredient := range goalIngredients[key] {
				set[ingredient] = struct{}{}
			}
		}
	}

	return sortedSet(set)
}
