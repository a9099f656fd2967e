package services

import (
	"strings"

	"ayurbackend/models"
)

const (
	DoshaVata  = "vata"
	DoshaPitta = "pitta"
	DoshaKapha = "kapha"
)

// DoshaScore holds the additive weights accumulated per dosha. Primary is
// the argmax; exact ties resolve in the fixed order vata, pitta, kapha.
type DoshaScore struct {
	Vata  float64 `json:"vata"`
	Pitta float64 `json:"pitta"`
	Kapha float64 `json:"kapha"`
}

func (s DoshaScore) Primary() string {
	best, bestScore := DoshaVata, s.Vata
	if s.Pitta > bestScore {
		best, bestScore = DoshaPitta, s.Pitta
	}
	if s.Kapha > bestScore {
		best = DoshaKapha
	}
	return best
}

var bodyFrameWeights = map[string]map[string]float64{
	"thin":   {DoshaVata: 2},
	"medium": {DoshaPitta: 2},
	"heavy":  {DoshaKapha: 2},
}

var skinTypeWeights = map[string]map[string]float64{
	"dry":       {DoshaVata: 1.5},
	"sensitive": {DoshaPitta: 1.5},
	"oily":      {DoshaKapha: 1.5},
}

var hairTypeWeights = map[string]map[string]float64{
	"dry":   {DoshaVata: 1},
	"fine":  {DoshaPitta: 1},
	"thick": {DoshaKapha: 1},
	"oily":  {DoshaKapha: 1},
}

var digestionIssueWeights = map[string]map[string]float64{
	"bloating":     {DoshaVata: 1},
	"gas":          {DoshaVata: 1},
	"constipation": {DoshaVata: 1},
	"acidity":      {DoshaPitta: 1},
	"heartburn":    {DoshaPitta: 1},
	"loose stools": {DoshaPitta: 1},
	"sluggish":     {DoshaKapha: 1},
	"heaviness":    {DoshaKapha: 1},
	"slow":         {DoshaKapha: 1},
}

var personalityTraitWeights = map[string]map[string]float64{
	"anxious":       {DoshaVata: 0.5},
	"restless":      {DoshaVata: 0.5},
	"creative":      {DoshaVata: 0.5},
	"talkative":     {DoshaVata: 0.5},
	"ambitious":     {DoshaPitta: 0.5},
	"intense":       {DoshaPitta: 0.5},
	"irritable":     {DoshaPitta: 0.5},
	"perfectionist": {DoshaPitta: 0.5},
	"calm":          {DoshaKapha: 0.5},
	"patient":       {DoshaKapha: 0.5},
	"steady":        {DoshaKapha: 0.5},
	"caring":        {DoshaKapha: 0.5},
}

func applyWeights(score *DoshaScore, weights map[string]float64) {
	score.Vata += weights[DoshaVata]
	score.Pitta += weights[DoshaPitta]
	score.Kapha += weights[DoshaKapha]
}

// splitList breaks a comma-separated profile field into normalized terms.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		cleaned := strings.ToLower(strings.TrimSpace(part))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// ScoreDosha walks the rule table over the assessment record. Absent fields
// contribute zero; a profile matching no rule scores (0,0,0) and the primary
// falls back to vata via the tie-break.
func ScoreDosha(profile *models.PatientProfile) DoshaScore {
	var score DoshaScore
	if profile == nil {
		return score
	}

	if w, ok := bodyFrameWeights[strings.ToLower(strings.TrimSpace(profile.BodyFrame))]; ok {
		applyWeights(&score, w)
	}
	if w, ok := skinTypeWeights[strings.ToLower(strings.TrimSpace(profile.SkinType))]; ok {
		applyWeights(&score, w)
	}
	if w, ok := hairTypeWeights[strings.ToLower(strings.TrimSpace(profile.HairType))]; ok {
		applyWeights(&score, w)
	}

	for _, issue := range splitList(profile.DigestionIssues) {
		if w, ok := digestionIssueWeights[issue]; ok {
			applyWeights(&score, w)
		}
	}
	for _, trait := range splitList(profile.PersonalityTraits) {
		if w, ok := personalityTraitWeights[trait]; ok {
			applyWeights(&score, w)
		}
	}

	// light sleepers trend vata, long sleepers kapha
	if profile.SleepHours > 0 {
		if profile.SleepHours < 6 {
			score.Vata += 1
		} else if profile.SleepHours > 8 {
			score.Kapha += 1
		}
	}
	if profile.StressLevel >= 4 {
		score.Vata += 1
	}
	if profile.EnergyLevel >= 4 {
		score.Pitta += 1
	} else if profile.EnergyLevel > 0 && profile.EnergyLevel <= 2 {
		score.Kapha += 1
	}

	return score
}

var doshaRecommendations = map[string]string{
	DoshaVata:  "Favor warm, moist, grounding meals eaten at regular times. Cooked grains, root vegetables and healthy oils settle vata; avoid cold, dry and raw foods.",
	DoshaPitta: "Favor cooling, mildly spiced meals. Sweet fruits, coconut and fresh herbs soothe pitta; avoid hot spices, fried and sour foods.",
	DoshaKapha: "Favor light, warm and well-spiced meals. Legumes, leafy greens and pungent spices lift kapha; avoid heavy, oily and cold foods.",
}

// DoshaRecommendation returns the food-preference guidance for a primary dosha.
func DoshaRecommendation(dosha string) string {
	if rec, ok := doshaRecommendations[strings.ToLower(dosha)]; ok {
		return rec
	}
	return doshaRecommendations[DoshaVata]
}
