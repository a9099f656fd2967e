package services

import (
	"testing"

	"ayurbackend/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreDoshaEmptyProfile(t *testing.T) {
	t.Run("nil profile scores zero", func(t *testing.T) {
		score := ScoreDosha(nil)
		assert.Equal(t, DoshaScore{}, score)
	})

	t.Run("profile matching no rule scores zero and falls back to vata", func(t *testing.T) {
		score := ScoreDosha(&models.PatientProfile{
			BodyFrame: "unknown",
			SkinType:  "normal",
		})
		assert.Equal(t, 0.0, score.Vata)
		assert.Equal(t, 0.0, score.Pitta)
		assert.Equal(t, 0.0, score.Kapha)
		assert.Equal(t, DoshaVata, score.Primary())
	})
}

func TestScoreDoshaVataProfile(t *testing.T) {
	profile := &models.PatientProfile{
		BodyFrame:         "thin",            // vata +2
		SkinType:          "Dry",             // vata +1.5
		HairType:          "dry",             // vata +1
		DigestionIssues:   "bloating, gas",   // vata +2
		PersonalityTraits: "Anxious",         // vata +0.5
		SleepHours:        5,                 // vata +1
		StressLevel:       4,                 // vata +1
		EnergyLevel:       3,
	}

	score := ScoreDosha(profile)
	assert.InDelta(t, 9.0, score.Vata, 1e-9)
	assert.Equal(t, 0.0, score.Pitta)
	assert.Equal(t, 0.0, score.Kapha)
	assert.Equal(t, DoshaVata, score.Primary())
}

func TestScoreDoshaPittaProfile(t *testing.T) {
	profile := &models.PatientProfile{
		BodyFrame:         "medium",              // pitta +2
		SkinType:          "sensitive",           // pitta +1.5
		HairType:          "fine",                // pitta +1
		DigestionIssues:   "acidity",             // pitta +1
		PersonalityTraits: "ambitious, intense",  // pitta +1
		EnergyLevel:       5,                     // pitta +1
		SleepHours:        7,
	}

	score := ScoreDosha(profile)
	assert.InDelta(t, 7.5, score.Pitta, 1e-9)
	assert.Equal(t, DoshaPitta, score.Primary())
}

func TestScoreDoshaKaphaProfile(t *testing.T) {
	profile := &models.PatientProfile{
		BodyFrame:         "heavy",    // kapha +2
		SkinType:          "oily",     // kapha +1.5
		HairType:          "thick",    // kapha +1
		DigestionIssues:   "sluggish", // kapha +1
		PersonalityTraits: "calm",     // kapha +0.5
		SleepHours:        9,          // kapha +1
		EnergyLevel:       2,          // kapha +1
	}

	score := ScoreDosha(profile)
	assert.InDelta(t, 8.0, score.Kapha, 1e-9)
	assert.Equal(t, DoshaKapha, score.Primary())
}

func TestDoshaPrimaryTieBreak(t *testing.T) {
	cases := []struct {
		name  string
		score DoshaScore
		want  string
	}{
		{"three-way tie resolves to vata", DoshaScore{1, 1, 1}, DoshaVata},
		{"vata-pitta tie resolves to vata", DoshaScore{2, 2, 0}, DoshaVata},
		{"pitta-kapha tie resolves to pitta", DoshaScore{0, 2, 2}, DoshaPitta},
		{"vata-kapha tie resolves to vata", DoshaScore{2, 0, 2}, DoshaVata},
		{"clear kapha win", DoshaScore{1, 2, 3}, DoshaKapha},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.score.Primary())
		})
	}
}

func TestDoshaRecommendation(t *testing.T) {
	assert.Contains(t, DoshaRecommendation(DoshaPitta), "cooling")
	assert.Contains(t, DoshaRecommendation("KAPHA"), "spiced")
	// unknown dosha falls back to the vata guidance
	assert.Equal(t, DoshaRecommendation(DoshaVata), DoshaRecommendation("something else"))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"dairy", "nuts"}, splitList("  Dairy , NUTS "))
	assert.Equal(t, []string{"gluten"}, splitList("gluten,,  ,"))
}
