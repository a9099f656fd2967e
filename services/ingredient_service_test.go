package services

import (
	"sort"
	"testing"

	"ayurbackend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildExclusions(t *testing.T) {
	t.Run("allergy terms always appear case-normalized", func(t *testing.T) {
		profile := &models.PatientProfile{Allergies: "Dairy, Kiwi"}
		got := BuildExclusions(profile, "")

		assert.Contains(t, got, "dairy")
		// kiwi has no derived-ingredient mapping but is still excluded
		assert.Contains(t, got, "kiwi")
		// derived dairy ingredients
		assert.Contains(t, got, "milk")
		assert.Contains(t, got, "ghee")
		assert.Contains(t, got, "paneer")
	})

	t.Run("pregnancy contraindications and dosha avoid list union in", func(t *testing.T) {
		profile := &models.PatientProfile{
			Allergies: "dairy",
			LifeStage: models.LifeStagePregnancy,
		}
		got := BuildExclusions(profile, DoshaPitta)

		assert.Contains(t, got, "papaya")
		assert.Contains(t, got, "alcohol")
		assert.Contains(t, got, "chili")
		assert.Contains(t, got, "fried food")
		assert.Contains(t, got, "butter")
	})

	t.Run("result is a sorted set", func(t *testing.T) {
		profile := &models.PatientProfile{
			Allergies: "dairy, dairy, nuts",
			LifeStage: models.LifeStageBreastfeeding,
		}
		got := BuildExclusions(profile, DoshaKapha)

		assert.True(t, sort.StringsAreSorted(got))
		seen := make(map[string]int)
		for _, term := range got {
			seen[term]++
		}
		for term, n := range seen {
			assert.Equal(t, 1, n, "duplicate exclusion %q", term)
		}
	})

	t.Run("nil profile still excludes the dosha avoid list", func(t *testing.T) {
		got := BuildExclusions(nil, DoshaVata)
		want := append([]string(nil), doshaAvoid[DoshaVata]...)
		sort.Strings(want)
		assert.Equal(t, want, got)
	})
}

func TestBuildInclusions(t *testing.T) {
	t.Run("dosha favor list plus goal ingredients", func(t *testing.T) {
		profile := &models.PatientProfile{HealthGoals: "weight loss, immunity"}
		got := BuildInclusions(profile, DoshaKapha)

		assert.Contains(t, got, "ginger")       // kapha favor and immunity goal
		assert.Contains(t, got, "leafy greens") // kapha favor and weight-loss goal
		assert.Contains(t, got, "green tea")
		assert.Contains(t, got, "turmeric")
		assert.Contains(t, got, "honey")
		assert.True(t, sort.StringsAreSorted(got))
	})

	t.Run("unknown goal contributes nothing", func(t *testing.T) {
		profile := &models.PatientProfile{HealthGoals: "world peace"}
		got := BuildInclusions(profile, DoshaPitta)
		want := append([]string(nil), doshaFavor[DoshaPitta]...)
		sort.Strings(want)
		assert.Equal(t, want, got)
	})
}
