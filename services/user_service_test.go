package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAssessmentScaleValidation(t *testing.T) {
	t.Run("energy level above scale is rejected", func(t *testing.T) {
		_, err := UpsertAssessment(1, AssessmentInput{EnergyLevel: 6})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 5")
	})

	t.Run("negative stress level is rejected", func(t *testing.T) {
		_, err := UpsertAssessment(1, AssessmentInput{StressLevel: -1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "between 0 and 5")
	})
}
