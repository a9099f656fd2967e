package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(170, 65)
	require.NoError(t, err)
	assert.InDelta(t, 22.49, bmi, 0.01)

	_, err = CalculateBMI(0, 65)
	assert.Error(t, err)

	_, err = CalculateBMI(170, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class III", BMICategory(42.0))
}

func TestCalculateAge(t *testing.T) {
	dob := time.Now().AddDate(-30, 0, -2)
	assert.Equal(t, 30, CalculateAge(dob))

	// birthday not yet reached this year
	dob = time.Now().AddDate(-30, 0, 2)
	assert.Equal(t, 29, CalculateAge(dob))
}
