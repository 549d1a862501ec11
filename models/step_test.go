package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrdering(t *testing.T) {
	next, ok := StepZipEntry.Next()
	assert.True(t, ok)
	assert.Equal(t, StepCategorySelection, next)

	next, ok = StepCategorySelection.Next()
	assert.True(t, ok)
	assert.Equal(t, StepServiceSelection, next)

	next, ok = StepServiceSelection.Next()
	assert.True(t, ok)
	assert.Equal(t, StepBookingForm, next)
}

func TestStepNoForwardFromTerminalStates(t *testing.T) {
	_, ok := StepBookingForm.Next()
	assert.False(t, ok)

	_, ok = StepUnavailable.Next()
	assert.False(t, ok)
}

func TestStepNoBackFromFirstOrUnavailable(t *testing.T) {
	_, ok := StepZipEntry.Prev()
	assert.False(t, ok)

	_, ok = StepUnavailable.Prev()
	assert.False(t, ok)
}

func TestStepPrevWalksBackInOrder(t *testing.T) {
	prev, ok := StepBookingForm.Prev()
	assert.True(t, ok)
	assert.Equal(t, StepServiceSelection, prev)

	prev, ok = StepServiceSelection.Prev()
	assert.True(t, ok)
	assert.Equal(t, StepCategorySelection, prev)

	prev, ok = StepCategorySelection.Prev()
	assert.True(t, ok)
	assert.Equal(t, StepZipEntry, prev)
}

func TestParseStepFallsBackToFirstStep(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want WizardStep
	}{
		{"valid first step", 1, StepZipEntry},
		{"valid form step", 4, StepBookingForm},
		{"unavailable page", 99, StepUnavailable},
		{"zero", 0, StepZipEntry},
		{"negative", -3, StepZipEntry},
		{"out of range", 42, StepZipEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStep(tt.in))
		})
	}
}

func TestStepProgress(t *testing.T) {
	assert.InDelta(t, 0.2, StepZipEntry.Progress(), 1e-9)
	assert.InDelta(t, 0.8, StepBookingForm.Progress(), 1e-9)
	assert.InDelta(t, 1.0, StepUnavailable.Progress(), 1e-9)
}
