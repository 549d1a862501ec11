package models

// WizardStep identifies a stage of the booking wizard. Steps are ordered;
// StepUnavailable is a dead end reached only when the availability check
// reports no coverage for the entered ZIP code.
type WizardStep int

const (
	StepZipEntry          WizardStep = 1
	StepCategorySelection WizardStep = 2
	StepServiceSelection  WizardStep = 3
	StepBookingForm       WizardStep = 4
	StepUnavailable       WizardStep = 99
)

// ParseStep converts a persisted numeric value back into a WizardStep.
// Anything unknown falls back to the first step.
func ParseStep(v int) WizardStep {
	s := WizardStep(v)
	if !s.Valid() {
		return StepZipEntry
	}
	return s
}

func (s WizardStep) Valid() bool {
	switch s {
	case StepZipEntry, StepCategorySelection, StepServiceSelection, StepBookingForm, StepUnavailable:
		return true
	}
	return false
}

// Next returns the following step in wizard order. The last form step and
// the unavailable dead end have no forward transition.
func (s WizardStep) Next() (WizardStep, bool) {
	switch s {
	case StepZipEntry:
		return StepCategorySelection, true
	case StepCategorySelection:
		return StepServiceSelection, true
	case StepServiceSelection:
		return StepBookingForm, true
	}
	return s, false
}

// Prev returns the preceding step in wizard order. Going back is not
// possible from the first step or from the unavailable dead end.
func (s WizardStep) Prev() (WizardStep, bool) {
	switch s {
	case StepCategorySelection:
		return StepZipEntry, true
	case StepServiceSelection:
		return StepCategorySelection, true
	case StepBookingForm:
		return StepServiceSelection, true
	}
	return s, false
}

// Terminal reports whether the wizard cannot move forward from this step
// without external input (submission or restart).
func (s WizardStep) Terminal() bool {
	return s == StepBookingForm || s == StepUnavailable
}

// Progress returns the fraction of the wizard completed, for progress bars.
// The unavailable page renders as fully progressed.
func (s WizardStep) Progress() float64 {
	if s == StepUnavailable {
		return 1
	}
	return float64(s) / 5
}

func (s WizardStep) String() string {
	switch s {
	case StepZipEntry:
		return "zip_entry"
	case StepCategorySelection:
		return "category_selection"
	case StepServiceSelection:
		return "service_selection"
	case StepBookingForm:
		return "booking_form"
	case StepUnavailable:
		return "unavailable"
	}
	return "unknown"
}
