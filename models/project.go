package models

// Project lifecycle statuses, in contractual order. The store does not force
// forward-only transitions; an admin edit may set any status.
const (
	ProjectNotStarted       = "not_started"
	ProjectStartedOffsite   = "started_offsite"
	ProjectOngoing          = "ongoing"
	ProjectCompletedPending = "completed_pending"
	ProjectInspecting       = "inspecting"
	ProjectClosed           = "closed"
)

const (
	DurationCalendarDays = "calendar"
	DurationWorkingDays  = "working"
)

// Extension is an additive adjustment to a project's contractual duration,
// owned exclusively by its project. Extensions are appended and removed by
// the caller replacing the whole list through a project update.
type Extension struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	LetterDate   string `json:"letterDate"`
	LetterNumber string `json:"letterNumber"`
}

// Project is a construction project record. Manager is a display name, not a
// reference into the user collection. ContractDuration stays a string: the
// schedule derivation parses it and reports "cannot compute" when it is not
// a number.
type Project struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Manager          string `json:"manager"`
	AwardDate        string `json:"awardDate,omitempty"`
	ContractDuration string `json:"contractDuration"`
	DurationType     string `json:"durationType"`
	StartDate        string `json:"startDate"`

	ActualCompletionDate string `json:"actualCompletionDate,omitempty"`
	InspectionDate       string `json:"inspectionDate,omitempty"`
	ReinspectionDate     string `json:"reinspectionDate,omitempty"`
	InspectionPassedDate string `json:"inspectionPassedDate,omitempty"`

	Status   string `json:"status"`
	Progress int    `json:"progress"`

	Extensions []Extension `json:"extensions"`
}

// ProjectPatch carries a partial project update. Nil fields are left
// untouched; a non-nil Extensions pointer replaces the whole list.
type ProjectPatch struct {
	Name             *string `json:"name,omitempty"`
	Location         *string `json:"location,omitempty"`
	Manager          *string `json:"manager,omitempty"`
	AwardDate        *string `json:"awardDate,omitempty"`
	ContractDuration *string `json:"contractDuration,omitempty"`
	DurationType     *string `json:"durationType,omitempty"`
	StartDate        *string `json:"startDate,omitempty"`

	ActualCompletionDate *string `json:"actualCompletionDate,omitempty"`
	InspectionDate       *string `json:"inspectionDate,omitempty"`
	ReinspectionDate     *string `json:"reinspectionDate,omitempty"`
	InspectionPassedDate *string `json:"inspectionPassedDate,omitempty"`

	Status   *string `json:"status,omitempty"`
	Progress *int    `json:"progress,omitempty"`

	Extensions *[]Extension `json:"extensions,omitempty"`
}
