package report

import "time"

// Severity levels accepted for incident reports.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Report lifecycle statuses. Intake always starts a report as Active; the
// other values exist for operators working directly on the store.
const (
	StatusActive     = "Active"
	StatusMonitoring = "Monitoring"
	StatusResolved   = "Resolved"
)

// ValidSeverity reports whether s belongs to the severity enum.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// ValidStatus reports whether s belongs to the status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusMonitoring, StatusResolved:
		return true
	}
	return false
}

// Coordinates is an optional lat/lng pair attached to a report.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is an incident report submitted through intake.
type Report struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	Severity     string       `json:"severity"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	Pincode      string       `json:"pincode,omitempty"`
	Location     *Coordinates `json:"location,omitempty"`
	ContactName  string       `json:"contactName,omitempty"`
	ContactPhone string       `json:"contactPhone"`
	ContactEmail string       `json:"contactEmail,omitempty"`
	Anonymous    bool         `json:"anonymous"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}
