package domain

import (
	"errors"
	"time"

	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"

	"github.com/google/uuid"
)

// ErrReportNotFound is returned when no stored analysis has the requested id.
var ErrReportNotFound = errors.New("report not found")

// Source identifies where an analyzed record set came from.
type Source string

const (
	SourceUpload Source = "upload"
	SourceRemote Source = "remote"
	SourceDemo   Source = "demo"
)

// Report is the stored outcome of one analysis run.
type Report struct {
	// ID is a random UUID assigned at creation.
	ID string `json:"id"`
	// Source is how the data arrived.
	Source Source `json:"source"`
	// Filename is the uploaded or downloaded file name, or the demo dataset name.
	Filename string `json:"filename,omitempty"`
	// CreatedAt is when the analysis finished.
	CreatedAt time.Time `json:"created_at"`
	// TotalShipments is the number of normalized records.
	TotalShipments int `json:"total_shipments"`
	// Normalization describes how source columns were reconciled.
	Normalization shipdomain.NormalizationSummary `json:"normalization"`
	// Results holds every analytical view.
	Results Results `json:"results"`
}

// NewReport stamps a fresh report for an analyzed record set.
func NewReport(source Source, filename string, rs *shipdomain.RecordSet, results Results, now time.Time) *Report {
	return &Report{
		ID:             uuid.NewString(),
		Source:         source,
		Filename:       filename,
		CreatedAt:      now.UTC(),
		TotalShipments: rs.Len(),
		Normalization:  rs.Summary,
		Results:        results,
	}
}

// Analysis pairs a report with the record set it was computed from.
type Analysis struct {
	Report    *Report               `json:"report"`
	RecordSet *shipdomain.RecordSet `json:"record_set"`
}
