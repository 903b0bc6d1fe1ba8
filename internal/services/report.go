package services

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedAtLayout renders timestamps like "January 02, 2006 at 03:04 PM".
const GeneratedAtLayout = "January 02, 2006 at 03:04 PM"

// ReportFormatter produces the display-only fields of an analysis report:
// the short report id and the human-readable generation timestamp.
type ReportFormatter struct {
	now func() time.Time
}

// NewReportFormatter creates a formatter using the wall clock.
func NewReportFormatter() *ReportFormatter {
	return &ReportFormatter{now: time.Now}
}

// NewReportID returns an 8-character identifier, the leading hex of a v4
// UUID. Ids are never persisted or looked up, so collision-improbability is
// all that is required.
func (rf *ReportFormatter) NewReportID() string {
	return uuid.New().String()[:8]
}

// GeneratedAt formats the current time for the response envelope. Captured
// at response assembly, not request arrival.
func (rf *ReportFormatter) GeneratedAt() string {
	return rf.now().Format(GeneratedAtLayout)
}
