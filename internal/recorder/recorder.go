package recorder

import "time"

// Run describes one completed generation run.
type Run struct {
	StartDate       string
	NumDays         int
	TimeStepMinutes int
	TariffName      string
	Rows            int
	OutputPath      string
	CreatedAt       time.Time
}

// Recorder archives generation runs for later inspection.
type Recorder interface {
	RecordRun(run Run) error
	Close() error
}
