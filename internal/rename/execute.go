package rename

import (
	"os"
	"path/filepath"
)

// Status classifies the result of one attempted rename.
type Status string

const (
	StatusRenamed          Status = "RENAMED"
	StatusSkippedCollision Status = "SKIPPED"
	StatusFailed           Status = "FAILED"
)

// Outcome records what happened to one plan entry.
type Outcome struct {
	Entry  Entry
	Status Status
	Err    error
}

// Execute applies the plan strictly in order. A target that already exists
// is skipped rather than overwritten, and a filesystem failure on one entry
// never aborts the rest of the batch.
func Execute(root string, plan []Entry) []Outcome {
	outcomes := make([]Outcome, 0, len(plan))
	for _, e := range plan {
		target := filepath.Join(root, e.New)
		if _, err := os.Stat(target); err == nil {
			outcomes = append(outcomes, Outcome{Entry: e, Status: StatusSkippedCollision})
			continue
		}
		if err := os.Rename(filepath.Join(root, e.Old), target); err != nil {
			outcomes = append(outcomes, Outcome{Entry: e, Status: StatusFailed, Err: err})
			continue
		}
		outcomes = append(outcomes, Outcome{Entry: e, Status: StatusRenamed})
	}
	return outcomes
}
