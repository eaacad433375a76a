// Package model holds shared records persisted by the store.
package model

import "time"

// Run is one batch-processing invocation over an input directory.
type Run struct {
	ID         string       `json:"id"`
	InputDir   string       `json:"input_dir"`
	OutputDir  string       `json:"output_dir"`
	Files      []FileResult `json:"files,omitempty"`
	Processed  int          `json:"processed"`
	Skipped    int          `json:"skipped"`
	LeadsIn    int          `json:"leads_in"`
	LeadsOut   int          `json:"leads_out"`
	Duplicates int          `json:"duplicates"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
}

// FileResult is the outcome for a single input document.
type FileResult struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	LeadsIn    int    `json:"leads_in,omitempty"`
	LeadsOut   int    `json:"leads_out,omitempty"`
	Duplicates int    `json:"duplicates,omitempty"`
	Error      string `json:"error,omitempty"`
}

// File statuses.
const (
	FileProcessed = "processed"
	FileSkipped   = "skipped"
)
