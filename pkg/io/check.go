package io

import (
	"strings"

	"github.com/matzehuels/gridboard/pkg/board"
)

// CheckResult is the non-throwing outcome of a pre-submission check.
type CheckResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Check runs the strict path plus the full geometry validation over a JSON
// document and collects any failure message instead of propagating it.
// Used for user-facing pre-submission checks, where a candidate document
// should produce a report rather than an error.
func (n *Normalizer) Check(data []byte) CheckResult {
	d, err := n.Unmarshal(data)
	if err != nil {
		return CheckResult{Errors: []string{err.Error()}}
	}
	if err := board.Validate(d); err != nil {
		return CheckResult{Errors: []string{err.Error()}}
	}
	return CheckResult{Valid: true, Errors: []string{}}
}

// Backup is a point-in-time snapshot of a dashboard, named so the
// timestamp is safe as a filename component.
type Backup struct {
	Data      *board.Dashboard
	Timestamp string
	Filename  string
}

// backupReplacer strips the characters in an ISO timestamp that are unsafe
// in filenames.
var backupReplacer = strings.NewReplacer(":", "-", ".", "-")

// NewBackup snapshots a dashboard for backup. The timestamp is the
// normalizer clock's current time with colons and periods replaced, and the
// filename follows dashboard-backup-<timestamp>.json. Data is a deep clone,
// so later edits to the live document never leak into the snapshot.
func (n *Normalizer) NewBackup(d *board.Dashboard) Backup {
	ts := backupReplacer.Replace(n.clock.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	return Backup{
		Data:      d.Clone(),
		Timestamp: ts,
		Filename:  "dashboard-backup-" + ts + ".json",
	}
}
