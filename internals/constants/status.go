// file: internals/constants/status.go
package constants

import "fmt"

// ContentStatus is the closed set of publication states shared by programs
// and lessons. Anything outside this set is rejected at the boundary so the
// store never carries an unknown status string.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusScheduled ContentStatus = "scheduled"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

var AllContentStatuses = []ContentStatus{
	StatusDraft,
	StatusScheduled,
	StatusPublished,
	StatusArchived,
}

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusScheduled, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// IsTerminal: archived is final, nothing (editor or worker) moves out of it.
func (s ContentStatus) IsTerminal() bool {
	return s == StatusArchived
}

func ParseContentStatus(raw string) (ContentStatus, error) {
	s := ContentStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}
