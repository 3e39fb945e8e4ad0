package backup

import "strings"

// Status tags a per-folder outcome.
type Status int

const (
	StatusOK Status = iota
	StatusFail
)

// Outcome is the result of running one action against one folder.
type Outcome struct {
	Status  Status
	Folder  string
	Message string
}

func (o Outcome) OK() bool {
	return o.Status == StatusOK
}

// UpdateAvailable reports whether a check outcome found the remote copy
// ahead of the local one.
func (o Outcome) UpdateAvailable() bool {
	return o.Status == StatusOK && strings.HasPrefix(o.Message, "update available")
}

func ok(folder, message string) Outcome {
	return Outcome{Status: StatusOK, Folder: folder, Message: message}
}

func fail(folder, message string) Outcome {
	return Outcome{Status: StatusFail, Folder: folder, Message: message}
}
