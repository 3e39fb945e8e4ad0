package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DeleteBackups removes every backup file in rel. Removal errors do not stop
// the sweep; the first one marks the whole folder failed. A folder with
// nothing to delete is a failure, not a no-op.
func (e *Executor) DeleteBackups(rel string) Outcome {
	dir := e.folderDir(rel)
	if !dirExists(dir) {
		return fail(rel, "folder is missing")
	}

	matches, err := filepath.Glob(filepath.Join(dir, backupPattern()))
	if err != nil {
		return fail(rel, fmt.Sprintf("list backup files: %v", err))
	}

	var deleted []string
	firstErr := ""
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			if firstErr == "" {
				firstErr = fmt.Sprintf("delete failed for %s: %v", filepath.Base(match), err)
			}
			continue
		}
		deleted = append(deleted, filepath.Base(match))
	}

	if firstErr != "" {
		return fail(rel, firstErr)
	}
	if len(deleted) == 0 {
		return fail(rel, "no backup files found")
	}

	return ok(rel, fmt.Sprintf("deleted %d file(s): %s", len(deleted), strings.Join(deleted, ", ")))
}
