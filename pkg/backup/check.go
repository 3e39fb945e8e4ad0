package backup

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okabe/htmlbak/pkg/svn"
)

// Check compares rel's local last-changed revision against the remote head.
// Both the stale and the up-to-date case are per-folder successes; staleness
// is surfaced through the outcome message.
func (e *Executor) Check(ctx context.Context, rel string) Outcome {
	dir := e.folderDir(rel)
	if !dirExists(dir) {
		return fail(rel, "folder is missing")
	}

	target := filepath.Join(dir, SourceName)
	if !fileExists(target) {
		return fail(rel, "index.html is missing")
	}

	local, err := e.SVN.LastChangedRevision(ctx, target, "")
	if err != nil {
		return fail(rel, err.Error())
	}

	latest, err := e.SVN.LastChangedRevision(ctx, target, svn.RemoteLatest)
	if err != nil {
		return fail(rel, err.Error())
	}

	if latest > local {
		return ok(rel, fmt.Sprintf("update available for %s (local %d -> latest %d)", SourceName, local, latest))
	}
	return ok(rel, "up-to-date")
}
