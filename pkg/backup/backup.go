package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okabe/htmlbak/pkg/svn"
	"github.com/okabe/htmlbak/pkg/utils/fileutils"
)

// SourceName is the file each configured folder is expected to contain.
const SourceName = "index.html"

const (
	backupPrefix = "__index"
	backupSuffix = ".bak.html"
	timeLayout   = "060102-1504"

	// sentinelRevision stamps backups whose working revision could not
	// be determined.
	sentinelRevision = "000000"
)

// Executor runs the per-folder actions against a working copy rooted at Base.
type Executor struct {
	Base string
	SVN  *svn.Client

	// Now supplies the backup timestamp. Nil means time.Now.
	Now func() time.Time
}

func New(base string, client *svn.Client) *Executor {
	return &Executor{Base: base, SVN: client}
}

func (e *Executor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// folderDir joins a normalized relative folder onto the base directory.
func (e *Executor) folderDir(rel string) string {
	return filepath.Join(e.Base, filepath.FromSlash(rel))
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// BackupName builds the destination filename for a backup taken at ts. The
// revision field is zero-padded to six digits; revOK false selects the
// sentinel.
func BackupName(ts time.Time, rev int, revOK bool) string {
	revStr := sentinelRevision
	if revOK {
		revStr = fmt.Sprintf("%06d", rev)
	}
	return fmt.Sprintf("%s_%s_r%s%s", backupPrefix, ts.Format(timeLayout), revStr, backupSuffix)
}

// backupPattern matches every file BackupName can produce.
func backupPattern() string {
	return backupPrefix + "*" + backupSuffix
}

// Backup copies rel's index.html to a timestamped, revision-stamped sibling.
// A failed revision query does not abort the backup; the filename carries
// the sentinel revision instead.
func (e *Executor) Backup(ctx context.Context, rel string) Outcome {
	dir := e.folderDir(rel)
	if !dirExists(dir) {
		return fail(rel, "folder is missing")
	}

	src := filepath.Join(dir, SourceName)
	if !fileExists(src) {
		return fail(rel, "index.html is missing")
	}

	rev, revErr := e.SVN.WorkingRevision(ctx, src)
	name := BackupName(e.now(), rev, revErr == nil)

	if err := fileutils.CopyFile(src, filepath.Join(dir, name)); err != nil {
		return fail(rel, fmt.Sprintf("copy failed: %v", err))
	}

	return ok(rel, "created "+name)
}
