package git

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sourcegraph/go-diff/diff"

	f "github.com/reviewkit/codeowners-resolve/pkg/functional"
)

// GitDiff enumerates the files changed by a proposed change, comparing the
// working branch (or a designated commit) against a base ref. It implements
// the engine's ChangedFiles contract.
type GitDiff struct {
	base       string
	ignoreDirs []string
	executor   commandExecutor
}

// NewDiff creates a changed-file enumerator for the repo at dir, diffing
// against base. Files under ignoreDirs are dropped from every enumeration.
func NewDiff(base, dir string, ignoreDirs []string) *GitDiff {
	return &GitDiff{
		base:       base,
		ignoreDirs: ignoreDirs,
		executor:   newRealExecutor(dir),
	}
}

// BranchFiles returns the paths changed on the current working branch.
func (gd *GitDiff) BranchFiles() ([]string, error) {
	return gd.changedFiles("HEAD")
}

// BranchFilesFromCommit returns the paths changed as of a specific commit.
func (gd *GitDiff) BranchFilesFromCommit(ref string) ([]string, error) {
	return gd.changedFiles(ref)
}

func (gd *GitDiff) changedFiles(head string) ([]string, error) {
	output, err := gd.executor.execute("git", "diff", "-U0", fmt.Sprintf("%s...%s", gd.base, head))
	if err != nil {
		return nil, fmt.Errorf("diff %s...%s: %w", gd.base, head, err)
	}
	fileDiffs, err := diff.ParseMultiFileDiff(output)
	if err != nil {
		return nil, err
	}

	files := f.Filtered(f.Map(fileDiffs, diffFileName), func(name string) bool {
		return name != "" && !gd.ignored(name)
	})
	return slices.Compact(files), nil
}

func (gd *GitDiff) ignored(name string) bool {
	for _, dir := range gd.ignoreDirs {
		if strings.HasPrefix(name, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

// diffFileName extracts the post-change path, falling back to the pre-change
// path for deletions. Prefixes are the `a/` and `b/` of git's diff output.
func diffFileName(d *diff.FileDiff) string {
	if d.NewName != "" && d.NewName != "/dev/null" {
		return strings.TrimPrefix(d.NewName, "b/")
	}
	if d.OrigName != "" && d.OrigName != "/dev/null" {
		return strings.TrimPrefix(d.OrigName, "a/")
	}
	return ""
}
