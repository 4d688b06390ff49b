package codeowners

import (
	"io"

	f "github.com/reviewkit/codeowners-resolve/pkg/functional"
)

// DefaultFilePaths are the conventional ownership-file locations, tried in
// order; the first non-empty read wins.
var DefaultFilePaths = []string{
	"CODEOWNERS",
	".github/CODEOWNERS",
	".gitlab/CODEOWNERS",
	"docs/CODEOWNERS",
}

// FileReader locates ownership-file content in the repository.
type FileReader interface {
	// ReadLocalFile returns the content of the file at a repo-relative
	// path, and whether the file exists and is readable.
	ReadLocalFile(path string) (string, bool)
}

// ChangedFiles enumerates the file paths touched by a proposed change.
type ChangedFiles interface {
	BranchFiles() ([]string, error)
	BranchFilesFromCommit(ref string) ([]string, error)
}

// FileList is a fixed ChangedFiles, for callers that already hold the
// enumeration and must not pay for a second one.
type FileList []string

func (fl FileList) BranchFiles() ([]string, error) {
	return fl, nil
}

func (fl FileList) BranchFilesFromCommit(ref string) ([]string, error) {
	return fl, nil
}

// Change identifies the proposed change to resolve owners for. An empty
// CommitRef means the current working branch.
type Change struct {
	CommitRef string
}

// Resolver computes the ordered, deduplicated owner list for a change.
type Resolver interface {
	// CodeOwnersFor returns the owners who should review the change, most
	// relevant first. It never fails: any missing input, I/O failure, or
	// malformed syntax resolves to an empty, non-nil list.
	CodeOwnersFor(change Change) []string
}

// New creates a Resolver over the given collaborators. A nil parser selects
// the default (flat) dialect; platforms with the sectioned dialect supply
// SectionedParser. A nil warningWriter discards diagnostics. Extra paths, if
// given, replace DefaultFilePaths as the ownership-file search order.
func New(files FileReader, vcs ChangedFiles, parser Parser, warningWriter io.Writer, paths ...string) Resolver {
	if parser == nil {
		parser = DefaultParser{}
	}
	if warningWriter == nil {
		warningWriter = io.Discard
	}
	filePaths := DefaultFilePaths
	if len(paths) > 0 {
		filePaths = paths
	}
	return &resolver{
		files:         files,
		vcs:           vcs,
		parser:        parser,
		filePaths:     filePaths,
		warningWriter: warningWriter,
	}
}

type resolver struct {
	files         FileReader
	vcs           ChangedFiles
	parser        Parser
	filePaths     []string
	warningWriter io.Writer
}

func (r *resolver) CodeOwnersFor(change Change) (owners []string) {
	// Collaborators are injected; a panic in one must not escape.
	defer func() {
		if recover() != nil {
			owners = []string{}
		}
	}()

	content, found := r.readOwnershipFile()
	if !found {
		return []string{}
	}

	changedFiles, err := r.changedFiles(change)
	if err != nil || len(changedFiles) == 0 {
		return []string{}
	}

	doc := r.parser.Parse(content, r.warningWriter)
	return RankedOwners(doc, changedFiles)
}

// RankedOwners ranks each section in reverse declaration order and
// concatenates the results, deduping against owners already contributed by
// later-declared (higher-priority) sections.
func RankedOwners(doc Document, changedFiles []string) []string {
	owners := make([]string, 0)
	for i := len(doc) - 1; i >= 0; i-- {
		owners = append(owners, rankSection(changedFiles, &doc[i])...)
	}
	return f.RemoveDuplicates(owners)
}

func (r *resolver) readOwnershipFile() (string, bool) {
	for _, path := range r.filePaths {
		if content, ok := r.files.ReadLocalFile(path); ok && content != "" {
			return content, true
		}
	}
	return "", false
}

func (r *resolver) changedFiles(change Change) ([]string, error) {
	if change.CommitRef != "" {
		return r.vcs.BranchFilesFromCommit(change.CommitRef)
	}
	return r.vcs.BranchFiles()
}
