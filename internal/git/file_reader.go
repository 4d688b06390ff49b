package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalFileReader reads files from a checked-out working tree. It implements
// the engine's FileReader contract.
type LocalFileReader struct {
	dir string
}

func NewLocalFileReader(dir string) *LocalFileReader {
	return &LocalFileReader{dir: dir}
}

func (r *LocalFileReader) ReadLocalFile(path string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(r.dir, path))
	if err != nil {
		return "", false
	}
	return string(content), true
}

// RefFileReader reads files from a specific git ref via `git show`, for
// resolving ownership against a branch that is not checked out.
type RefFileReader struct {
	ref      string
	executor commandExecutor
}

func NewRefFileReader(ref string, dir string) *RefFileReader {
	return &RefFileReader{
		ref:      ref,
		executor: newRealExecutor(dir),
	}
}

func (r *RefFileReader) ReadLocalFile(path string) (string, bool) {
	path = strings.TrimPrefix(path, "/")
	output, err := r.executor.execute("git", "show", fmt.Sprintf("%s:%s", r.ref, path))
	if err != nil {
		return "", false
	}
	return string(output), true
}
