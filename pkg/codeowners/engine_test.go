package codeowners

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type fakeFileReader struct {
	files map[string]string
}

func (f *fakeFileReader) ReadLocalFile(path string) (string, bool) {
	content, ok := f.files[path]
	return content, ok
}

type fakeChangedFiles struct {
	branch     []string
	commits    map[string][]string
	err        error
	branchHits int
}

func (f *fakeChangedFiles) BranchFiles() ([]string, error) {
	f.branchHits++
	return f.branch, f.err
}

func (f *fakeChangedFiles) BranchFilesFromCommit(ref string) ([]string, error) {
	return f.commits[ref], f.err
}

func newResolver(content string, files []string, parser Parser) Resolver {
	return New(
		&fakeFileReader{files: map[string]string{"CODEOWNERS": content}},
		&fakeChangedFiles{branch: files},
		parser,
		io.Discard,
	)
}

func TestCodeOwnersFor(t *testing.T) {
	tt := []struct {
		name     string
		content  string
		files    []string
		expected []string
	}{
		{
			"global rule only",
			"* @jimmy",
			[]string{"README.md"},
			[]string{"@jimmy"},
		},
		{
			"orphan suppresses global",
			"* @jimmy\nyarn.lock",
			[]string{"yarn.lock"},
			[]string{},
		},
		{
			"specific before fallback",
			"* @jimmy\npackage.json @john @maria",
			[]string{"package.json"},
			[]string{"@john", "@maria", "@jimmy"},
		},
		{
			"frequency ranking",
			"* @john\npackages/d/ @maria @jimmy\npackages/e/ @jimmy\nyarn.lock",
			[]string{"packages/d/x", "packages/e/y", "yarn.lock"},
			[]string{"@jimmy", "@maria", "@john"},
		},
		{
			"no match means empty",
			"docs/ @docs",
			[]string{"src/main.go"},
			[]string{},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := newResolver(tc.content, tc.files, nil).CodeOwnersFor(Change{})
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCodeOwnersForSectioned(t *testing.T) {
	content := strings.Join([]string{
		"* @general-approvers",
		"[Documentation] @docs-team",
		"*.txt",
	}, "\n")

	got := newResolver(content, []string{"main.go"}, SectionedParser{}).CodeOwnersFor(Change{})

	// The Documentation section matches nothing; only the implicit
	// section's fallback applies.
	expected := []string{"@general-approvers"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestCodeOwnersForSectionPriority(t *testing.T) {
	content := strings.Join([]string{
		"* @base",
		"[Documentation] @docs-team",
		"docs/",
		"[Database] @db-team",
		"db/",
	}, "\n")

	got := newResolver(content, []string{"docs/guide.md", "db/schema.sql"}, SectionedParser{}).CodeOwnersFor(Change{})

	// Sections rank in reverse declaration order, implicit section last.
	expected := []string{"@db-team", "@docs-team", "@base"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestCodeOwnersForIdempotent(t *testing.T) {
	resolver := newResolver("* @john\ndocs/ @docs @john", []string{"docs/a.md", "README.md"}, nil)

	first := resolver.CodeOwnersFor(Change{})
	second := resolver.CodeOwnersFor(Change{})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v then %v", first, second)
	}
}

func TestCodeOwnersForCommitRef(t *testing.T) {
	vcs := &fakeChangedFiles{
		branch:  []string{"README.md"},
		commits: map[string][]string{"abc123": {"package.json"}},
	}
	files := &fakeFileReader{files: map[string]string{
		"CODEOWNERS": "* @jimmy\npackage.json @john",
	}}
	resolver := New(files, vcs, nil, io.Discard)

	got := resolver.CodeOwnersFor(Change{CommitRef: "abc123"})
	expected := []string{"@john", "@jimmy"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if vcs.branchHits != 0 {
		t.Errorf("Expected no branch enumeration when a commit is designated")
	}
}

func TestCodeOwnersForFilePathOrder(t *testing.T) {
	files := &fakeFileReader{files: map[string]string{
		".github/CODEOWNERS": "* @github-side",
		".gitlab/CODEOWNERS": "* @gitlab-side",
	}}
	resolver := New(files, &fakeChangedFiles{branch: []string{"a.go"}}, nil, io.Discard)

	got := resolver.CodeOwnersFor(Change{})
	expected := []string{"@github-side"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected first conventional path to win, got %v", got)
	}
}

func TestCodeOwnersForAbsorbsFailures(t *testing.T) {
	tt := []struct {
		name  string
		files FileReader
		vcs   ChangedFiles
	}{
		{
			"missing ownership file",
			&fakeFileReader{},
			&fakeChangedFiles{branch: []string{"a.go"}},
		},
		{
			"empty ownership file",
			&fakeFileReader{files: map[string]string{"CODEOWNERS": ""}},
			&fakeChangedFiles{branch: []string{"a.go"}},
		},
		{
			"no changed files",
			&fakeFileReader{files: map[string]string{"CODEOWNERS": "* @jimmy"}},
			&fakeChangedFiles{},
		},
		{
			"enumeration failure",
			&fakeFileReader{files: map[string]string{"CODEOWNERS": "* @jimmy"}},
			&fakeChangedFiles{err: errors.New("git unavailable")},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.files, tc.vcs, nil, io.Discard).CodeOwnersFor(Change{})
			if got == nil {
				t.Fatalf("Expected a non-nil result")
			}
			if len(got) != 0 {
				t.Errorf("Expected an empty result, got %v", got)
			}
		})
	}
}

type panickingChangedFiles struct{}

func (panickingChangedFiles) BranchFiles() ([]string, error) { panic("collaborator bug") }
func (panickingChangedFiles) BranchFilesFromCommit(string) ([]string, error) {
	panic("collaborator bug")
}

func TestFileList(t *testing.T) {
	files := &fakeFileReader{files: map[string]string{"CODEOWNERS": "* @jimmy\npackage.json @john"}}
	resolver := New(files, FileList{"package.json"}, nil, io.Discard)

	expected := []string{"@john", "@jimmy"}
	for _, change := range []Change{{}, {CommitRef: "abc123"}} {
		got := resolver.CodeOwnersFor(change)
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("Expected %v for %+v, got %v", expected, change, got)
		}
	}
}

func TestCodeOwnersForAbsorbsPanics(t *testing.T) {
	files := &fakeFileReader{files: map[string]string{"CODEOWNERS": "* @jimmy"}}
	got := New(files, panickingChangedFiles{}, nil, io.Discard).CodeOwnersFor(Change{})
	if got == nil || len(got) != 0 {
		t.Errorf("Expected an empty result from a panicking collaborator, got %v", got)
	}
}
