package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/boyter/gocodewalker"

	owners "github.com/reviewkit/codeowners-resolve/internal/config"
	"github.com/reviewkit/codeowners-resolve/internal/git"
	"github.com/reviewkit/codeowners-resolve/pkg/codeowners"
)

func stripRoot(root string, path string) string {
	if root == "." {
		return path
	}
	return strings.TrimPrefix(path, root+"/")
}

// loadDocument reads and parses the repo's ownership file using the
// configured dialect and search paths.
func loadDocument(repo string, warningWriter io.Writer) (codeowners.Document, error) {
	conf, err := owners.ReadConfig(repo)
	if err != nil {
		_, _ = fmt.Fprintf(warningWriter, "WARNING: Error reading ownership.toml - using default config\n")
	}
	paths := codeowners.DefaultFilePaths
	if len(conf.Paths) > 0 {
		paths = conf.Paths
	}

	reader := git.NewLocalFileReader(repo)
	for _, path := range paths {
		content, ok := reader.ReadLocalFile(path)
		if !ok || content == "" {
			continue
		}
		var parser codeowners.Parser = codeowners.DefaultParser{}
		if conf.Sectioned() {
			parser = codeowners.SectionedParser{}
		}
		return parser.Parse(content, warningWriter), nil
	}
	return nil, fmt.Errorf("no ownership file found in %s", repo)
}

func unownedFiles(repo string, target string) error {
	if repoStat, err := os.Lstat(repo); err != nil || !repoStat.IsDir() {
		return fmt.Errorf("root is not a directory: %s", repo)
	}
	if gitStat, err := os.Stat(filepath.Join(repo, ".git")); err != nil || !gitStat.IsDir() {
		return fmt.Errorf("root is not a Git repository: %s", repo)
	}

	doc, err := loadDocument(repo, os.Stderr)
	if err != nil {
		return err
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(repo, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error)

	go func() {
		err := walker.Start()
		errChan <- err
		close(errChan)
	}()

	unowned := make([]string, 0)
	for f := range fileListQueue {
		file := stripRoot(repo, f.Location)
		if target != "" && !strings.HasPrefix(file, target) {
			continue
		}
		if len(codeowners.RankedOwners(doc, []string{file})) == 0 {
			unowned = append(unowned, file)
		}
	}

	if err := <-errChan; err != nil {
		return fmt.Errorf("error walking repo: %s", err)
	}

	slices.Sort(unowned)
	fmt.Println(strings.Join(unowned, "\n"))
	return nil
}
