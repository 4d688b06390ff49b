package app

import (
	"fmt"
	"io"
	"strings"

	owners "github.com/reviewkit/codeowners-resolve/internal/config"
	"github.com/reviewkit/codeowners-resolve/internal/git"
	gh "github.com/reviewkit/codeowners-resolve/internal/github"
	"github.com/reviewkit/codeowners-resolve/pkg/codeowners"
)

// OutputData is the JSON record the CLI emits for a resolution.
type OutputData struct {
	Owners       []string `json:"owners"`
	ChangedFiles []string `json:"changed_files"`
	Dialect      string   `json:"dialect"`
}

// Config holds the application configuration.
type Config struct {
	RepoDir   string
	BaseRef   string // overrides ownership.toml base_ref when set
	CommitRef string // resolve against a specific commit instead of the branch
	Token     string // with Repo and PR, enumerate changed files via the GitHub API
	Repo      string // owner/name
	PR        int
	Verbose   bool

	InfoBuffer    io.Writer
	WarningBuffer io.Writer
}

// App wires the collaborators and the resolution engine.
type App struct {
	Conf   *owners.Config
	config *Config
	vcs    codeowners.ChangedFiles
	reader codeowners.FileReader
}

// New creates a new App instance with the given configuration.
func New(cfg Config) (*App, error) {
	if cfg.Repo != "" && len(strings.Split(cfg.Repo, "/")) != 2 {
		return nil, fmt.Errorf("invalid repo name: %s", cfg.Repo)
	}
	if cfg.InfoBuffer == nil {
		cfg.InfoBuffer = io.Discard
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	return &App{config: &cfg}, nil
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		_, _ = fmt.Fprintf(a.config.InfoBuffer, format, args...)
	}
}

func (a *App) printWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.WarningBuffer, format, args...)
}

// Run resolves the owners for the configured change.
func (a *App) Run() (*OutputData, error) {
	conf, err := owners.ReadConfig(a.config.RepoDir)
	if err != nil {
		a.printWarn("Error reading ownership.toml - using default config\n")
	}
	a.Conf = conf

	baseRef := conf.BaseRef
	if a.config.BaseRef != "" {
		baseRef = a.config.BaseRef
	}

	changedFiles, err := a.changedFiles(baseRef)
	if err != nil {
		return nil, err
	}

	// Enumerate once; the resolver and the output record share the result.
	files, err := a.enumerate(changedFiles)
	if err != nil {
		a.printWarn("Error enumerating changed files: %v\n", err)
		files = []string{}
	}

	dialect := "default"
	var parser codeowners.Parser
	if conf.Sectioned() {
		dialect = owners.DialectSectioned
		parser = codeowners.SectionedParser{}
	}

	resolver := codeowners.New(a.ownershipReader(), codeowners.FileList(files), parser, a.config.WarningBuffer, conf.Paths...)

	a.printDebug("Resolving owners against %s (%s dialect)\n", baseRef, dialect)
	resolved := resolver.CodeOwnersFor(codeowners.Change{})

	return &OutputData{
		Owners:       resolved,
		ChangedFiles: files,
		Dialect:      dialect,
	}, nil
}

func (a *App) enumerate(source codeowners.ChangedFiles) ([]string, error) {
	if a.config.CommitRef != "" {
		return source.BranchFilesFromCommit(a.config.CommitRef)
	}
	return source.BranchFiles()
}

// ownershipReader picks where the ownership file is read from: the
// designated commit when one is set, otherwise the working tree.
func (a *App) ownershipReader() codeowners.FileReader {
	if a.reader != nil {
		return a.reader
	}
	if a.config.CommitRef != "" {
		return git.NewRefFileReader(a.config.CommitRef, a.config.RepoDir)
	}
	return git.NewLocalFileReader(a.config.RepoDir)
}

func (a *App) changedFiles(baseRef string) (codeowners.ChangedFiles, error) {
	if a.vcs != nil {
		return a.vcs, nil
	}
	if a.config.Repo != "" && a.config.PR != 0 {
		repoSplit := strings.Split(a.config.Repo, "/")
		a.printDebug("Enumerating changed files from PR %s#%d\n", a.config.Repo, a.config.PR)
		return gh.NewPRFiles(repoSplit[0], repoSplit[1], a.config.Token, a.config.PR), nil
	}
	if a.config.RepoDir == "" {
		return nil, fmt.Errorf("no repo dir and no PR to enumerate changed files from")
	}
	return git.NewDiff(baseRef, a.config.RepoDir, a.Conf.Ignore), nil
}
