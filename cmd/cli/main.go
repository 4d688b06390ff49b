package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/reviewkit/codeowners-resolve/internal/app"
)

func main() {
	var repo string
	rootFlag := &cli.StringFlag{
		Name:        "root",
		Aliases:     []string{"r", "repo-dir"},
		Value:       "./",
		Usage:       "Path to local Git repo",
		Destination: &repo,
	}

	cliApp := &cli.App{
		Name:        "codeowners-resolve",
		Usage:       "Resolve reviewers for a change from a CODEOWNERS file",
		Description: "",
		Commands: []*cli.Command{
			{
				Name:        "owners",
				Aliases:     []string{"o"},
				Usage:       "Resolve the owners who should review the current change",
				UsageText:   "codeowners-resolve owners [options]",
				Description: "Resolve the ranked reviewer list for the files changed on the working branch, or for a specific commit.",
				Flags: []cli.Flag{
					rootFlag,
					&cli.StringFlag{
						Name:    "base",
						Aliases: []string{"b"},
						Value:   "",
						Usage:   "Base ref to diff against (defaults to ownership.toml base_ref)",
					},
					&cli.StringFlag{
						Name:    "commit",
						Aliases: []string{"c"},
						Value:   "",
						Usage:   "Resolve against a specific commit instead of the working branch",
					},
					&cli.StringFlag{
						Name:  "pr-repo",
						Value: "",
						Usage: "GitHub repo (owner/name) to enumerate changed files from",
					},
					&cli.IntFlag{
						Name:  "pr",
						Value: 0,
						Usage: "Pull Request number (with --pr-repo)",
					},
					&cli.StringFlag{
						Name:    "token",
						Usage:   "GitHub authentication token (with --pr-repo)",
						EnvVars: []string{"GITHUB_TOKEN"},
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "default",
						Usage:   "Output format.  Allowed values are: default, one-line, and json",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Value: false,
						Usage: "Verbose output",
					},
				},
				Action: func(cCtx *cli.Context) error {
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					return resolveOwners(app.Config{
						RepoDir:       repo,
						BaseRef:       cCtx.String("base"),
						CommitRef:     cCtx.String("commit"),
						Token:         cCtx.String("token"),
						Repo:          cCtx.String("pr-repo"),
						PR:            cCtx.Int("pr"),
						Verbose:       cCtx.Bool("verbose"),
						InfoBuffer:    os.Stderr,
						WarningBuffer: os.Stderr,
					}, format)
				},
			},
			{
				Name:        "unowned",
				Aliases:     []string{"u"},
				Usage:       "Check unowned files in the repository",
				UsageText:   "codeowners-resolve unowned [options] [target-dir]",
				Description: "Walk the working tree and list files no ownership rule matches. If target-dir is specified, only check files under that directory.",
				Flags:       []cli.Flag{rootFlag},
				Action: func(cCtx *cli.Context) error {
					target := ""
					if cCtx.NArg() > 0 {
						target = cCtx.Args().First()
					}
					return unownedFiles(repo, target)
				},
			},
			{
				Name:        "validate",
				Aliases:     []string{"v"},
				Usage:       "Validate the ownership file",
				UsageText:   "codeowners-resolve validate [options]",
				Description: "Parse the ownership file and report every line the parser had to discard.",
				Flags:       []cli.Flag{rootFlag},
				Action: func(cCtx *cli.Context) error {
					return validateOwnershipFile(repo)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func resolveOwners(cfg app.Config, format OutputFormat) error {
	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	output, err := application.Run()
	if err != nil {
		return err
	}
	fmt.Print(formatOutput(output, format))
	return nil
}
