package gh

import (
	"context"

	"github.com/google/go-github/v63/github"

	f "github.com/reviewkit/codeowners-resolve/pkg/functional"
)

// pullRequestFilesService is the slice of the GitHub API the client needs.
type pullRequestFilesService interface {
	ListFiles(ctx context.Context, owner string, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

// PRFiles enumerates a pull request's changed files through the GitHub API,
// for running the resolver without a local clone. It implements the
// engine's ChangedFiles contract; the PR's head already reflects any
// designated commit, so both enumerations read the same listing.
type PRFiles struct {
	ctx    context.Context
	owner  string
	repo   string
	number int
	prs    pullRequestFilesService
}

func NewPRFiles(owner, repo, token string, number int) *PRFiles {
	client := github.NewClient(nil).WithAuthToken(token)
	return &PRFiles{
		ctx:    context.Background(),
		owner:  owner,
		repo:   repo,
		number: number,
		prs:    client.PullRequests,
	}
}

func (p *PRFiles) BranchFiles() ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}
	files := make([]string, 0)
	for {
		commitFiles, resp, err := p.prs.ListFiles(p.ctx, p.owner, p.repo, p.number, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, f.Map(commitFiles, func(file *github.CommitFile) string {
			return file.GetFilename()
		})...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

func (p *PRFiles) BranchFilesFromCommit(ref string) ([]string, error) {
	return p.BranchFiles()
}
