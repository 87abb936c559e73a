package github

import (
	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

// Commits decodes and projects a commit list.
func (n *Normaliser) Commits(raw *domain.RawResource) ([]domain.CommitSummary, error) {
	commits, err := decodeList[*gh.RepositoryCommit](raw)
	if err != nil {
		return nil, err
	}
	return n.ProjectCommits(commits), nil
}

// ProjectCommits maps commits to list rows, one row per input.
func (n *Normaliser) ProjectCommits(commits []*gh.RepositoryCommit) []domain.CommitSummary {
	out := make([]domain.CommitSummary, len(commits))
	for i, c := range commits {
		git := c.GetCommit()
		out[i] = domain.CommitSummary{
			SHA:    shortSHA(c.GetSHA()),
			Author: n.resolveCommitAuthor(c),
			Commit: domain.CommitInfo{
				Message:      git.GetMessage(),
				CommentCount: git.GetCommentCount(),
				Date:         n.times.Format(git.GetCommitter().GetDate().Time),
			},
		}
	}
	return out
}

// resolveCommitAuthor returns the linked account of a commit. Commits whose
// author email matches no account fall back to the git author name and the
// default avatar.
func (n *Normaliser) resolveCommitAuthor(c *gh.RepositoryCommit) domain.Account {
	if linked := c.GetAuthor(); linked != nil {
		return account(linked)
	}
	return domain.Account{
		Login:  c.GetCommit().GetAuthor().GetName(),
		Avatar: n.defaultAvatar,
	}
}
