package cli

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
)

func (r *renderer) repos(repos []domain.RepoSummary) {
	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, []string{
			repo.Owner.Login + "/" + repo.Name,
			r.swatch(repo.Color) + repo.Language,
			count(repo.Stars),
			count(repo.Forks),
			truncate(repo.Description, maxCellWidth),
		})
	}
	r.Table([]string{"REPOSITORY", "LANGUAGE", "STARS", "FORKS", "DESCRIPTION"}, rows, 2, 3)
}

func (r *renderer) trending(repos []domain.TrendingRepo) {
	rows := make([][]string, 0, len(repos))
	for _, repo := range repos {
		rows = append(rows, []string{
			repo.Owner.Login + "/" + repo.Name,
			r.swatch(repo.Color) + repo.Language,
			count(repo.Stars),
			"+" + count(repo.Increment),
			truncate(repo.Description, maxCellWidth),
		})
	}
	r.Table([]string{"REPOSITORY", "LANGUAGE", "STARS", "GAINED", "DESCRIPTION"}, rows, 2, 3)
}

func (r *renderer) users(users []domain.UserSummary) {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Login, u.Avatar})
	}
	r.Table([]string{"LOGIN", "AVATAR"}, rows)
}

func (r *renderer) user(u *domain.UserProfile) {
	title := u.Login
	if u.Name != "" {
		title = fmt.Sprintf("%s (%s)", u.Name, u.Login)
	}
	r.Fields(title, [][2]string{
		{"Type", u.Type},
		{"Company", u.Company},
		{"Blog", u.Blog},
		{"Email", u.Email},
		{"Bio", u.Bio},
		{"Repositories", count(u.PublicRepos)},
		{"Gists", count(u.PublicGists)},
		{"Followers", count(u.Followers)},
		{"Following", count(u.Following)},
		{"Joined", u.CreatedAt},
		{"Avatar", u.Avatar},
	})
}

func (r *renderer) repo(d *domain.RepoDetail) {
	title := d.FullName
	if title == "" {
		title = d.Name
	}
	r.Fields(title, [][2]string{
		{"Owner", d.Owner.Login},
		{"Description", d.Description},
		{"Language", d.Language},
		{"Stars", count(d.Stars)},
		{"Forks", count(d.Forks)},
		{"Open issues", count(d.OpenIssues)},
		{"Watchers", count(d.Subscribers)},
		{"Size", d.Size},
		{"Created", d.CreatedAt},
		{"Pushed", d.PushedAt},
	})
}

func (r *renderer) commits(commits []domain.CommitSummary) {
	rows := make([][]string, 0, len(commits))
	for _, c := range commits {
		rows = append(rows, []string{
			c.SHA,
			c.Author.Login,
			c.Commit.Date,
			strconv.Itoa(c.Commit.CommentCount),
			truncate(c.Commit.Message, maxCellWidth),
		})
	}
	r.Table([]string{"SHA", "AUTHOR", "DATE", "COMMENTS", "MESSAGE"}, rows, 3)
}

func (r *renderer) events(events []domain.ActivityEvent) {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.CreatedAt,
			e.Actor.Login,
			describePayload(e.Payload),
			e.Repo.Name,
		})
	}
	r.Table([]string{"WHEN", "ACTOR", "ACTIVITY", "REPOSITORY"}, rows)
}

// view renders any view produced by FeedService.Normalise.
func (r *renderer) view(v any) error {
	if r.json {
		return r.JSON(v)
	}
	switch v := v.(type) {
	case []domain.RepoSummary:
		r.repos(v)
	case []domain.TrendingRepo:
		r.trending(v)
	case []domain.UserSummary:
		r.users(v)
	case *domain.UserProfile:
		r.user(v)
	case *domain.RepoDetail:
		r.repo(v)
	case []domain.CommitSummary:
		r.commits(v)
	case []domain.ActivityEvent:
		r.events(v)
	default:
		return fmt.Errorf("%w: no renderer for %T", domain.ErrUnsupportedType, v)
	}
	return nil
}

// describePayload summarises an event payload in a few words.
func describePayload(p domain.EventPayload) string {
	switch p := p.(type) {
	case domain.PushPayload:
		noun := "commits"
		if len(p.Commits) == 1 {
			noun = "commit"
		}
		return fmt.Sprintf("pushed %d %s to %s", len(p.Commits), noun, p.Ref)
	case domain.WatchPayload:
		return "starred"
	case domain.CreatePayload:
		if p.Ref == nil {
			return "created " + p.RefType
		}
		return fmt.Sprintf("created %s %s", p.RefType, *p.Ref)
	case domain.PullRequestPayload:
		return p.Action + " a pull request"
	case domain.ForkPayload:
		return "forked to " + p.Forkee.FullName
	case domain.IssuesPayload:
		return fmt.Sprintf("%s issue #%d %s", p.Action, p.Issue.Number, truncate(p.Issue.Title, maxCellWidth/2))
	case domain.IssueCommentPayload:
		return fmt.Sprintf("commented on #%d", p.Issue.Number)
	case domain.CommitCommentPayload:
		return "commented on a commit"
	case domain.GollumPayload:
		return fmt.Sprintf("%s wiki page %s", p.Pages.Action, p.Pages.PageName)
	case domain.PublicPayload:
		return "made the repository public"
	case domain.MemberPayload:
		return fmt.Sprintf("%s member %s", p.Action, p.Member.Login)
	case domain.ReleasePayload:
		return fmt.Sprintf("%s release %s", p.Action, p.Release.TagName)
	case domain.DeletePayload:
		return fmt.Sprintf("deleted %s %s", p.RefType, p.Ref)
	default:
		return ""
	}
}
