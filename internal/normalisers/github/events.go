package github

import (
	"encoding/json"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/hubfeed/internal/core/domain"
	"github.com/custodia-labs/hubfeed/internal/normalisers/format"
)

// payloadShaper turns the raw payload of one event type into its view.
type payloadShaper func(raw json.RawMessage) (domain.EventPayload, error)

// payloadShapers is the dispatch table keyed by event type tag.
// Tags missing from the table normalise to domain.EmptyPayload.
var payloadShapers = map[string]payloadShaper{
	domain.EventPush:          shapePush,
	domain.EventWatch:         shapeWatch,
	domain.EventCreate:        shapeCreate,
	domain.EventPullRequest:   shapePullRequest,
	domain.EventFork:          shapeFork,
	domain.EventIssues:        shapeIssues,
	domain.EventIssueComment:  shapeIssueComment,
	domain.EventCommitComment: shapeCommitComment,
	domain.EventGollum:        shapeGollum,
	domain.EventPublic:        shapePublic,
	domain.EventMember:        shapeMember,
	domain.EventRelease:       shapeRelease,
	domain.EventDelete:        shapeDelete,
}

// SupportedEventTypes returns the tags that have a shaping rule.
func SupportedEventTypes() []string {
	types := make([]string, 0, len(payloadShapers))
	for t := range payloadShapers {
		types = append(types, t)
	}
	return types
}

// Events decodes and normalises an event list.
func (n *Normaliser) Events(raw *domain.RawResource) ([]domain.ActivityEvent, error) {
	events, err := decodeList[*gh.Event](raw)
	if err != nil {
		return nil, err
	}
	return n.NormaliseEvents(events)
}

// NormaliseEvents maps events to their normalised form, one per input and
// in input order. It fails only when a known payload cannot be decoded.
func (n *Normaliser) NormaliseEvents(events []*gh.Event) ([]domain.ActivityEvent, error) {
	out := make([]domain.ActivityEvent, len(events))
	for i, e := range events {
		normalised, err := n.NormaliseEvent(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out[i] = normalised
	}
	return out, nil
}

// NormaliseEvent wraps the shaped payload of e with its envelope fields.
func (n *Normaliser) NormaliseEvent(e *gh.Event) (domain.ActivityEvent, error) {
	var raw json.RawMessage
	if e != nil && e.RawPayload != nil {
		raw = *e.RawPayload
	}

	payload, err := ShapePayload(e.GetType(), raw)
	if err != nil {
		return domain.ActivityEvent{}, err
	}

	return domain.ActivityEvent{
		Type:      e.GetType(),
		Actor:     account(e.GetActor()),
		Repo:      domain.EventRepo{Name: e.GetRepo().GetName()},
		Payload:   payload,
		CreatedAt: n.times.Format(e.GetCreatedAt().Time),
	}, nil
}

// ShapePayload selects the shaping rule for eventType and applies it to
// raw. Unknown types yield an empty payload and no error.
func ShapePayload(eventType string, raw json.RawMessage) (domain.EventPayload, error) {
	shape, ok := payloadShapers[eventType]
	if !ok {
		return domain.EmptyPayload{}, nil
	}
	payload, err := shape(raw)
	if err != nil {
		return nil, fmt.Errorf("shape %s payload: %w", eventType, err)
	}
	return payload, nil
}

// decodePayload decodes raw into a fresh T. An empty payload decodes to
// the zero value.
func decodePayload[T any](raw json.RawMessage) (*T, error) {
	p := new(T)
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func shapePush(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.PushEvent](raw)
	if err != nil {
		return nil, err
	}
	commits := make([]domain.PushCommit, len(p.Commits))
	for i, c := range p.Commits {
		commits[i] = domain.PushCommit{
			Message: c.GetMessage(),
			SHA:     shortSHA(c.GetSHA()),
		}
	}
	return domain.PushPayload{
		Ref:     lastSegment(p.GetRef()),
		Commits: commits,
	}, nil
}

func shapeWatch(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.WatchEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.WatchPayload{Action: format.TitleCase(p.GetAction())}, nil
}

func shapeCreate(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.CreateEvent](raw)
	if err != nil {
		return nil, err
	}
	var ref *string
	if p.Ref != nil {
		v := *p.Ref
		ref = &v
	}
	return domain.CreatePayload{Ref: ref, RefType: p.GetRefType()}, nil
}

func shapePullRequest(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.PullRequestEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.PullRequestPayload{Action: format.TitleCase(p.GetAction())}, nil
}

func shapeFork(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.ForkEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.ForkPayload{
		Forkee: domain.ForkeeRef{FullName: p.GetForkee().GetFullName()},
	}, nil
}

func shapeIssues(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.IssuesEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.IssuesPayload{
		Action: format.TitleCase(p.GetAction()),
		Issue: domain.IssueRef{
			Number: p.GetIssue().GetNumber(),
			Title:  p.GetIssue().GetTitle(),
		},
	}, nil
}

func shapeIssueComment(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.IssueCommentEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.IssueCommentPayload{
		Action:  format.TitleCase(p.GetAction()),
		Comment: domain.CommentBody{Body: p.GetComment().GetBody()},
		Issue:   domain.IssueRef{Number: p.GetIssue().GetNumber()},
	}, nil
}

func shapeCommitComment(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.CommitCommentEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.CommitCommentPayload{
		Comment: domain.CommentBody{Body: p.GetComment().GetBody()},
	}, nil
}

// shapeGollum reports the first page of a wiki batch only.
func shapeGollum(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.GollumEvent](raw)
	if err != nil {
		return nil, err
	}
	if len(p.Pages) == 0 {
		return nil, fmt.Errorf("%w: wiki event without pages", domain.ErrInvalidInput)
	}
	first := p.Pages[0]
	return domain.GollumPayload{
		Pages: domain.WikiPage{
			Action:   format.TitleCase(first.GetAction()),
			PageName: first.GetPageName(),
		},
	}, nil
}

func shapePublic(json.RawMessage) (domain.EventPayload, error) {
	return domain.PublicPayload{}, nil
}

func shapeMember(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.MemberEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.MemberPayload{
		Action: format.TitleCase(p.GetAction()),
		Member: domain.OwnerLogin{Login: p.GetMember().GetLogin()},
	}, nil
}

func shapeRelease(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.ReleaseEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.ReleasePayload{
		Action:  format.TitleCase(p.GetAction()),
		Release: domain.ReleaseRef{TagName: p.GetRelease().GetTagName()},
	}, nil
}

func shapeDelete(raw json.RawMessage) (domain.EventPayload, error) {
	p, err := decodePayload[gh.DeleteEvent](raw)
	if err != nil {
		return nil, err
	}
	return domain.DeletePayload{
		RefType: p.GetRefType(),
		Ref:     p.GetRef(),
	}, nil
}
