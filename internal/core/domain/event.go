package domain

// Activity event type tags as reported by the upstream events API.
const (
	EventPush          = "PushEvent"
	EventWatch         = "WatchEvent"
	EventCreate        = "CreateEvent"
	EventPullRequest   = "PullRequestEvent"
	EventFork          = "ForkEvent"
	EventIssues        = "IssuesEvent"
	EventIssueComment  = "IssueCommentEvent"
	EventCommitComment = "CommitCommentEvent"
	EventGollum        = "GollumEvent"
	EventPublic        = "PublicEvent"
	EventMember        = "MemberEvent"
	EventRelease       = "ReleaseEvent"
	EventDelete        = "DeleteEvent"
)

// ActivityEvent is the normalised envelope shared by every event kind.
type ActivityEvent struct {
	Type      string       `json:"type"`
	Actor     Account      `json:"actor"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
	CreatedAt string       `json:"created_at"`
}

// EventRepo identifies the repository an event happened in.
type EventRepo struct {
	Name string `json:"name"`
}

// EventPayload is the per-tag part of an ActivityEvent.
// Each implementation corresponds to exactly one event tag, except
// EmptyPayload which stands in for tags without a shaping rule.
type EventPayload interface {
	EventType() string
}

// PushPayload lists the commits of a push.
type PushPayload struct {
	Ref     string       `json:"ref"`
	Commits []PushCommit `json:"commits"`
}

// PushCommit is a single commit inside a push.
type PushCommit struct {
	Message string `json:"message"`
	SHA     string `json:"sha"`
}

// WatchPayload is emitted when a repository is starred.
type WatchPayload struct {
	Action string `json:"action"`
}

// CreatePayload describes a created repository, branch or tag.
// Ref is nil when a repository was created.
type CreatePayload struct {
	Ref     *string `json:"ref"`
	RefType string  `json:"ref_type"`
}

// PullRequestPayload carries the pull request action.
type PullRequestPayload struct {
	Action string `json:"action"`
}

// ForkPayload names the fork that was created.
type ForkPayload struct {
	Forkee ForkeeRef `json:"forkee"`
}

// ForkeeRef identifies a fork by full name.
type ForkeeRef struct {
	FullName string `json:"full_name"`
}

// IssuesPayload describes an issue state change.
type IssuesPayload struct {
	Action string   `json:"action"`
	Issue  IssueRef `json:"issue"`
}

// IssueRef identifies an issue.
type IssueRef struct {
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
}

// IssueCommentPayload describes a comment on an issue.
type IssueCommentPayload struct {
	Action  string      `json:"action"`
	Comment CommentBody `json:"comment"`
	Issue   IssueRef    `json:"issue"`
}

// CommentBody is the text of a comment.
type CommentBody struct {
	Body string `json:"body"`
}

// CommitCommentPayload describes a comment on a commit.
type CommitCommentPayload struct {
	Comment CommentBody `json:"comment"`
}

// GollumPayload describes a wiki change. Only the first page of a batch
// is represented.
type GollumPayload struct {
	Pages WikiPage `json:"pages"`
}

// WikiPage is a single changed wiki page.
type WikiPage struct {
	Action   string `json:"action"`
	PageName string `json:"page_name"`
}

// PublicPayload is emitted when a repository is made public. It has no fields.
type PublicPayload struct{}

// MemberPayload describes a collaborator change.
type MemberPayload struct {
	Action string     `json:"action"`
	Member OwnerLogin `json:"member"`
}

// ReleasePayload describes a published release.
type ReleasePayload struct {
	Action  string     `json:"action"`
	Release ReleaseRef `json:"release"`
}

// ReleaseRef identifies a release by tag.
type ReleaseRef struct {
	TagName string `json:"tag_name"`
}

// DeletePayload describes a deleted branch or tag.
type DeletePayload struct {
	RefType string `json:"ref_type"`
	Ref     string `json:"ref"`
}

// EmptyPayload is used for event tags without a shaping rule.
type EmptyPayload struct{}

func (PushPayload) EventType() string          { return EventPush }
func (WatchPayload) EventType() string         { return EventWatch }
func (CreatePayload) EventType() string        { return EventCreate }
func (PullRequestPayload) EventType() string   { return EventPullRequest }
func (ForkPayload) EventType() string          { return EventFork }
func (IssuesPayload) EventType() string        { return EventIssues }
func (IssueCommentPayload) EventType() string  { return EventIssueComment }
func (CommitCommentPayload) EventType() string { return EventCommitComment }
func (GollumPayload) EventType() string        { return EventGollum }
func (PublicPayload) EventType() string        { return EventPublic }
func (MemberPayload) EventType() string        { return EventMember }
func (ReleasePayload) EventType() string       { return EventRelease }
func (DeletePayload) EventType() string        { return EventDelete }

// EventType returns the empty string; the payload belongs to no known tag.
func (EmptyPayload) EventType() string { return "" }
