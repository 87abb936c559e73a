package domain

// Account is the {login, avatar} pair shown wherever a user is referenced.
type Account struct {
	Login  string `json:"login"`
	Avatar string `json:"avatar_url"`
}

// OwnerLogin is an owner reference that carries no avatar.
type OwnerLogin struct {
	Login string `json:"login"`
}

// RepoSummary is one row of a repository list.
type RepoSummary struct {
	Owner       Account `json:"owner"`
	Name        string  `json:"name"`
	Language    string  `json:"language"`
	Description string  `json:"description"`
	Stars       int     `json:"stargazers_count"`
	Forks       int     `json:"forks_count"`
	Color       string  `json:"color,omitempty"`
}

// UserSummary is one row of a user list. Fork owners use the same shape.
type UserSummary struct {
	Avatar string `json:"avatar_url"`
	Login  string `json:"login"`
}

// UserProfile is the full profile view of a single user.
type UserProfile struct {
	Login       string `json:"login"`
	Avatar      string `json:"avatar_url"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	PublicGists int    `json:"public_gists"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	CreatedAt   string `json:"created_at"`
}

// RepoDetail is the full view of a single repository.
type RepoDetail struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Owner       Account `json:"owner"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	PushedAt    string  `json:"pushed_at"`
	Size        string  `json:"size"`
	Stars       int     `json:"stargazers_count"`
	Forks       int     `json:"forks_count"`
	OpenIssues  int     `json:"open_issues_count"`
	Subscribers int     `json:"subscribers_count"`
	Language    string  `json:"language"`
}

// TrendingRepo is one row of the trending list.
type TrendingRepo struct {
	Owner       OwnerLogin `json:"owner"`
	Name        string     `json:"name"`
	Language    string     `json:"language"`
	Description string     `json:"description"`
	Stars       int        `json:"stargazers_count"`
	Forks       int        `json:"forks_count"`
	Increment   int        `json:"increment"`
	Color       string     `json:"color,omitempty"`
}

// CommitSummary is one row of a commit list.
type CommitSummary struct {
	SHA    string     `json:"sha"`
	Author Account    `json:"author"`
	Commit CommitInfo `json:"commit"`
}

// CommitInfo holds the git-level fields of a commit row.
type CommitInfo struct {
	Message      string `json:"message"`
	CommentCount int    `json:"comment_count"`
	Date         string `json:"date"`
}

// Listing is one page of projected views.
type Listing[T any] struct {
	// Items are the views in upstream order.
	Items []T `json:"items"`

	// NextPage is the next page number, or 0 when this was the last page.
	NextPage int `json:"next_page,omitempty"`
}
