package stats

import "time"

// Profile is the subset of GET /users/{login} the aggregate needs.
type Profile struct {
	Login       string `json:"login"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
}

// Repository is one entry of GET /users/{login}/repos.
type Repository struct {
	Name     string `json:"name"`
	Stars    int    `json:"stargazers_count"`
	Forks    int    `json:"forks_count"`
	Language string `json:"language"`
}

// RawContributionDay is one calendar day as returned by the GraphQL API.
type RawContributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

// ContributionWeek groups the days of one calendar week.
type ContributionWeek struct {
	ContributionDays []RawContributionDay `json:"contributionDays"`
}

// ContributionCalendar is the contribution calendar of the past year.
type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// ContributionsCollection holds the pre-aggregated contribution counters.
// Calendar is nil when the payload lacked it.
type ContributionsCollection struct {
	TotalCommitContributions            int                   `json:"totalCommitContributions"`
	TotalIssueContributions             int                   `json:"totalIssueContributions"`
	TotalPullRequestContributions       int                   `json:"totalPullRequestContributions"`
	TotalPullRequestReviewContributions int                   `json:"totalPullRequestReviewContributions"`
	Calendar                            *ContributionCalendar `json:"contributionCalendar"`
}

// Input bundles the four upstream payloads. Nil Profile or Contributions
// means that payload never arrived.
type Input struct {
	Profile       *Profile
	Repositories  []Repository
	Contributions *ContributionsCollection
	LanguageTags  []string
}

// ContributionDay is a parsed calendar day. Date is a UTC midnight.
type ContributionDay struct {
	Date  time.Time `json:"date" yaml:"date"`
	Count int       `json:"count" yaml:"count"`
}

// StreakSummary holds the current and the longest run of active days.
// Current never exceeds Max.
type StreakSummary struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
}

// LanguageShare is one ranked language. Percentage carries exactly one
// fractional digit and is relative to the retained languages only.
type LanguageShare struct {
	Name       string `json:"name" yaml:"name"`
	Percentage string `json:"percentage" yaml:"percentage"`
	Count      int    `json:"count" yaml:"count"`
}

// Stats is the aggregate handed to the renderer.
type Stats struct {
	Username           string            `json:"username" yaml:"username"`
	Followers          int               `json:"followers" yaml:"followers"`
	Following          int               `json:"following" yaml:"following"`
	PublicRepos        int               `json:"public_repos" yaml:"public_repos"`
	TotalStars         int               `json:"total_stars" yaml:"total_stars"`
	TotalForks         int               `json:"total_forks" yaml:"total_forks"`
	TotalIssues        int               `json:"total_issues" yaml:"total_issues"`
	TotalPRs           int               `json:"total_prs" yaml:"total_prs"`
	TotalCommits       int               `json:"total_commits" yaml:"total_commits"`
	TotalContributions int               `json:"total_contributions" yaml:"total_contributions"`
	Streak             StreakSummary     `json:"streak" yaml:"streak"`
	Days               []ContributionDay `json:"days" yaml:"days"`
	Languages          []LanguageShare   `json:"languages" yaml:"languages"`
	FetchedAt          time.Time         `json:"fetched_at" yaml:"fetched_at"`
}

// RecentDays returns the n most recent days in chronological order.
// Days itself is left in source order.
func (s Stats) RecentDays(n int) []ContributionDay {
	sorted := sortedDesc(s.Days)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}
