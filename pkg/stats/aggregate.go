package stats

import (
	"time"

	"github.com/matzehuels/ghstats/pkg/errors"
)

const dateLayout = "2006-01-02"

// Aggregate builds the Stats record for login from the upstream payloads.
//
// Either the whole record is built or an error is returned: DATA_FETCH when
// the profile or contributions payload is absent, MALFORMED_DATA when the
// contribution calendar is missing or a day carries an unparseable date.
func Aggregate(login string, in Input, now time.Time) (Stats, error) {
	if in.Profile == nil {
		return Stats{}, errors.New(errors.ErrCodeDataFetch, "profile for %s was not fetched", login)
	}
	if in.Contributions == nil {
		return Stats{}, errors.New(errors.ErrCodeDataFetch, "contributions for %s were not fetched", login)
	}
	if in.Contributions.Calendar == nil {
		return Stats{}, errors.New(errors.ErrCodeMalformedData, "contributions for %s lack a calendar", login)
	}

	days, err := ParseDays(in.Contributions.Calendar)
	if err != nil {
		return Stats{}, err
	}

	if login == "" {
		login = in.Profile.Login
	}

	c := in.Contributions
	s := Stats{
		Username:           login,
		Followers:          in.Profile.Followers,
		Following:          in.Profile.Following,
		PublicRepos:        in.Profile.PublicRepos,
		TotalIssues:        c.TotalIssueContributions,
		TotalPRs:           c.TotalPullRequestContributions + c.TotalPullRequestReviewContributions,
		TotalCommits:       c.TotalCommitContributions,
		TotalContributions: c.Calendar.TotalContributions,
		Streak:             ComputeStreak(days, now),
		Days:               days,
		Languages:          RankLanguages(in.LanguageTags),
		FetchedAt:          now,
	}
	for _, r := range in.Repositories {
		s.TotalStars += r.Stars
		s.TotalForks += r.Forks
	}
	return s, nil
}

// ParseDays flattens the calendar weeks into days, preserving source order.
func ParseDays(cal *ContributionCalendar) ([]ContributionDay, error) {
	if cal == nil {
		return nil, nil
	}
	var days []ContributionDay
	for _, w := range cal.Weeks {
		for _, d := range w.ContributionDays {
			t, err := time.Parse(dateLayout, d.Date)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeMalformedData, err, "contribution day %q", d.Date)
			}
			days = append(days, ContributionDay{Date: t, Count: d.ContributionCount})
		}
	}
	return days, nil
}

// LanguageTags extracts the primary language of every repository, in order.
// Repositories without a language yield an empty tag.
func LanguageTags(repos []Repository) []string {
	tags := make([]string, len(repos))
	for i, r := range repos {
		tags[i] = r.Language
	}
	return tags
}
