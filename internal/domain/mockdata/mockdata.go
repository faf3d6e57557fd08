// Package mockdata provides the deterministic data shown when the backend
// is unavailable.
package mockdata

import (
	"net/url"
	"strings"
	"unicode/utf16"

	"github.com/okian/fairfound/internal/domain/compare"
	"github.com/okian/fairfound/internal/domain/types"
)

// Default display names used when a profile URL has no path segments.
const (
	DefaultName1 = "Freelancer 1"
	DefaultName2 = "Freelancer 2"
)

// Categories returns the fixed category list.
func Categories() []string {
	return []string{
		"Full Stack Developer",
		"Frontend Developer",
		"Backend Developer",
		"Mobile Developer",
		"UI/UX Designer",
		"Data Scientist",
		"DevOps Engineer",
	}
}

// Marketplace returns the fixed marketplace ranking.
func Marketplace() []types.Entry {
	return []types.Entry{
		{Name: "Sarah Johnson", Specialty: "Full Stack Developer", Score: 98},
		{Name: "Michael Chen", Specialty: "UI/UX Designer", Score: 95},
		{Name: "Emily Davis", Specialty: "Data Scientist", Score: 92},
		{Name: "James Wilson", Specialty: "Mobile Developer", Score: 89},
		{Name: "Lisa Anderson", Specialty: "DevOps Engineer", Score: 87},
		{Name: "David Brown", Specialty: "Backend Developer", Score: 85},
		{Name: "Anna Martinez", Specialty: "Frontend Developer", Score: 83},
		{Name: "Robert Taylor", Specialty: "Cloud Architect", Score: 81},
	}
}

// FairFound returns the fixed FairFound ranking.
func FairFound() []types.Entry {
	return []types.Entry{
		{Name: "Michael Chen", Specialty: "UI/UX Designer", Score: 96},
		{Name: "Emily Davis", Specialty: "Data Scientist", Score: 94},
		{Name: "Sarah Johnson", Specialty: "Full Stack Developer", Score: 91},
		{Name: "Lisa Anderson", Specialty: "DevOps Engineer", Score: 88},
		{Name: "Anna Martinez", Specialty: "Frontend Developer", Score: 86},
		{Name: "James Wilson", Specialty: "Mobile Developer", Score: 84},
		{Name: "Robert Taylor", Specialty: "Cloud Architect", Score: 82},
		{Name: "David Brown", Specialty: "Backend Developer", Score: 79},
	}
}

// Leaderboards returns both mock rankings marked as fallback data.
// The mock lists ignore the category filter.
func Leaderboards(category string) types.Leaderboards {
	return types.Leaderboards{
		Category:    category,
		Marketplace: Marketplace(),
		FairFound:   FairFound(),
		Fallback:    true,
	}
}

// ExtractUsername returns the last non-empty path segment of rawURL.
// It reports false when the URL does not parse or has no path segments.
func ExtractUsername(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	parts := strings.Split(u.EscapedPath(), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i], true
		}
	}
	return "", false
}

// Length returns the length of s in UTF-16 code units, the unit the
// metric formulas are defined over.
func Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// Comparison synthesizes a comparison from the two profile URLs. The result
// depends only on the URLs, so repeated calls yield identical values.
func Comparison(url1, url2 string) types.Comparison {
	name1, ok := ExtractUsername(url1)
	if !ok {
		name1 = DefaultName1
	}
	name2, ok := ExtractUsername(url2)
	if !ok {
		name2 = DefaultName2
	}

	n1, n2 := Length(url1), Length(url2)
	score1 := float64(70 + n1%30)
	score2 := float64(70 + n2%30)

	return types.Comparison{
		Freelancer1: types.Freelancer{Name: name1, URL: url1},
		Freelancer2: types.Freelancer{Name: name2, URL: url2},
		Metrics: []types.Metric{
			{Label: "Rating", Value1: 4.5 + float64(n1%5)/10, Value2: 4.5 + float64(n2%5)/10},
			{Label: "Jobs Done", Value1: float64(50 + n1*3), Value2: float64(50 + n2*3)},
			{Label: "On-Time", Value1: float64(80 + n1%20), Value2: float64(80 + n2%20), Suffix: "%"},
			{Label: "Response", Value1: float64(1 + n1%10), Value2: float64(1 + n2%10), Suffix: "h"},
			{Label: "Rehire Rate", Value1: float64(60 + n1%35), Value2: float64(60 + n2%35), Suffix: "%"},
			{Label: "FairFound Score", Value1: score1, Value2: score2},
		},
		Winner:   compare.Winner(name1, name2, score1, score2),
		Fallback: true,
	}
}
