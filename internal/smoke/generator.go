package smoke

import (
	"github.com/google/uuid"
)

// profileHosts rotates the hosts used for generated profile URLs.
var profileHosts = []string{
	"https://www.upwork.com/freelancers/",
	"https://www.fiverr.com/",
	"https://fairfound.io/u/",
}

// generatePairs creates n pairs of distinct profile URLs.
func generatePairs(n int) []Pair {
	pairs := make([]Pair, n)
	for i := range pairs {
		host := profileHosts[i%len(profileHosts)]
		pairs[i] = Pair{
			URL1: host + uuid.NewString()[:8],
			URL2: host + uuid.NewString(),
		}
	}
	return pairs
}
