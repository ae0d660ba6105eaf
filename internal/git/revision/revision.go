// Recognizes the object names git prints for commits.
package revision

import (
	"regexp"
)

const (
	sha1HexLen   = 40
	sha256HexLen = 64
)

var hexRegexp = regexp.MustCompile(`^[a-f0-9]+$`)

// Returns true if this is a full-length commit hash as printed by git log,
// in either a SHA-1 or a SHA-256 repository.
func IsFullHash(s string) bool {
	return (len(s) == sha1HexLen || len(s) == sha256HexLen) &&
		hexRegexp.MatchString(s)
}

// Returns true if this is a line of git rev-parse output naming a revision:
// a full hash, possibly negated with a leading "^".
func IsRevision(s string) bool {
	if len(s) > 0 && s[0] == '^' {
		s = s[1:]
	}

	return IsFullHash(s)
}
