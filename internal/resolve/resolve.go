// Package resolve expands user vector tokens against the reference
// case's vocabulary. A token is either a plain vector pattern (glob
// wildcards allowed), a restart-indexed reference NAME:I,J,K, or
// unmatched. Plain resolution always takes priority: the restart
// grammar is only consulted for tokens that match no vocabulary key.
package resolve

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var ErrNoVectors = errors.New("resolve: no vectors to plot")

// Strict NAME:I,J,K grammar with positive 1-based integers, no
// whitespace, case sensitive.
var restartPattern = regexp.MustCompile(`^[A-Z]+:[0-9]+,[0-9]+,[0-9]+$`)

// RestartSpec is a restart-indexed vector: a quantity name sampled at a
// fixed 1-based grid cell. Immutable once parsed.
type RestartSpec struct {
	Quantity string
	I, J, K  int
}

func (s RestartSpec) String() string {
	return fmt.Sprintf("%s:%d,%d,%d", s.Quantity, s.I, s.J, s.K)
}

// ParseRestartSpec reports whether the token matches the restart
// grammar, and the parsed spec when it does. Cells are 1-based, so a
// zero coordinate is rejected.
func ParseRestartSpec(token string) (RestartSpec, bool) {
	if !restartPattern.MatchString(token) {
		return RestartSpec{}, false
	}
	colon := strings.IndexByte(token, ':')
	parts := strings.Split(token[colon+1:], ",")
	i, _ := strconv.Atoi(parts[0])
	j, _ := strconv.Atoi(parts[1])
	k, _ := strconv.Atoi(parts[2])
	if i < 1 || j < 1 || k < 1 {
		return RestartSpec{}, false
	}
	return RestartSpec{Quantity: token[:colon], I: i, J: j, K: k}, true
}

// Vocabulary is the summary capability needed for resolution.
type Vocabulary interface {
	Keys(pattern string) []string
	HasKey(key string) bool
}

// Result is the resolved request set: plain keys confirmed present in
// the reference vocabulary, in first-match order, plus well-formed
// restart specs.
type Result struct {
	Plain   []string
	Restart []RestartSpec
}

// Resolve classifies each token against the reference case. Tokens
// matching nothing are reported on warn and dropped. Resolve fails with
// ErrNoVectors only when both output sets end up empty.
func Resolve(ref Vocabulary, tokens []string, warn io.Writer) (Result, error) {
	var res Result
	seen := make(map[string]bool)

	for _, token := range tokens {
		if matches := ref.Keys(token); len(matches) > 0 {
			for _, key := range matches {
				if !seen[key] {
					seen[key] = true
					res.Plain = append(res.Plain, key)
				}
			}
			continue
		}
		if spec, ok := ParseRestartSpec(token); ok {
			res.Restart = append(res.Restart, spec)
			continue
		}
		fmt.Fprintf(warn, "warning: no vector matching %s\n", token)
	}

	if len(res.Plain) == 0 && len(res.Restart) == 0 {
		return Result{}, ErrNoVectors
	}
	return res, nil
}
