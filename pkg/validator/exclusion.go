package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// exclusions is a compiled list of patterns that whitelist known non-standard values.
type exclusions []*regexp.Regexp

func compileExclusions(patterns []string) (exclusions, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make(exclusions, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, errors.Join(ErrInvalidPattern, fmt.Errorf("pattern %q: %w", p, err))
		}
		out = append(out, re)
	}
	return out, nil
}

func (e exclusions) match(s string) bool {
	for _, re := range e {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
