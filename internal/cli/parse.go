package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIntList turns a comma-separated list like "1,2,-1" into ints.
// Tuple and bracket wrapping from the library's String forms is
// stripped, so "(1,2,-1)" and "[0,1,0]" parse too. An empty string is
// the empty list.
func parseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("not an integer list entry: %q", strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}
