package version

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

type semver [3]int

func parseSemver(s string) (semver, error) {
	var v semver

	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q: want major.minor.patch", s)
	}

	for i, p := range parts {
		// drop pre-release and build suffixes such as 1.2.3-rc1
		p, _, _ = strings.Cut(p, "-")
		p, _, _ = strings.Cut(p, "+")

		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, fmt.Errorf("version %q: bad component %q", s, parts[i])
		}
		v[i] = n
	}

	return v, nil
}

// Compare orders two major.minor.patch versions, with or without a "v"
// prefix: 1 if a is newer, -1 if b is newer, 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}
