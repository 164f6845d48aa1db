package inline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deepc-skill/deepc/media"
	"github.com/samber/lo"
)

// Picker narrows a result list.
type Picker func([]*media.Result) []*media.Result

// ParsePicker understands first, last, all, an index (from 0), a from-to
// range and @substring@ title matches.
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "all":
		return func(r []*media.Result) []*media.Result { return r }, nil
	case "first":
		return func(r []*media.Result) []*media.Result {
			return lo.Subset(r, 0, 1)
		}, nil
	case "last":
		return func(r []*media.Result) []*media.Result {
			return lo.Subset(r, -1, 1)
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 2 {
		sub := strings.ToLower(strings.Trim(description, "@"))
		return func(r []*media.Result) []*media.Result {
			return lo.Filter(r, func(res *media.Result, _ int) bool {
				return strings.Contains(strings.ToLower(res.Title), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, errA := strconv.ParseUint(from, 10, 32)
		b, errB := strconv.ParseUint(to, 10, 32)
		if errA != nil || errB != nil || a > b {
			return nil, fmt.Errorf("invalid range %q", description)
		}
		return func(r []*media.Result) []*media.Result {
			return lo.Subset(r, int(a), uint(b-a+1))
		}, nil
	}

	i, err := strconv.ParseUint(description, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid picker %q", description)
	}
	return func(r []*media.Result) []*media.Result {
		return lo.Subset(r, int(i), 1)
	}, nil
}
