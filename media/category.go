// Package media defines the catalog records and the result records handed to the playback layer.
package media

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category is the media classification of a result. Values match the
// voice platform's media type enumeration.
type Category int

const (
	Movie       Category = 10
	Documentary Category = 15
)

// Primary is the category entries belong to unless classified otherwise.
const Primary = Movie

// ErrUnknownCategory is returned by ParseCategory for unsupported names.
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the categories this catalog can answer for.
func Categories() []Category {
	return []Category{Movie, Documentary}
}

func (c Category) String() string {
	switch c {
	case Movie:
		return "movie"
	case Documentary:
		return "documentary"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory accepts a category name (any case) or its numeric value.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if s == c.String() {
			return c, nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		for _, c := range Categories() {
			if int(c) == n {
				return c, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Playback is how the player should handle a result.
type Playback int

// Video is the only playback kind this catalog produces.
const Video Playback = 1

func (p Playback) String() string {
	if p == Video {
		return "video"
	}
	return fmt.Sprintf("playback(%d)", int(p))
}
