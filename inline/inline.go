// Package inline runs searches without the interactive browser and writes
// the results for scripts.
package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deepc-skill/deepc/media"
	"github.com/deepc-skill/deepc/open"
	"github.com/deepc-skill/deepc/util"
	"github.com/samber/mo"
)

// Searcher answers a phrase for a category.
type Searcher interface {
	Search(phrase string, category media.Category) []*media.Result
}

type Options struct {
	Out      io.Writer
	Json     bool
	Query    string
	Category media.Category
	Picker   mo.Option[Picker]

	// Width truncates titles in plain output. Zero disables truncation.
	Width int
}

// Output is the JSON document written in json mode.
type Output struct {
	Query    string          `json:"query"`
	Category string          `json:"category"`
	Result   []*media.Result `json:"result"`
}

// Run searches and writes what the picker keeps.
func Run(searcher Searcher, options *Options) ([]*media.Result, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	results := searcher.Search(options.Query, options.Category)
	if picker, ok := options.Picker.Get(); ok {
		results = picker(results)
	}

	return results, Write(results, options)
}

// Write renders results as JSON or as one tab separated line each.
func Write(results []*media.Result, options *Options) error {
	if options.Json {
		return writeJson(options.Out, results, options)
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(options.Out, line(r, options.Width)); err != nil {
			return err
		}
	}
	return nil
}

func line(r *media.Result, width int) string {
	title := r.Title
	if width > 0 {
		title = util.Ellipsize(title, width)
	}

	if r.IsPlaylist() {
		return strings.Join([]string{
			fmt.Sprint(r.MatchConfidence),
			"playlist",
			title,
			util.Quantify(len(r.Playlist), "entry", "entries"),
		}, "\t")
	}

	return strings.Join([]string{
		fmt.Sprint(r.MatchConfidence),
		r.MediaType.String(),
		title,
		open.WatchURL(r),
	}, "\t")
}

func writeJson(out io.Writer, results []*media.Result, options *Options) error {
	if results == nil {
		results = []*media.Result{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(&Output{
		Query:    options.Query,
		Category: options.Category.String(),
		Result:   results,
	})
}
