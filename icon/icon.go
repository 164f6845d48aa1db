// Package icon renders the status and media symbols in the variant the
// user picked with icons.variant.
package icon

import (
	"github.com/deepc-skill/deepc/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var variants = [...]string{"emoji", "nerd", "plain", "kaomoji", "squares"}

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return append([]string(nil), variants[:]...)
}

// Icon identifies a symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Search
	Movie
	Documentary
	Playlist
)

// glyphs are ordered like variants.
type glyphs [len(variants)]string

var icons = map[Icon]glyphs{
	Fail:        {"💀", "\uf00d", "Error", "(×_×)", "🟥"},
	Success:     {"🎉", "\uf00c", "Success", "(ᵔᴥᵔ)", "🟩"},
	Progress:    {"⏳", "\uf110", "...", "(・_・)", "🟨"},
	Search:      {"🔍", "\uf002", "?", "(°ロ°)", "🟦"},
	Movie:       {"🎬", "\uf008", "M", "(⌐■_■)", "🟪"},
	Documentary: {"📚", "\uf02d", "D", "(・ω・)", "🟫"},
	Playlist:    {"📼", "\uf03a", "P", "(^_^)", "⬛"},
}

// Get renders i in the configured variant, or "" when either is unknown.
func Get(i Icon) string {
	g, ok := icons[i]
	if !ok {
		return ""
	}

	v := lo.IndexOf(variants[:], viper.GetString(key.IconsVariant))
	if v < 0 {
		return ""
	}
	return g[v]
}
