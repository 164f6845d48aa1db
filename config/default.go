package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deepc-skill/deepc/color"
	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/key"
	"github.com/deepc-skill/deepc/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one configurable setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Section is the part of the key before the first dot, e.g. "refresh".
func (f *Field) Section() string {
	section, _, _ := strings.Cut(f.Key, ".")
	return section
}

// Env is the environment variable that overrides the field.
func (f *Field) Env() string {
	name := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	return strings.ToUpper(constant.Deepc) + "_" + name
}

// TypeName names the type of the default value.
func (f *Field) TypeName() string {
	if p, ok := parserFor(f.Value); ok {
		return p.name
	}
	return "unknown"
}

// Parse converts command line words into a value of the field's type.
func (f *Field) Parse(raw []string) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: missing value", f.Key)
	}

	p, ok := parserFor(f.Value)
	if !ok {
		return nil, fmt.Errorf("%s: cannot be set from the command line", f.Key)
	}

	v, err := p.parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid %s %q", f.Key, p.name, strings.Join(raw, " "))
	}
	return v, nil
}

// Pretty renders the field for `deepc config info`.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	rows := [][2]string{
		{"Key", style.Fg(color.Purple)(f.Key)},
		{"Env", f.Env()},
		{"Value", highlight(viper.Get(f.Key))},
		{"Default", highlight(f.Value)},
		{"Type", f.TypeName()},
	}

	lines := []string{style.Faint(f.Description)}
	for _, row := range rows {
		lines = append(lines, label(fmt.Sprintf("%-8s", row[0]+":"))+" "+row[1])
	}
	return strings.Join(lines, "\n")
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"key":         f.Key,
		"env":         f.Env(),
		"value":       viper.Get(f.Key),
		"default":     f.Value,
		"description": f.Description,
		"type":        f.TypeName(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return lo.Ternary(value, style.Fg(color.Green), style.Fg(color.Red))(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	case time.Duration:
		return style.Fg(color.Cyan)(value.String())
	default:
		return fmt.Sprint(value)
	}
}

type parser struct {
	name  string
	parse func(raw []string) (any, error)
}

func parserFor(v any) (parser, bool) {
	switch v.(type) {
	case string:
		return parser{"string", func(raw []string) (any, error) { return strings.Join(raw, " "), nil }}, true
	case int:
		return parser{"int", func(raw []string) (any, error) { return strconv.Atoi(raw[0]) }}, true
	case bool:
		return parser{"bool", func(raw []string) (any, error) { return strconv.ParseBool(raw[0]) }}, true
	case time.Duration:
		return parser{"duration", func(raw []string) (any, error) { return time.ParseDuration(raw[0]) }}, true
	case []string:
		return parser{"[]string", func(raw []string) (any, error) { return raw, nil }}, true
	default:
		return parser{}, false
	}
}

// Default indexes every field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables, in registration order.
var EnvExposed []string

var fields = []Field{
	{key.CatalogURL, constant.CatalogURL, "Remote catalog document (JSON object of url -> entry)"},
	{key.CatalogTimeout, 30 * time.Second, "Timeout for a single catalog download"},

	{key.RefreshMin, constant.RefreshMinDelay, "Shortest delay before the next catalog refresh"},
	{key.RefreshMax, constant.RefreshMaxDelay, "Longest delay before the next catalog refresh (exclusive)"},
	{key.RefreshOnStart, true, "Refresh the catalog once when the skill starts"},

	{key.SkillID, constant.SkillID, "Skill identifier stamped on every result"},
	{key.SkillIcon, constant.SkillIcon, "Icon used for the playlist and entries without a thumbnail"},
	{key.SkillBackground, constant.SkillIcon, "Background image used for the playlist"},

	{key.PlaylistScore, 50, "Confidence of the playlist result, from 0 to 100"},
	{key.PlaylistLimit, 250, "Maximum number of entries in the playlist"},

	{key.SearchRememberQueries, true, "Remember search phrases for suggestions"},
	{key.SearchShowQuerySuggestions, true, "Show query suggestions when a search finds nothing"},

	{key.NetworkTLSFingerprint, false, "Download the catalog with a browser TLS fingerprint"},

	{key.IconsVariant, "plain", "Icons variant: emoji, kaomoji, plain, squares or nerd (needs a nerd font)"},

	{key.LogsWrite, false, "Write logs to the logs directory"},
	{key.LogsLevel, "info", "Log level, least to most verbose: panic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Write logs as JSON"},

	{key.CliColored, true, "Colored help output"},
	{key.CliVersionCheck, true, "Check for a newer release when showing help"},
}

func init() {
	for _, f := range fields {
		if _, dup := Default[f.Key]; dup {
			panic("config: duplicate key " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
