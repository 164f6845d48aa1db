// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Source - these keys locate and bound the remote catalog download.
const (
	CatalogURL     = "catalog.url"
	CatalogTimeout = "catalog.timeout"
)

// Refresh Scheduling - these keys bound the jittered delay between catalog refreshes.
const (
	RefreshMin     = "refresh.min"
	RefreshMax     = "refresh.max"
	RefreshOnStart = "refresh.on_start"
)

// Skill Identity - these keys brand the result records handed to the playback layer.
const (
	SkillID         = "skill.id"
	SkillIcon       = "skill.icon"
	SkillBackground = "skill.background"
)

// Playlist Envelope - these keys shape the fallback playlist result.
const (
	PlaylistScore = "playlist.score"
	PlaylistLimit = "playlist.limit"
)

// Search Interaction - these keys define the UX around query history.
const (
	SearchRememberQueries      = "search.remember_queries"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Networking - these keys tune the HTTP transport.
const (
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
