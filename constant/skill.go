package constant

import "time"

// SkillID is the identifier the voice runtime knows this plugin by.
const SkillID = "skill-deepcdigital.jarbasai"

// CatalogURL is the hosted bootstrap document the catalog is refreshed from.
const CatalogURL = "https://github.com/JarbasSkills/skill-deepcdigital/raw/dev/bootstrap.json"

// SkillIcon is used for the playlist envelope and whenever an entry has no thumbnail.
const SkillIcon = "https://github.com/OpenVoiceOS/ovos-ocp-audio-plugin/raw/master/ovos_plugin_common_play/ocp/res/ui/images/ocp.png"

// Bounds of the random delay between catalog refreshes.
const (
	RefreshMinDelay = time.Hour
	RefreshMaxDelay = 24 * time.Hour
)

// StreamPrefix is prepended to every entry URL to form the playback locator.
const StreamPrefix = "youtube//"

// DocumentaryMarker classifies an entry as a documentary when its title contains it.
const DocumentaryMarker = "documentary"

// ProviderNames are the brand phrases that identify this catalog in an utterance.
var ProviderNames = []string{"Deep C Digital", "DeepCDigital"}

// Playlist envelope branding.
const (
	PlaylistTitle  = "DeepCDigital (Movie Playlist)"
	PlaylistAuthor = "DeepCDigital"
)

// Scoring constants.
const (
	PrimaryCategoryBonus = 15
	EntityWeight         = 30
	TitleMatchBonus      = 30
	DocumentaryBonus     = 20
	FeaturedConfidence   = 70
	MaxConfidence        = 100
)
