package media

// Record is one catalog entry as published by the remote document. URL is
// the unique key.
type Record struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Thumbnail string `json:"thumbnail"`
}

// Entry is a record annotated with the category assigned during indexing.
type Entry struct {
	*Record
	Category Category
}

// Result is the record shape consumed by the playback layer. A result with
// a non-empty Playlist is a playlist envelope.
type Result struct {
	Title           string    `json:"title"`
	Author          string    `json:"author,omitempty"`
	MatchConfidence int       `json:"match_confidence" jsonschema:"minimum=0,maximum=100"`
	MediaType       Category  `json:"media_type"`
	URI             string    `json:"uri,omitempty"`
	Playback        Playback  `json:"playback"`
	SkillIcon       string    `json:"skill_icon"`
	SkillID         string    `json:"skill_id,omitempty"`
	Image           string    `json:"image"`
	BgImage         string    `json:"bg_image"`
	Playlist        []*Result `json:"playlist,omitempty"`
}

// IsPlaylist reports whether r wraps other results.
func (r *Result) IsPlaylist() bool {
	return r.Playlist != nil
}
