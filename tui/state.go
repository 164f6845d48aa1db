package tui

type state int

const (
	searchState state = iota
	resultsState
	playlistState
	errorState
)
