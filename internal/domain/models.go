package domain

import "time"

// ConnectionState reports whether a sender is actively feeding metadata
type ConnectionState string

const (
	// StateConnected indicates a recognized record arrived within the idle window
	StateConnected ConnectionState = "connected"
	// StateWaiting indicates no sender activity for longer than the idle window
	StateWaiting ConnectionState = "waiting-for-connection"
)

// Record is one decoded item from the metadata stream
type Record struct {
	// Type is the four character category tag (e.g. "core", "ssnc")
	Type string
	// Code is the four character item tag within the category
	Code string
	// Length is the payload length declared by the sender.
	// It is informational; the actual payload may differ in size.
	Length int
	// Data is the decoded payload, or the raw transfer bytes when
	// base64 decoding failed
	Data []byte
}

// NowPlaying is the state the display renders
type NowPlaying struct {
	// Title of the current track
	Title string
	// Artist name
	Artist string
	// Album name
	Album string
	// ArtworkPath is the cover file currently on disk, empty when none
	ArtworkPath string
	// LastUpdateAt is when the last recognized record was applied
	LastUpdateAt time.Time
	// Connection is the current sender activity label
	Connection ConnectionState
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
