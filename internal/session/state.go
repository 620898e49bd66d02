package session

import (
	"github.com/warpdl/unduh/internal/platform"
	"github.com/warpdl/unduh/internal/ytdl"
)

// Phase is a state of the interactive loop.
type Phase int

const (
	// Prompting reads a URL and an output folder.
	Prompting Phase = iota
	// Confirming shows media info and asks before downloading.
	Confirming
	// Downloading runs the download.
	Downloading
	// Reporting prints the outcome and asks whether to go on.
	Reporting
	// Exiting ends the session.
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Prompting:
		return "prompting"
	case Confirming:
		return "confirming"
	case Downloading:
		return "downloading"
	case Reporting:
		return "reporting"
	case Exiting:
		return "exiting"
	}
	return "unknown"
}

// State is everything one request carries from phase to phase.
type State struct {
	Phase Phase

	URL       string
	Platform  platform.Platform
	OutputDir string
	Options   ytdl.Options

	// Info is set once Confirming fetched metadata.
	Info *ytdl.Info
	// Err is the failure Reporting explains; nil means success.
	Err error
}

// prompting returns a fresh state waiting for the next URL.
func prompting() State {
	return State{Phase: Prompting}
}

func exiting(st State) State {
	st.Phase = Exiting
	return st
}
