//go:build !ebiten

package app

import (
	"errors"

	"conway-live/internal/core"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the window frontend requires building with the 'ebiten' tag")

// Run reports that the window frontend is unavailable. Re-run with
// `go run -tags ebiten ./cmd/life gui`.
func Run(core.Automaton, Options) error {
	return ErrNoGUI
}
