package assetgen

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record; its handler reports every level as disabled,
// so log calls cost no formatting.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of assetgen and its sub-packages to l.
// Nothing is logged until it is called; nil switches logging off again.
//
// Debug records cover single steps (layer merged, raster resized, file
// written); info records mark pipeline stages (shape built, master
// composed, export finished).
//
//	assetgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger shared by shape, compose, export, dmg and
// pipeline.
func Logger() *slog.Logger {
	return current.Load()
}
