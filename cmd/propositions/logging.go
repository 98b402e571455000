package main

import (
	"io"

	"github.com/op/go-logging"
)

var logger = logging.MustGetLogger("propositions")

var logFormat = logging.MustStringFormatter(
	"%{time:15:04:05} %{level:.4s} %{message}",
)

// setupLogging sends log messages to w. Only warnings and worse are logged
// unless verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	be := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), logFormat)
	lvl := logging.AddModuleLevel(be)
	if verbose {
		lvl.SetLevel(logging.DEBUG, "")
	} else {
		lvl.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(lvl)
}
