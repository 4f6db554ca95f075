package common

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// StartProgressSpinner shows a spinner on stderr while a slow call runs.
// Stdout stays untouched because it carries the inventory document, and
// nothing is drawn at all when stderr isn't a terminal.
func StartProgressSpinner(prefix string) (stop func()) {
	if !IsTerminalError() {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[9], time.Millisecond*200, spinner.WithWriter(os.Stderr))
	s.Prefix = prefix + " "
	s.Start()

	return s.Stop
}

func IsTerminalOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func IsTerminalError() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
