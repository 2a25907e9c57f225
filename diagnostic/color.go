// Copyright © 2026 The svgls authors

package diagnostic

import (
	"io"
	"os"
)

// ColorMode selects whether ANSI escapes are written.
type ColorMode int

const (
	ColorAuto ColorMode = iota // color when writing to a terminal and NO_COLOR is unset
	ColorAlways
	ColorNever
)

type palette struct {
	bold    string
	yellow  string
	boldRed string
	gutter  string
	note    string
	reset   string
}

var ansi = palette{
	bold:    "\033[1m",
	yellow:  "\033[33m",
	boldRed: "\033[1;31m",
	gutter:  "\033[1;34m",
	note:    "\033[1;36m",
	reset:   "\033[0m",
}

func (m ColorMode) palette(w io.Writer) palette {
	switch m {
	case ColorAlways:
		return ansi
	case ColorNever:
		return palette{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return palette{}
	}
	f, ok := w.(*os.File)
	if !ok {
		return palette{}
	}
	fi, err := f.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		return palette{}
	}
	return ansi
}
