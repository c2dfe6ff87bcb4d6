package ops

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ria-cpu/poi"
)

const (
	strStdin = "<STDIN>"
	strUnset = "<DEFAULT>"
)

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	return t
}

func newProgressWriter(nTrackers int) progress.Writer {
	pw := progress.NewWriter()
	pw.SetAutoStop(true)
	pw.SetMessageLength(24)
	pw.SetNumTrackersExpected(nTrackers)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(25)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.Percentage = true
	pw.Style().Visibility.Time = true
	return pw
}

// Start a byte tracker over 'src' unless quiet.  The returned
// func marks it done and waits for the renderer to drain.
func startProgress(msg string, src *targetT, quiet bool) (update func(), done func()) {
	if quiet {
		return func() {}, func() {}
	}

	pw := newProgressWriter(1)
	pw.SetMessageLength(len(msg))

	tr := &progress.Tracker{
		Message: msg,
		Units:   progress.UnitsBytes,
	}

	if src.srcSz > 0 {
		tr.Total = src.srcSz
	}

	pw.AppendTracker(tr)
	go pw.Render()

	update = func() {
		tr.SetValue(src.Consumed())
	}
	done = func() {
		tr.SetValue(src.Consumed())
		tr.MarkAsDone()
		for pw.IsRenderInProgress() {
			time.Sleep(time.Millisecond * 100)
		}
	}
	return
}

func newLogger() *slog.Logger {
	if !CLI.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func zoomStr(v uint16) any {
	if v == 0 {
		return strUnset
	}
	return fmt.Sprintf("%d%%", v)
}

// Comma separated names of the flags set on 'o'.
func flagList(o poi.Options) string {
	var names []string
	for _, f := range poi.Flags() {
		if o.IsSet(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

// Key/value rows describing one record.
func recordRows(w *poi.Window2) []table.Row {
	rows := []table.Row{
		{"Options", fmt.Sprintf("%#04x", uint16(w.Options))},
	}
	for _, f := range poi.Flags() {
		rows = append(rows, table.Row{"  " + f.String(), w.Options.IsSet(f)})
	}
	if w.Options.Reserved() {
		rows = append(rows, table.Row{"  reserved bits", fmt.Sprintf("%#04x", uint16(w.Options&0xF000))})
	}

	headerColor := any(w.HeaderColor)
	if w.Options.DefaultHeader() {
		headerColor = strUnset
	}

	return append(rows, []table.Row{
		{"Top row", w.TopRow},
		{"Left column", w.LeftCol},
		{"Header color", headerColor},
		{"Page break zoom", zoomStr(w.PageBreakZoom)},
		{"Normal zoom", zoomStr(w.NormalZoom)},
		{"Reserved", fmt.Sprintf("%#x", w.Reserved)},
	}...)
}
