package ops

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ria-cpu/poi"
)

const (
	strExact = "exact"
)

func RunVerify() error {
	src, err := newSource(CLI.Verify.File)
	if err != nil {
		return err
	}

	defer src.Close()

	return _verify(src, os.Stdout)
}

func _verify(src *targetT, wr io.Writer) error {
	update, done := startProgress("Verifying", src, CLI.Verify.Quiet || src.srcSz <= 0)

	st, err := readStream(src, update)
	done()

	if err != nil {
		return err
	}

	var (
		logger   = newLogger()
		results  = poi.DecodeAll(st.raws, decodeOpts(false)...)
		counts   = make(map[string]int)
		failures []string
	)

	t := newTable("Verify results")
	t.SetOutputMirror(wr)
	t.AppendHeader(table.Row{"#", "Offset", "Size", "Result"})

	for i, res := range results {
		raw := st.raws[i]

		if res.Err != nil {
			counts["rejected"]++
			failures = append(failures, fmt.Sprintf("#%d: %v", i, res.Err))
			t.AppendRow(table.Row{i, raw.Offset, raw.Size(), res.Err.Error()})
			continue
		}

		verdict, err := roundTrip(raw, res.Rec)
		if err != nil {
			counts["failed"]++
			failures = append(failures, fmt.Sprintf("#%d: %v", i, err))
			verdict = err.Error()
		} else {
			counts[verdict]++
		}

		if verdict != strExact {
			logger.Debug("record normalized", "idx", i, "offset", raw.Offset, "size", raw.Size(), "result", verdict)
		}

		t.AppendRow(table.Row{i, raw.Offset, raw.Size(), verdict})
	}

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"", "", "File name", src.Name()},
		{"", "", "Records", st.total},
		{"", "", "WINDOW2", len(st.raws)},
		{"", "", "Exact", counts[strExact]},
		{"", "", "Normalized", len(results) - counts[strExact] - counts["rejected"] - counts["failed"]},
		{"", "", "Rejected", counts["rejected"]},
	})
	t.Render()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d records failed:\n  %s", len(failures), len(results), strings.Join(failures, "\n  "))
	}
	return nil
}

// Re-encode 'w' and describe how the canonical form differs from 'raw'.
func roundTrip(raw poi.RawRecord, w *poi.Window2) (string, error) {
	enc := w.Bytes()

	back, err := poi.Decode(poi.Sid, enc, 4, poi.PayloadSz)
	if err != nil {
		return "", err
	}
	if *back != w.Canonical() {
		return "", fmt.Errorf("decode of canonical form differs")
	}

	payload := enc[4:]
	if bytes.Equal(raw.Data, payload) {
		return strExact, nil
	}

	var notes []string
	switch {
	case raw.Size() < poi.PayloadSz:
		notes = append(notes, fmt.Sprintf("short form %d expanded", raw.Size()))
	case raw.Size() > poi.PayloadSz:
		notes = append(notes, fmt.Sprintf("%d trailing bytes dropped", raw.Size()-poi.PayloadSz))
	}
	if w.Options.Reserved() {
		notes = append(notes, "reserved bits cleared")
	}
	if len(notes) == 0 {
		return "", fmt.Errorf("canonical form differs from source")
	}
	return strings.Join(notes, "; "), nil
}
