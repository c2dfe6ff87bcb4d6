package ops

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ria-cpu/poi"
)

func RunDump() error {
	src, err := newSource(CLI.Dump.File)
	if err != nil {
		return err
	}

	defer src.Close()

	return _dump(src, os.Stdout)
}

func _dump(src *targetT, wr io.Writer) error {
	rd := src.Reader()

	if CLI.Dump.Skip > 0 {
		if _, err := io.CopyN(io.Discard, rd, CLI.Dump.Skip); err != nil {
			return fmt.Errorf("fail skip %d bytes: %w", CLI.Dump.Skip, err)
		}
	}

	w, err := poi.ReadWindow2(rd)
	if err != nil {
		return err
	}

	if !CLI.Dump.Table {
		_, err = io.WriteString(wr, w.String())
		return err
	}

	t := newTable("WINDOW2")
	t.SetOutputMirror(wr)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Source", src.Name()})
	t.AppendSeparator()
	t.AppendRows(recordRows(w))
	t.Render()

	return nil
}

func RunFlags() {
	t := newTable("WINDOW2 option flags")
	t.AppendHeader(table.Row{"Bit", "Mask", "Name"})
	for i, f := range poi.Flags() {
		t.AppendRow(table.Row{i, fmt.Sprintf("%#04x", uint16(f.Mask())), f.String()})
	}
	t.Render()
}
