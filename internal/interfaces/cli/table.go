package cli

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

const (
	noDataText      = "No data."
	columnSeparator = "  "
)

// RenderTable writes rows as left-aligned columns under a header row and a
// dash separator. Widths are measured in runes. Empty rows print "No data.".
func RenderTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, noDataText+"\n")
		return err
	}

	widths := columnWidths(headers, rows)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeRow(buf, headers, widths)
	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}
	writeRow(buf, separator, widths)
	for _, row := range rows {
		writeRow(buf, row, widths)
	}

	_, err := buf.WriteTo(w)
	return err
}

func columnWidths(headers []string, rows [][]string) []int {
	columns := len(headers)
	for _, row := range rows {
		columns = max(columns, len(row))
	}

	widths := make([]int, columns)
	measure := func(cells []string) {
		for i, cell := range cells {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	return widths
}

func writeRow(buf *bytebufferpool.ByteBuffer, cells []string, widths []int) {
	line := bytebufferpool.Get()
	defer bytebufferpool.Put(line)

	for i, width := range widths {
		if i > 0 {
			_, _ = line.WriteString(columnSeparator)
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		_, _ = line.WriteString(cell)
		if pad := width - utf8.RuneCountInString(cell); pad > 0 {
			_, _ = line.WriteString(strings.Repeat(" ", pad))
		}
	}

	_, _ = buf.WriteString(strings.TrimRight(line.String(), " "))
	_ = buf.WriteByte('\n')
}
