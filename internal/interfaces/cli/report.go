package cli

import (
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-report/internal/domain/lineup"
	"github.com/riskibarqy/sleeper-report/internal/domain/roster"
	"github.com/riskibarqy/sleeper-report/internal/domain/trending"
	"github.com/riskibarqy/sleeper-report/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const noRosterText = "No players found for that team code."

var lineupHeaders = []string{"Slot", "Name", "Pos", "Exp", "Depth"}

// WriteReport prints every report section as text tables. Output is buffered
// and written in one call.
func WriteReport(w io.Writer, report usecase.Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeSection(buf, "NFL state")
	fmt.Fprintf(buf, "%s\nDraft-year estimates use season %d.\n", report.State.Label(), report.Season)

	writeSection(buf, report.Team+" roster")
	if len(report.Roster) == 0 {
		_, _ = buf.WriteString(noRosterText + "\n")
	} else if err := RenderTable(buf, roster.Headers, rosterCells(report.Roster)); err != nil {
		return err
	}

	writeSection(buf, fmt.Sprintf("Trending adds (last %dh)", report.LookbackHours))
	if err := RenderTable(buf, trending.Headers, trendingCells(report.TrendingAdds)); err != nil {
		return err
	}

	writeSection(buf, fmt.Sprintf("Trending drops (last %dh)", report.LookbackHours))
	if err := RenderTable(buf, trending.Headers, trendingCells(report.TrendingDrops)); err != nil {
		return err
	}

	writeSection(buf, "Best lineup (heuristic)")
	if err := RenderTable(buf, lineupHeaders, lineupCells(report.Lineup)); err != nil {
		return err
	}

	_, err := buf.WriteTo(w)
	return err
}

// WriteJSON prints the report as indented JSON.
func WriteJSON(w io.Writer, report usecase.Report) error {
	raw, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}

func writeSection(buf *bytebufferpool.ByteBuffer, title string) {
	if buf.Len() > 0 {
		_ = buf.WriteByte('\n')
	}
	_, _ = buf.WriteString("== " + title + " ==\n")
}

func rosterCells(rows []roster.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Cells())
	}
	return out
}

func trendingCells(rows []trending.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Cells())
	}
	return out
}

func lineupCells(l lineup.Lineup) [][]string {
	out := make([][]string, 0, 9)
	for _, slot := range lineup.SlotOrder {
		for _, pick := range l[slot] {
			view := pick.Player
			out = append(out, []string{
				string(slot),
				view.DisplayName,
				view.Position,
				view.YearsExp,
				view.DepthChartOrder,
			})
		}
	}
	return out
}
