package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/palace"
)

// gridRows is the Luo Shu arrangement with south on top: reading order of a
// printed chart, not the numeric palace order.
var gridRows = [3][3]palace.Palace{
	{4, 9, 2},
	{3, 5, 7},
	{8, 1, 6},
}

const cellWidth = 26

// Grid renders the chart as plain fixed-width text: seven header lines, then
// the 3×3 palace grid. Each cell packs markers, deity, star, door and the
// stems in (heaven)earth notation; the center cell inverts the notation to
// heaven(earth) since its own stem is the parenthesised one.
func Grid(c *chart.Chart) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Time: %s (%s)\n", c.SolarDate, c.Timezone)
	fmt.Fprintf(&b, "GanZhi: %s %s %s %s\n", c.GanZhi.Year, c.GanZhi.Month, c.GanZhi.Day, c.GanZhi.Hour)
	fmt.Fprintf(&b, "JieQi: %s (%s)\n", c.SolarTerm, c.Yuan)
	fmt.Fprintf(&b, "Chart: %s\n", c.Formation)
	fmt.Fprintf(&b, "Xun Shou: %s\n", c.XunShou)
	fmt.Fprintf(&b, "Zhi Fu: %s | Zhi Shi: %s\n", c.ZhiFu, c.ZhiShi)
	fmt.Fprintf(&b, "Horse: %s | Empty: %s\n", c.HorseStar, c.EmptyDeath)
	b.WriteString(strings.Repeat("-", 40))
	b.WriteByte('\n')

	for _, row := range gridRows {
		cells := make([]string, 0, len(row))
		for _, pn := range row {
			cells = append(cells, center(cellText(c, pn), cellWidth))
		}
		b.WriteString(strings.Join(cells, "|"))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", 82))
		b.WriteByte('\n')
	}

	return b.String()
}

// cellText builds the one-line symbol string of a palace.
func cellText(c *chart.Chart, pn palace.Palace) string {
	rec := c.Palaces[pn]

	markers := strings.Join(rec.Markers, "")
	if markers != "" {
		markers = "[" + markers + "]"
	}

	return markers + rec.Deity + rec.Star + rec.Door + stemText(rec, pn)
}

// stemText joins the heaven and earth stems of a cell. Outer palaces print
// (heaven)earth. The center prints heaven(earth): its heaven stem is lodged
// from another palace, so its own stem is stripped from the copy first to
// avoid printing it twice.
func stemText(rec chart.PalaceRecord, pn palace.Palace) string {
	h, e := rec.HeavenStem, rec.EarthStem
	if !pn.IsCenter() {
		if h == "" {
			return e
		}

		return "(" + h + ")" + e
	}

	if e != "" {
		h = strings.Replace(h, e, "", 1)
	}
	if e == "" {
		return h
	}

	return h + "(" + e + ")"
}

// center pads s with spaces to width columns, counting runes; the odd column
// goes to the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// Styles of the bordered view.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Width(14).
			Align(lipgloss.Center)

	centerCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("178")).
			Foreground(lipgloss.Color("178"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// StyledGrid renders the chart as bordered, colored lipgloss cells, one per
// palace, stacked symbol lines inside each. Meant for direct terminal output;
// use Grid when piping.
func StyledGrid(c *chart.Chart) string {
	header := headerStyle.Render(fmt.Sprintf("%s  %s  %s", c.SolarDate, c.Formation, c.XunShou))
	sub := fmt.Sprintf("值符%s 值使%s  馬%s 空%s", c.ZhiFu, c.ZhiShi, c.HorseStar, c.EmptyDeath)

	rows := make([]string, 0, len(gridRows))
	for _, row := range gridRows {
		cells := make([]string, 0, len(row))
		for _, pn := range row {
			cells = append(cells, styledCell(c, pn))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, sub, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// styledCell stacks a palace's symbols into one bordered box.
func styledCell(c *chart.Chart, pn palace.Palace) string {
	rec := c.Palaces[pn]

	lines := []string{
		rec.Deity,
		rec.Star,
		rec.Door,
		stemText(rec, pn),
	}
	if len(rec.Markers) > 0 {
		lines = append(lines, markerStyle.Render(strings.Join(rec.Markers, " ")))
	}

	style := cellStyle
	if pn.IsCenter() {
		style = centerCellStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}
