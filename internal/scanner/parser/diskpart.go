package parser

import "strings"

// TableRow is one data row of a diskpart `list disk` or `list partition` table.
type TableRow struct {
	Index int
	Name  string
	Info  string
	Size  string
}

type column struct {
	start, end int
}

// ParseDiskpartTable parses the fixed-width table diskpart prints:
//
//	  Disk ###  Status         Size     Free     Dyn  Gpt
//	  --------  -------------  -------  -------  ---  ---
//	  Disk 0    Online          476 GB      0 B        *
//
// Everything before the divider row (the first line whose trimmed text
// starts with '-') is dropped and the table ends at the first blank line.
// Column boundaries come from the divider alone: each dash run spans one
// column, so rows are sliced by position and never split on whitespace.
// The first three columns are name, info and size.
func ParseDiskpartTable(output string) ([]TableRow, error) {
	lines := splitLines(output)

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "-") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, &Error{Tool: "diskpart", Reason: "no divider row"}
	}

	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, &Error{Tool: "diskpart", Line: lines[len(lines)-1], Reason: "table is not terminated by a blank line"}
	}

	cols, err := dividerColumns(lines[start])
	if err != nil {
		return nil, err
	}

	var rows []TableRow
	for i, line := range lines[start+1 : end] {
		r := []rune(strings.TrimRight(line, "\r"))
		rows = append(rows, TableRow{
			Index: i + 1,
			Name:  cell(r, cols[0]),
			Info:  cell(r, cols[1]),
			Size:  cell(r, cols[2]),
		})
	}
	return rows, nil
}

func dividerColumns(divider string) ([]column, error) {
	var cols []column
	start := -1
	r := []rune(strings.TrimRight(divider, "\r"))
	for i, ch := range r {
		switch {
		case ch == '-' && start < 0:
			start = i
		case ch != '-' && start >= 0:
			cols = append(cols, column{start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		cols = append(cols, column{start: start, end: len(r)})
	}
	if len(cols) < 3 {
		return nil, &Error{Tool: "diskpart", Line: divider, Reason: "divider has fewer than three columns"}
	}
	return cols, nil
}

func cell(r []rune, c column) string {
	start, end := c.start, c.end
	if start > len(r) {
		start = len(r)
	}
	if end > len(r) {
		end = len(r)
	}
	return strings.TrimSpace(string(r[start:end]))
}
