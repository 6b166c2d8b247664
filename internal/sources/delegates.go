package sources

import (
	"github.com/meetingworks/rollcall/pkg/roster"
)

// LoadDelegates reads the delegate list from the first sheet of an XLSX
// workbook. The file has no header row: column one is the full name, column
// two the email address, and an optional column three names the delegate's
// local group. Rows with neither a name nor an email are skipped.
func LoadDelegates(path string) ([]roster.Delegate, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}

	delegates := make([]roster.Delegate, 0, len(rows))
	for _, row := range rows {
		d := roster.Delegate{
			FullName:   cell(row, 0),
			Email:      cell(row, 1),
			LocalGroup: cell(row, 2),
		}
		if d.FullName == "" && d.Email == "" {
			continue
		}
		delegates = append(delegates, d)
	}
	return delegates, nil
}
