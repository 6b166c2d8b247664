package sources

import (
	"encoding/csv"
	"os"

	"github.com/meetingworks/rollcall/pkg/errors"
	"github.com/meetingworks/rollcall/pkg/roster"
)

// Column names in the Zoom participant CSV export. Extra columns (join and
// leave times, device info) are ignored.
const (
	colUserName = "user_name"
	colEmail    = "email"
)

// LoadParticipants reads the meeting participant list from a CSV file with
// a header row. The user_name and email columns are required; all other
// columns are ignored. Row order is preserved.
func LoadParticipants(path string) ([]roster.Participant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewValidationError(colUserName, nil, "participants file has no header row")
	}

	idx := headerIndex(rows[0])
	for _, col := range []string{colUserName, colEmail} {
		if _, ok := idx[col]; !ok {
			return nil, errors.NewValidationError(col, nil, "required column missing from "+path)
		}
	}

	participants := make([]roster.Participant, 0, len(rows)-1)
	for _, row := range rows[1:] {
		participants = append(participants, roster.Participant{
			DisplayName: cell(row, idx[colUserName]),
			Email:       cell(row, idx[colEmail]),
		})
	}
	return participants, nil
}
