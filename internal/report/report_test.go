package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/meetingworks/rollcall/internal/sources"
	"github.com/meetingworks/rollcall/internal/zoom"
	"github.com/meetingworks/rollcall/pkg/roster"
	"github.com/meetingworks/rollcall/pkg/summary"
)

func testRecords() []roster.Record {
	return []roster.Record{
		{
			DisplayName: "John Smith (he/him) Kiama",
			Email:       "jsmith@example.com",
			LocalGroup:  "Kiama Greens",
			Registered:  true,
			Delegate:    true,
			Trace: []string{
				"Registered: Zoom email 'jsmith@example.com' == Billing-Email 'jsmith@example.com'",
				"Delegate: Zoom email 'jsmith@example.com' == Delegate email 'jsmith@example.com'",
			},
		},
		{
			DisplayName: "Mystery Guest",
			Email:       "",
			LocalGroup:  roster.UnknownGroup,
		},
	}
}

func TestWriteAttendanceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.csv")
	require.NoError(t, WriteAttendance(path, testRecords()))

	got, err := sources.LoadAttendance(path)
	require.NoError(t, err)
	assert.Equal(t, testRecords(), got, "reading the sheet back must reproduce the records")
}

func TestWriteSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	s := summary.Summarize(testRecords())
	require.NoError(t, WriteSummary(path, s))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Summary Report", "Delegate Roster", "Unmatched Attendees",
		"Unregistered Attendees", "Full Annotated Data",
	}, f.GetSheetList())

	metrics, err := f.GetRows("Summary Report")
	require.NoError(t, err)
	require.Len(t, metrics, 5)
	assert.Equal(t, []string{"Metric", "Value"}, metrics[0])
	assert.Equal(t, []string{"Total Attendees (in Zoom)", "2"}, metrics[1])
	assert.Equal(t, []string{"Total Groups with at least one Delegate", "1"}, metrics[2])

	full, err := f.GetRows("Full Annotated Data")
	require.NoError(t, err)
	require.Len(t, full, 3, "header plus one row per record")
	assert.Equal(t, "John Smith (he/him) Kiama", full[1][0])
	assert.Equal(t, "Unregistered", full[2][3])
	assert.Equal(t, "No Match Found", full[2][5])

	unmatched, err := f.GetRows("Unmatched Attendees")
	require.NoError(t, err)
	require.Len(t, unmatched, 2)
	assert.Equal(t, "Mystery Guest", unmatched[1][0])
}

func TestWriteParticipants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participants.csv")
	participants := []zoom.Participant{
		{
			Status:            "in_meeting",
			JoinTime:          "2026-08-27T23:00:00Z",
			UserName:          "John Smith",
			Email:             "jsmith@example.com",
			ParticipantUserID: "u1",
		},
	}
	require.NoError(t, WriteParticipants(path, participants))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, participantHeaders, rows[0])

	joined, _ := time.Parse(time.RFC3339, "2026-08-27T23:00:00Z")
	assert.Equal(t, joined.Local().Format(localTimeFormat), rows[1][1])
	assert.Empty(t, rows[1][2], "blank leave time stays blank")
	assert.Equal(t, "John Smith", rows[1][3])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestLocalTime(t *testing.T) {
	assert.Empty(t, localTime(""))
	assert.Equal(t, "not-a-time", localTime("not-a-time"), "unparseable values pass through")
}
