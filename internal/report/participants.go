package report

import (
	"encoding/csv"
	"os"
	"time"

	"github.com/meetingworks/rollcall/internal/zoom"
	"github.com/meetingworks/rollcall/pkg/errors"
)

// participantHeaders is the column order of the raw participant export.
var participantHeaders = []string{
	"status", "join_time", "leave_time", "user_name", "email",
	"participant_user_id", "pc_name", "client", "browser_name", "device_name",
}

// localTimeFormat renders timestamps in the operator's timezone so the
// sheet is readable during a live meeting.
const localTimeFormat = "2006-01-02 15:04:05"

// WriteParticipants writes fetched participants to a CSV file. Join and
// leave times arrive as ISO 8601 UTC and are rendered in local time; a
// blank leave time (participant still in the meeting) stays blank.
func WriteParticipants(path string, participants []zoom.Participant) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(participantHeaders); err != nil {
		return errors.WrapIO("write", path, err)
	}
	for _, p := range participants {
		row := []string{
			p.Status,
			localTime(p.JoinTime),
			localTime(p.LeaveTime),
			p.UserName,
			p.Email,
			p.ParticipantUserID,
			p.PCName,
			p.Client,
			p.BrowserName,
			p.DeviceName,
		}
		if err := w.Write(row); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// localTime converts an ISO 8601 timestamp to local time. Values that do
// not parse are passed through unchanged rather than dropped.
func localTime(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Local().Format(localTimeFormat)
}
