// Package summary aggregates annotated attendance records into quorum
// statistics and partitioned views. Every view is a filtered projection of
// the same record set; no matching logic runs here.
package summary

import (
	"sort"

	"github.com/meetingworks/rollcall/pkg/roster"
)

// Report holds the headline counts derived from the annotated record set.
type Report struct {
	// TotalAttendees is the number of annotated records.
	TotalAttendees int

	// GroupsWithDelegate counts distinct local groups represented by at
	// least one matched delegate, the meeting's quorum proxy. Delegates
	// whose group could not be identified are excluded.
	GroupsWithDelegate int

	// UnmatchedCount is the number of records no matching rule fired for.
	UnmatchedCount int

	// UnregisteredCount is the number of records labeled Unregistered.
	UnregisteredCount int
}

// Summary wraps an ordered annotated record set with its derived report and
// filtered views. It must be built only after reconciliation of every
// participant has completed.
type Summary struct {
	records []roster.Record
	report  Report
}

// Summarize computes the report for an ordered annotated record set.
func Summarize(records []roster.Record) *Summary {
	s := &Summary{records: records}
	s.report.TotalAttendees = len(records)

	represented := make(map[string]struct{})
	for _, r := range records {
		if r.MatchRule() == roster.NoMatchFound {
			s.report.UnmatchedCount++
		}
		if !r.Registered {
			s.report.UnregisteredCount++
		}
		if r.Delegate && r.LocalGroup != roster.UnknownGroup {
			represented[r.LocalGroup] = struct{}{}
		}
	}
	s.report.GroupsWithDelegate = len(represented)
	return s
}

// Report returns the headline counts.
func (s *Summary) Report() Report {
	return s.report
}

// Records returns the full annotated table in its original order.
func (s *Summary) Records() []roster.Record {
	return s.records
}

// Unmatched returns the records no matching rule fired for, flagged for
// manual review.
func (s *Summary) Unmatched() []roster.Record {
	return s.filter(func(r roster.Record) bool {
		return r.MatchRule() == roster.NoMatchFound
	})
}

// Unregistered returns the records with no registration match.
func (s *Summary) Unregistered() []roster.Record {
	return s.filter(func(r roster.Record) bool {
		return !r.Registered
	})
}

// DelegateRoster returns the matched delegates sorted by local group then
// display name for roll call. The sort is stable, so delegates within the
// same group and name keep their attendance order.
func (s *Summary) DelegateRoster() []roster.Record {
	list := s.filter(func(r roster.Record) bool {
		return r.Delegate
	})
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].LocalGroup != list[j].LocalGroup {
			return list[i].LocalGroup < list[j].LocalGroup
		}
		return list[i].DisplayName < list[j].DisplayName
	})
	return list
}

func (s *Summary) filter(keep func(roster.Record) bool) []roster.Record {
	out := make([]roster.Record, 0)
	for _, r := range s.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
