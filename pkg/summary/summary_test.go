package summary

import (
	"reflect"
	"testing"

	"github.com/meetingworks/rollcall/pkg/roster"
)

func testRecords() []roster.Record {
	return []roster.Record{
		{DisplayName: "Zoe", LocalGroup: "A", Registered: true, Delegate: true,
			Trace: []string{"Delegate: email match"}},
		{DisplayName: "Adam", LocalGroup: "A", Registered: true, Delegate: true,
			Trace: []string{"Delegate: name match"}},
		{DisplayName: "Bea", LocalGroup: "B", Registered: false, Delegate: true,
			Trace: []string{"Delegate: email match"}},
		{DisplayName: "Ghost", LocalGroup: roster.UnknownGroup, Registered: false, Delegate: false},
		{DisplayName: "Unknown Delegate", LocalGroup: roster.UnknownGroup, Registered: true, Delegate: true,
			Trace: []string{"Delegate: email match"}},
	}
}

func TestSummarizeReport(t *testing.T) {
	r := Summarize(testRecords()).Report()

	if r.TotalAttendees != 5 {
		t.Errorf("TotalAttendees = %d, want 5", r.TotalAttendees)
	}
	// Two delegates in group A and one in B count as two represented
	// groups; the delegate with an unknown group is excluded.
	if r.GroupsWithDelegate != 2 {
		t.Errorf("GroupsWithDelegate = %d, want 2", r.GroupsWithDelegate)
	}
	if r.UnmatchedCount != 1 {
		t.Errorf("UnmatchedCount = %d, want 1", r.UnmatchedCount)
	}
	if r.UnregisteredCount != 2 {
		t.Errorf("UnregisteredCount = %d, want 2", r.UnregisteredCount)
	}
}

func TestSummaryViews(t *testing.T) {
	s := Summarize(testRecords())

	unmatched := s.Unmatched()
	if len(unmatched) != 1 || unmatched[0].DisplayName != "Ghost" {
		t.Errorf("Unmatched() = %v, want only Ghost", unmatched)
	}

	unregistered := s.Unregistered()
	if len(unregistered) != 2 {
		t.Fatalf("Unregistered() has %d records, want 2", len(unregistered))
	}
	if unregistered[0].DisplayName != "Bea" || unregistered[1].DisplayName != "Ghost" {
		t.Errorf("Unregistered() out of order: %v", unregistered)
	}

	if got := s.Records(); !reflect.DeepEqual(got, testRecords()) {
		t.Error("Records() must return the full table unchanged")
	}
}

func TestDelegateRosterSorted(t *testing.T) {
	sorted := Summarize(testRecords()).DelegateRoster()

	var got []string
	for _, r := range sorted {
		got = append(got, r.LocalGroup+"/"+r.DisplayName)
	}
	// Sorted by local group then display name; the Unknown-group delegate
	// sorts after A and B.
	want := []string{"A/Adam", "A/Zoe", "B/Bea", "Unknown/Unknown Delegate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DelegateRoster() order = %v, want %v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if r := s.Report(); r != (Report{}) {
		t.Errorf("Report() = %+v, want zero value", r)
	}
	if len(s.DelegateRoster()) != 0 || len(s.Unmatched()) != 0 {
		t.Error("views of an empty record set must be empty")
	}
}
