package reconcile

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/meetingworks/rollcall/pkg/roster"
)

var (
	testGroups = []string{"Kiama Greens", "Canada Bay Greens", "Blue Mountains Greens"}

	testRegistrants = []roster.Registrant{
		{BillingEmail: "jsmith@example.com", FirstName: "John", LastName: "Smith"},
		{BillingEmail: "mdavis@example.com", FirstName: "Mary", LastName: "Davis", LocalGroup: "Canada Bay Greens"},
		{BillingEmail: "bbrown@example.com", FirstName: "Bob", LastName: "Brown"},
	}

	testDelegates = []roster.Delegate{
		{FullName: "John Smith", Email: "jsmith@example.com", LocalGroup: "Kiama Greens"},
		{FullName: "Alice Wong", Email: "alice@example.com", LocalGroup: "Canada Bay Greens"},
	}
)

func reconcileOne(t *testing.T, p roster.Participant, cfg Config) roster.Record {
	t.Helper()
	records := Reconcile(context.Background(), []roster.Participant{p},
		testRegistrants, testDelegates, testGroups, cfg)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	return records[0]
}

func TestReconcileEmailMatch(t *testing.T) {
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "John Smith (he/him) Kiama",
		Email:       " JSmith@Example.com ",
	}, Config{})

	if rec.LocalGroup != "Kiama Greens" {
		t.Errorf("LocalGroup = %q, want %q", rec.LocalGroup, "Kiama Greens")
	}
	if !rec.Registered {
		t.Error("expected participant to be registered via email match")
	}
	if !rec.Delegate {
		t.Error("expected participant to be a delegate via email match")
	}
	if len(rec.Trace) != 2 {
		t.Fatalf("Trace = %v, want two entries", rec.Trace)
	}
	if !strings.HasPrefix(rec.Trace[0], "Registered: Zoom email 'jsmith@example.com'") {
		t.Errorf("Trace[0] = %q, want email registration citation", rec.Trace[0])
	}
	if !strings.HasPrefix(rec.Trace[1], "Delegate: Zoom email 'jsmith@example.com'") {
		t.Errorf("Trace[1] = %q, want email delegate citation", rec.Trace[1])
	}
}

func TestReconcileNameMatchWithGroupRefinement(t *testing.T) {
	// No group in the display name and no email match: the registrant row
	// is found by name containment and supplies the local group.
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "Mary Davis",
		Email:       "mary.personal@example.org",
	}, Config{})

	if !rec.Registered {
		t.Fatal("expected registration via name containment")
	}
	if rec.LocalGroup != "Canada Bay Greens" {
		t.Errorf("LocalGroup = %q, want registrant-supplied %q", rec.LocalGroup, "Canada Bay Greens")
	}
	if rec.Delegate {
		t.Error("expected observer, no delegate row matches")
	}
	if len(rec.Trace) != 2 {
		t.Fatalf("Trace = %v, want name match plus group refinement", rec.Trace)
	}
	if !strings.HasPrefix(rec.Trace[0], "Registered: Zoom name 'mary davis'") {
		t.Errorf("Trace[0] = %q, want name registration citation", rec.Trace[0])
	}
	if !strings.Contains(rec.Trace[1], "Canada Bay Greens") {
		t.Errorf("Trace[1] = %q, want group refinement citation", rec.Trace[1])
	}
}

func TestReconcileRegistrantGroupOverridesGuess(t *testing.T) {
	// The display name suggests Kiama, but the matched registrant record
	// says Canada Bay; the registrant-supplied group takes precedence.
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "Kiama Mary Davis",
		Email:       "mdavis@example.com",
	}, Config{})

	if rec.LocalGroup != "Canada Bay Greens" {
		t.Errorf("LocalGroup = %q, want %q", rec.LocalGroup, "Canada Bay Greens")
	}
}

func TestReconcileSquashedGroupName(t *testing.T) {
	// Group typed without spaces still matches, and the registrant is
	// found even though the group token cannot be stripped from the
	// residual name.
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "bluemountains Bob Brown",
		Email:       "",
	}, Config{})

	if rec.LocalGroup != "Blue Mountains Greens" {
		t.Errorf("LocalGroup = %q, want %q", rec.LocalGroup, "Blue Mountains Greens")
	}
	if !rec.Registered {
		t.Error("expected registration via name containment")
	}
}

func TestReconcileDelegateGate(t *testing.T) {
	// Alice is on the delegate list but not registered, and her email does
	// not match the delegate record. By default the delegate name match is
	// gated on registration.
	p := roster.Participant{DisplayName: "Alice Wong", Email: "wrong@example.net"}

	rec := reconcileOne(t, p, Config{})
	if rec.Delegate {
		t.Error("expected observer: delegate name-matching is gated on registration")
	}

	rec = reconcileOne(t, p, Config{DelegatesNotRegistered: true})
	if !rec.Delegate {
		t.Fatal("expected delegate match with DelegatesNotRegistered set")
	}
	if rec.LocalGroup != "Canada Bay Greens" {
		t.Errorf("LocalGroup = %q, want delegate-supplied fallback %q", rec.LocalGroup, "Canada Bay Greens")
	}
}

func TestReconcileDelegateEmailIgnoresGate(t *testing.T) {
	// Email-based delegate matching runs regardless of registration.
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "A W",
		Email:       "alice@example.com",
	}, Config{})

	if rec.Registered {
		t.Error("expected unregistered participant")
	}
	if !rec.Delegate {
		t.Error("expected delegate via email match despite no registration")
	}
}

func TestReconcileNoMatch(t *testing.T) {
	rec := reconcileOne(t, roster.Participant{
		DisplayName: "Mystery Guest",
		Email:       "ghost@example.net",
	}, Config{})

	if rec.LocalGroup != roster.UnknownGroup {
		t.Errorf("LocalGroup = %q, want %q", rec.LocalGroup, roster.UnknownGroup)
	}
	if rec.Registered || rec.Delegate {
		t.Error("expected unregistered observer")
	}
	if rec.MatchRule() != roster.NoMatchFound {
		t.Errorf("MatchRule() = %q, want %q", rec.MatchRule(), roster.NoMatchFound)
	}
}

func TestReconcileDeterministicAndOrdered(t *testing.T) {
	participants := []roster.Participant{
		{DisplayName: "Mystery Guest"},
		{DisplayName: "John Smith (he/him) Kiama", Email: "jsmith@example.com"},
		{DisplayName: "Mary Davis", Email: "mdavis@example.com"},
	}

	first := Reconcile(context.Background(), participants, testRegistrants, testDelegates, testGroups, Config{})
	second := Reconcile(context.Background(), participants, testRegistrants, testDelegates, testGroups, Config{})

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different records")
	}
	for i, rec := range first {
		if rec.DisplayName != participants[i].DisplayName {
			t.Errorf("record %d = %q, want input order preserved (%q)",
				i, rec.DisplayName, participants[i].DisplayName)
		}
	}
}

func TestReconcileEmptyResidualDoesNotMatchEveryone(t *testing.T) {
	// A display name that is nothing but a group token leaves an empty
	// residual; containment of an empty string would match every row, so
	// the name stages must skip it.
	rec := reconcileOne(t, roster.Participant{DisplayName: "Kiama"}, Config{DelegatesNotRegistered: true})

	if rec.LocalGroup != "Kiama Greens" {
		t.Errorf("LocalGroup = %q, want %q", rec.LocalGroup, "Kiama Greens")
	}
	if rec.Registered || rec.Delegate {
		t.Error("empty residual must not match registrants or delegates")
	}
}
