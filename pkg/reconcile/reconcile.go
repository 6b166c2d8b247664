// Package reconcile implements the attendance reconciliation engine: it
// matches meeting participants against registration and delegate records to
// produce annotated attendance records with a traceable match rationale.
//
// The engine is a pure, deterministic transformation of four in-memory
// tables plus one configuration flag. All scans preserve input order and
// stop on the first match, so identical inputs, table order included,
// always yield identical output. It performs no file, network, or
// environment access.
package reconcile

import (
	"context"
	"strings"

	"github.com/meetingworks/rollcall/pkg/logging"
	"github.com/meetingworks/rollcall/pkg/roster"
)

// Config holds the reconciliation options.
type Config struct {
	// DelegatesNotRegistered allows delegate name-matching for participants
	// who are not registrants. By default delegate name-matching is gated on
	// prior registration.
	DelegatesNotRegistered bool
}

// annotation is the per-participant state threaded through the matching
// stages. Each participant gets a fresh annotation; no state is shared
// across participants.
type annotation struct {
	normalized string
	residual   string
	group      string
	registered bool
	delegate   bool
	trace      []string
}

// Reconcile runs the three matching stages over every participant, in input
// order, and returns one annotated record per participant in the same
// order. The context is used for logging only; reconciliation itself is
// synchronous and non-blocking.
func Reconcile(ctx context.Context, participants []roster.Participant,
	registrants []roster.Registrant, delegates []roster.Delegate,
	groups []string, cfg Config) []roster.Record {

	log := logging.FromContext(ctx)
	lookup := BuildGroupLookup(groups)
	log.Debug().
		Int("participants", len(participants)).
		Int("registrants", len(registrants)).
		Int("delegates", len(delegates)).
		Int("lookup_keys", lookup.Len()).
		Msg("reconciling attendance")

	records := make([]roster.Record, 0, len(participants))
	for _, p := range participants {
		a := annotate(p, lookup, registrants, delegates, cfg)
		records = append(records, roster.Record{
			DisplayName: p.DisplayName,
			Email:       p.Email,
			LocalGroup:  a.group,
			Registered:  a.registered,
			Delegate:    a.delegate,
			Trace:       a.trace,
		})
	}
	return records
}

// annotate runs the group, registration, and delegate stages for a single
// participant. Stages communicate only through the annotation: the group
// stage seeds the group and residual name, the registration stage may
// refine the group, and the delegate stage may backfill it.
func annotate(p roster.Participant, lookup *GroupLookup,
	registrants []roster.Registrant, delegates []roster.Delegate, cfg Config) *annotation {

	a := &annotation{normalized: Normalize(p.DisplayName)}

	var key string
	a.group, key = matchGroup(a.normalized, lookup)

	// Remove the recognized group token to isolate the personal-name
	// portion for the containment stages.
	a.residual = a.normalized
	if a.group != roster.UnknownGroup {
		a.residual = strings.Join(strings.Fields(strings.Replace(a.normalized, key, "", 1)), " ")
	}

	a.matchRegistration(p.Email, registrants)
	a.matchDelegate(p.Email, delegates, cfg)
	return a
}
