package reconcile

import (
	"fmt"

	"github.com/meetingworks/rollcall/pkg/roster"
)

// matchDelegate decides the participant's delegate status against the
// delegate table, scanned in input order with first match wins.
//
// The email attempt always runs. The name containment attempt is gated on
// the participant already being registered, unless the
// DelegatesNotRegistered option relaxes that gate. A bare name match for
// someone with no registration record is usually a false positive.
//
// A matching delegate row backfills the local group only when it is still
// unknown; a group identified earlier (display name or registrant record)
// is never overwritten here.
func (a *annotation) matchDelegate(email string, delegates []roster.Delegate, cfg Config) {
	if e := normalizeEmail(email); e != "" {
		for i := range delegates {
			if normalizeEmail(delegates[i].Email) == e {
				a.delegate = true
				a.trace = append(a.trace, fmt.Sprintf(
					"Delegate: Zoom email '%s' == Delegate email '%s'", e, delegates[i].Email))
				a.backfillGroup(delegates[i].LocalGroup)
				return
			}
		}
	}

	if !a.registered && !cfg.DelegatesNotRegistered {
		return
	}

	residual := squash(a.residual)
	if residual == "" {
		return
	}
	for i := range delegates {
		name := squash(Normalize(delegates[i].FullName))
		if name == "" {
			continue
		}
		if containsEither(name, residual) {
			a.delegate = true
			a.trace = append(a.trace, fmt.Sprintf(
				"Delegate: Zoom name '%s' ~ Delegate name '%s'", a.residual, delegates[i].FullName))
			a.backfillGroup(delegates[i].LocalGroup)
			return
		}
	}
}

// backfillGroup adopts a delegate row's local group when the participant's
// group is still unknown.
func (a *annotation) backfillGroup(group string) {
	if a.group == roster.UnknownGroup && group != "" {
		a.group = group
	}
}
