package reconcile

import (
	"fmt"
	"strings"

	"github.com/meetingworks/rollcall/pkg/roster"
)

// normalizeEmail prepares an email address for equality comparison. Email
// comparisons are always case-insensitive and whitespace-trimmed.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// matchRegistration decides the participant's registration status against
// the registrant table, scanned in input order with first match wins.
//
// The first attempt compares the participant's email against each
// registrant's billing email. If that fails, the second attempt runs a
// bidirectional containment test between the participant's residual name
// and each registrant's normalized full name. Whichever row matched may
// also refine the participant's local group: a registrant-supplied group
// overwrites the one guessed from the display name.
//
// No match leaves the annotation untouched. The absence of a registration
// trace entry is itself meaningful and surfaces later as "No Match Found"
// when no other stage matched either.
func (a *annotation) matchRegistration(email string, registrants []roster.Registrant) {
	var matched *roster.Registrant

	if e := normalizeEmail(email); e != "" {
		for i := range registrants {
			if normalizeEmail(registrants[i].BillingEmail) == e {
				matched = &registrants[i]
				a.registered = true
				a.trace = append(a.trace, fmt.Sprintf(
					"Registered: Zoom email '%s' == Billing-Email '%s'", e, registrants[i].BillingEmail))
				break
			}
		}
	}

	if matched == nil {
		residual := squash(a.residual)
		if residual != "" {
			for i := range registrants {
				name := squash(Normalize(registrants[i].FirstName + registrants[i].LastName))
				if name == "" {
					continue
				}
				if containsEither(name, residual) {
					matched = &registrants[i]
					a.registered = true
					a.trace = append(a.trace, fmt.Sprintf(
						"Registered: Zoom name '%s' ~ registrant '%s, %s'",
						a.residual, registrants[i].LastName, registrants[i].FirstName))
					break
				}
			}
		}
	}

	if matched != nil && matched.LocalGroup != "" {
		a.group = matched.LocalGroup
		a.trace = append(a.trace, fmt.Sprintf(
			"Group: registrant record lists local group '%s'", matched.LocalGroup))
	}
}
