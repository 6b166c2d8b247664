package reconcile

import (
	"strings"

	"github.com/meetingworks/rollcall/pkg/roster"
)

// matchGroup guesses a participant's local group from their normalized
// display name. The first pass scans lookup entries in insertion order for
// a whole-word occurrence of the key; the second pass retries with all
// spaces removed from both sides, which catches group names typed without
// spaces ("southernhighlands"). It returns the group display name and the
// canonical key that matched, or roster.UnknownGroup and an empty key.
func matchGroup(normalizedName string, lookup *GroupLookup) (group, key string) {
	for _, e := range lookup.entries {
		if e.key == "" {
			continue
		}
		if containsWord(normalizedName, e.key) {
			return e.group, e.key
		}
	}

	squashed := squash(normalizedName)
	for _, e := range lookup.entries {
		if e.key == "" {
			continue
		}
		if squashed != "" && strings.Contains(squashed, squash(e.key)) {
			return e.group, e.key
		}
	}

	return roster.UnknownGroup, ""
}
