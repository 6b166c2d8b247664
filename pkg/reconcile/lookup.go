package reconcile

import "strings"

// lookupEntry is one canonical key mapped to a group display name.
type lookupEntry struct {
	key   string
	group string
}

// GroupLookup maps canonical keys (cleaned names and initials) to group
// display names. Entries keep insertion order so that matching scans are
// reproducible: earlier groups in the source list, and a group's cleaned
// key before its initials key, take priority. It is built once per run and
// read-only afterwards.
type GroupLookup struct {
	entries []lookupEntry
}

// BuildGroupLookup constructs the lookup from an ordered list of group
// display names. For each group it inserts the normalized, "greens"-suffix
// stripped form of the name, and, when that form has more than one word,
// the concatenated word initials ("Canada Bay Greens" yields both
// "canada bay" and "cb"). A later group whose key collides with an earlier
// one overwrites the earlier mapping in place; no error is raised.
func BuildGroupLookup(groups []string) *GroupLookup {
	l := &GroupLookup{}
	for _, group := range groups {
		cleaned := strings.TrimSpace(strings.TrimSuffix(Normalize(group), " greens"))
		l.put(cleaned, group)

		words := strings.Fields(cleaned)
		if len(words) > 1 {
			var initials strings.Builder
			for _, w := range words {
				initials.WriteRune([]rune(w)[0])
			}
			l.put(initials.String(), group)
		}
	}
	return l
}

// put inserts key -> group, overwriting the value of an existing entry
// without moving it (last write wins, first insertion keeps its position).
func (l *GroupLookup) put(key, group string) {
	for i := range l.entries {
		if l.entries[i].key == key {
			l.entries[i].group = group
			return
		}
	}
	l.entries = append(l.entries, lookupEntry{key: key, group: group})
}

// Len returns the number of entries in the lookup.
func (l *GroupLookup) Len() int {
	return len(l.entries)
}

// Get returns the group mapped to key, if any. Exposed for tests and
// diagnostics; matching uses the ordered scan in matchGroup instead.
func (l *GroupLookup) Get(key string) (string, bool) {
	for _, e := range l.entries {
		if e.key == key {
			return e.group, true
		}
	}
	return "", false
}
