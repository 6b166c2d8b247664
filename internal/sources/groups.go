package sources

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/meetingworks/rollcall/pkg/errors"
)

// LoadGroups reads the ordered list of local group display names. A file
// ending in .yaml or .yml is parsed as a YAML list of strings; anything
// else is read as plain text, one group per line. Blank lines are skipped
// and list order is preserved, because lookup tie-breaks depend on it.
func LoadGroups(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadGroupsYAML(path)
	default:
		return loadGroupsText(path)
	}
}

func loadGroupsText(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	var groups []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			groups = append(groups, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return groups, nil
}

func loadGroupsYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var groups []string
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	out := groups[:0]
	for _, g := range groups {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out, nil
}
