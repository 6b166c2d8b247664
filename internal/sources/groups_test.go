package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGroupsText(t *testing.T) {
	path := writeFile(t, "groups.txt", "Kiama Greens\n\n  Canada Bay Greens  \nLismore\n")

	groups, err := LoadGroups(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kiama Greens", "Canada Bay Greens", "Lismore"}, groups,
		"blank lines skipped, order preserved")
}

func TestLoadGroupsYAML(t *testing.T) {
	path := writeFile(t, "groups.yaml", "- Kiama Greens\n- Canada Bay Greens\n- \"\"\n")

	groups, err := LoadGroups(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kiama Greens", "Canada Bay Greens"}, groups)
}

func TestLoadGroupsYAMLInvalid(t *testing.T) {
	path := writeFile(t, "groups.yml", "not: a\nlist: here\n")

	_, err := LoadGroups(path)
	require.Error(t, err)
}
