package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fableshell/internal/output"
)

func TestLoad_EmbeddedThemes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name())
			assert.True(t, th.IsAvailable())
		})
	}
}

func TestLoad_UnknownTheme(t *testing.T) {
	_, err := Load("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestDefault(t *testing.T) {
	th := Default()
	assert.Equal(t, "default", th.Name())
	// Undefined semantics get a usable empty style rather than nil.
	assert.NotNil(t, th.GetStyle(output.SemanticType("unknown")))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "plain"}, Names())
}

func TestParse_BadYAML(t *testing.T) {
	_, err := parse([]byte("{not yaml"))
	assert.Error(t, err)
}
