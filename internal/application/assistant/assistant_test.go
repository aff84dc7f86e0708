package assistant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistant_Respond(t *testing.T) {
	a := New()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"incident keyword", "How do I report an incident?", "Security incidents can be viewed and added on the incidents endpoints."},
		{"keyword is case-insensitive", "TICKET status please", "IT tickets are managed through the tickets endpoints."},
		{"keyword inside a word", "Where are my datasets stored?", "Datasets can be registered and listed through the datasets endpoints."},
		{"second keyword of a rule", "I forgot my password", "Users must log in before accessing platform features."},
		{"no match falls back", "What is the weather like?", defaultFallback},
		{"empty query falls back", "", defaultFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Respond(tt.query))
		})
	}
}

func TestAssistant_FirstMatchWins(t *testing.T) {
	a := New()
	// Query mentions both incidents and tickets; rule order decides.
	reply := a.Respond("should this incident become a ticket?")
	assert.Equal(t, "Security incidents can be viewed and added on the incidents endpoints.", reply)
}

func TestNewFromFile(t *testing.T) {
	t.Run("loads rules and fallback", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "rules.yaml")
		content := `rules:
  - keywords: ["vpn"]
    reply: "See the VPN runbook."
fallback: "Ask the service desk."
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		a, err := NewFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "See the VPN runbook.", a.Respond("my vpn is down"))
		assert.Equal(t, "Ask the service desk.", a.Respond("unrelated"))
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := NewFromFile("/nonexistent/rules.yaml")
		assert.Error(t, err)
	})

	t.Run("empty rule set keeps defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: []\n"), 0o644))

		a, err := NewFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, defaultFallback, a.Respond("unrelated"))
		assert.NotEqual(t, defaultFallback, a.Respond("ticket"))
	})
}

func TestAssistant_RespondHTML(t *testing.T) {
	a := New()
	a.rules = []Rule{{Keywords: []string{"vpn"}, Reply: "See the **VPN** runbook."}}

	html, err := a.RespondHTML("vpn help")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>VPN</strong>")
	assert.NotContains(t, html, "**")
}
