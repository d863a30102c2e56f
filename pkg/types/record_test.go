package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMarshalKeyOrder(t *testing.T) {
	r := Record{ID: 3, Name: "n", URL: "https://x", Description: "d", Language: LanguageGo, Type: "T", HostingType: HostingCloud}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":3,"name":"n","url":"https://x","description":"d","language":"Go","type":"T","hostingType":"Cloud"}`,
		string(data))
}

func TestRecordTypePresence(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		hasType bool
		typ     string
	}{
		{"present", `{"id":1,"name":"a","url":"u","type":"Tools"}`, true, "Tools"},
		{"empty string", `{"id":1,"name":"a","url":"u","type":""}`, true, ""},
		{"absent", `{"id":1,"name":"a","url":"u"}`, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.hasType, r.HasType())
			assert.Equal(t, tt.typ, r.Type)

			out, err := json.Marshal(r)
			require.NoError(t, err)
			assert.Equal(t, tt.hasType, strings.Contains(string(out), `"type"`))
		})
	}
}

func TestRecordGitHubStats(t *testing.T) {
	r := Record{ID: 1, Name: "a", URL: "u", GitHubStats: &GitHubStats{Stars: 2, Forks: 1, UpdatedAt: "2025-01-01T00:00:00Z"}}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"githubStats":{"stars":2,"forks":1,"updatedAt":"2025-01-01T00:00:00Z"}`)

	r.GitHubStats = nil
	data, err = json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "githubStats")
}

func TestCatalogClone(t *testing.T) {
	c := &Catalog{Servers: []Record{
		{ID: 1, Name: "a", Type: "T", GitHubStats: &GitHubStats{Stars: 1}},
		(Record{ID: 2, Name: "b"}).WithoutType(),
	}}

	clone := c.Clone()
	assert.Equal(t, c, clone)

	clone.Servers[0].Type = "changed"
	clone.Servers[0].GitHubStats.Stars = 99
	assert.Equal(t, "T", c.Servers[0].Type)
	assert.Equal(t, 1, c.Servers[0].GitHubStats.Stars)
	assert.False(t, clone.Servers[1].HasType())
}
