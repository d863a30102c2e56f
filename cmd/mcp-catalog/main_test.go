package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mcp-catalog/internal/search"
	"github.com/pdiddy/mcp-catalog/pkg/types"
)

func TestExportPath(t *testing.T) {
	tests := []struct {
		catalog string
		format  string
		want    string
	}{
		{"public/data/servers.json", "yaml", "public/data/servers.yaml"},
		{"public/data/servers.json", "", "public/data/servers.yaml"},
		{"public/data/servers.json", "json", "public/data/servers.export.json"},
		{"catalog", "yaml", "catalog.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.catalog+"/"+tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, exportPath(tt.catalog, tt.format))
		})
	}
}

func TestFormatSearchOutputJSON(t *testing.T) {
	results := []search.Result{{
		Record: types.Record{ID: 1, Name: "a", URL: "https://x", Description: "<tag>", Type: "T"},
		Score:  7,
	}}

	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, results, true))
	assert.Contains(t, buf.String(), `"<tag>"`)

	var decoded []struct {
		Record types.Record `json:"record"`
		Score  int          `json:"score"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, 7, decoded[0].Score)
	assert.Equal(t, "a", decoded[0].Record.Name)
}

func TestFormatSearchOutputJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, nil, true))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatSearchOutputTable(t *testing.T) {
	results := []search.Result{{
		Record: types.Record{ID: 42, Name: "pg-mcp", Language: types.LanguagePython, Type: "Databases", HostingType: types.HostingSelfHosted, Description: strings.Repeat("x", 100)},
		Score:  3,
	}}

	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, results, false))

	out := buf.String()
	assert.Contains(t, out, "pg-mcp")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 61))
	assert.Contains(t, out, "1 results")
}

func TestFormatSearchOutputNoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatSearchOutput(&buf, nil, false))
	assert.Equal(t, "No results found.\n", buf.String())
}
