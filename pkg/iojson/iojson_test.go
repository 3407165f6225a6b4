package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Files []string `json:"files" yaml:"files"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		allowed []Format
		want    Format
		wantErr bool
	}{
		{"", nil, FormatText, false},
		{"text", nil, FormatText, false},
		{"json", []Format{FormatJSON}, FormatJSON, false},
		{"yaml", []Format{FormatJSON, FormatYAML}, FormatYAML, false},
		{"yaml", []Format{FormatJSON}, "", true},
		{"xml", []Format{FormatJSON, FormatYAML}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in, tt.allowed...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFormat(t *testing.T) {
	obj := sample{Name: "review-main-develop", Files: []string{"a.go"}}

	t.Run("json", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteFormat(&out, &errOut, FormatJSON, obj))

		var got sample
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, obj, got)
		assert.Empty(t, errOut.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, WriteFormat(&out, &errOut, FormatYAML, obj))
		assert.Equal(t, "name: review-main-develop\nfiles:\n  - a.go\n", out.String())
	})

	t.Run("text", func(t *testing.T) {
		var out, errOut bytes.Buffer
		assert.Error(t, WriteFormat(&out, &errOut, FormatText, obj))
	})
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "error marshaling")
}

func TestMarshalError(t *testing.T) {
	got := MarshalError("not on a review branch", map[string]any{"branch": "main"})

	var doc Error
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.Equal(t, "not on a review branch", doc.Message)
	assert.Equal(t, "main", doc.Data["branch"])
}
