package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURLList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want URLList
	}{
		{"empty", "", URLList{}},
		{"single", "a", URLList{"a"}},
		{"order preserved", "c,a,b", URLList{"c", "a", "b"}},
		{"segments trimmed", " a , b c ,d ", URLList{"a", "b c", "d"}},
		{"empty segments dropped", ",a,,  ,b,", URLList{"a", "b"}},
		{"only separators", " , ,, ", URLList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseURLList(tt.raw))
		})
	}
}
