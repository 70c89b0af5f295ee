package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_TableTest(t *testing.T) {
	tests := []struct {
		name string
		in   string
		safe string
		want string
	}{
		{"plain path", "a", SubPathSafe, "a"},
		{"space", "b c", SubPathSafe, "b%20c"},
		{"safe characters kept", "/path/to?x=1&y=2:3", SubPathSafe, "/path/to?x=1&y=2:3"},
		{"unreserved kept", "A-z_0.9~", SubPathSafe, "A-z_0.9~"},
		{"percent escaped", "already%20encoded", SubPathSafe, "already%2520encoded"},
		{"reserved escaped", "#frag+plus,comma;semi@at", SubPathSafe, "%23frag%2Bplus%2Ccomma%3Bsemi%40at"},
		{"utf-8 bytes", "订阅.yaml", SubPathSafe, "%E8%AE%A2%E9%98%85.yaml"},
		{"empty safe escapes slash", "a/b", "", "a%2Fb"},
		{"empty input", "", SubPathSafe, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in, tt.safe))
		})
	}
}
