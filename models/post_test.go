package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", []string{}, []string{}},
		{"no duplicates", []string{"go", "web"}, []string{"go", "web"}},
		{"duplicates removed", []string{"go", "web", "go", "go"}, []string{"go", "web"}},
		{"empty entries dropped", []string{"", "go", ""}, []string{"go"}},
		{"order preserved", []string{"z", "a", "z", "m"}, []string{"z", "a", "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeTags(tt.in))
		})
	}
}
