package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNames(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Kelce, Lamb", []string{"Kelce", "Lamb"}},
		{"Chase", []string{"Chase"}},
		{" a , , b ", []string{"a", "b"}},
		{"", nil},
		{" , ", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, splitNames(tt.in), tt.in)
	}
}
