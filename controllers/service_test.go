package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Classic Haircut", "classic-haircut"},
		{"Premium Color Treatment", "premium-color-treatment"},
		{"  Box   Braids  ", "box-braids"},
		{"Keratin Treatment", "keratin-treatment"},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, ServiceSlug(tt.name))
	}
}
