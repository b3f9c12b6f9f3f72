package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReturnTo(t *testing.T) {
	cases := map[string]string{
		"":                         "/",
		"/cart":                    "/cart",
		"/products?page=2":         "/products?page=2",
		"//evil.example.com":       "/",
		"https://evil.example.com": "/",
		"javascript:alert(1)":      "/",
		"cart":                     "/",
		"  /orders  ":              "/orders",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeReturnTo(in), "input %q", in)
	}
}
