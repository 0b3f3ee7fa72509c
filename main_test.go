package main

import (
	"testing"

	"github.com/freekieb7/pebble/test"
)

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	test.AssertEqual(t, 8081, resolvePort(8081))
	test.AssertEqual(t, defaultPort, resolvePort(0))

	t.Setenv("PORT", "9090")
	test.AssertEqual(t, 9090, resolvePort(0))
	test.AssertEqual(t, 8081, resolvePort(8081)) // flag beats env

	t.Setenv("PORT", "not-a-number")
	test.AssertEqual(t, defaultPort, resolvePort(0))
}
