package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterfaceNoHandler(t *testing.T) {
	t.Parallel()

	var u Interface

	// Nothing connected: notifications are discarded, not a panic.
	u.NotifyMessage("dropped", Error)
	u.NotifyInit("dropped")
}

func TestInterfaceSingleSubscriber(t *testing.T) {
	t.Parallel()

	var u Interface
	var first, second []string

	u.ConnectMessageHandler(func(text string, sev Severity) {
		first = append(first, text)
	})
	u.NotifyMessage("one", Info)

	// Connecting a new handler replaces the previous one.
	u.ConnectMessageHandler(func(text string, sev Severity) {
		second = append(second, text)
	})
	u.NotifyMessage("two", Warning)

	require.Equal(t, []string{"one"}, first)
	require.Equal(t, []string{"two"}, second)
}

func TestInterfaceInitHandler(t *testing.T) {
	t.Parallel()

	var u Interface
	var got string
	u.ConnectInitHandler(func(text string) { got = text })
	u.NotifyInit("Loading block index...")
	require.Equal(t, "Loading block index...", got)
}
