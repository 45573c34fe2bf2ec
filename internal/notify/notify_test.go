package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalNotify(t *testing.T) {
	var sb strings.Builder
	term := NewTerminal(&sb)

	term.Notify("item added", SeveritySuccess)
	term.Notify("quantity updated", SeverityInfo)
	term.Notify("request failed", SeverityError)

	out := sb.String()
	require.Contains(t, out, "item added")
	require.Contains(t, out, "quantity updated")
	require.Contains(t, out, "request failed")
	require.Equal(t, 3, strings.Count(out, "\n"))
}
