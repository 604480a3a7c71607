package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "Added subject: Math (5h/week)", StripMarkup("Added subject: **Math** (*5h/week*)"))
	assert.Equal(t, "Task a1b2c3 done", StripMarkup("Task `a1b2c3` done"))
	assert.Equal(t, "plain text", StripMarkup("plain text"))
}

func TestRenderMarkup_PlainPassthrough(t *testing.T) {
	// Without markers the text must come back unchanged regardless of the
	// terminal profile in use.
	assert.Equal(t, "no markers here", StripMarkup(RenderMarkup("no markers here")))
}

func TestRenderMarkup_BoldBeforeItalic(t *testing.T) {
	// A ** pair must not be consumed as two empty italics.
	out := StripMarkup(RenderMarkup("**bold** and *italic*"))
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "italic")
}
