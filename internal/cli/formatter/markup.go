package formatter

import "regexp"

// The planner speaks in lightweight inline markup: **bold**, *italic* and
// `code` spans. The chat surface renders those with lipgloss; everything
// else passes through untouched.
var (
	boldRe   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*]+)\*`)
	codeRe   = regexp.MustCompile("`([^`]+)`")
)

// RenderMarkup converts the planner's inline markers to terminal styles.
// Bold is resolved before italic so ** pairs are not eaten as two italics.
func RenderMarkup(text string) string {
	out := boldRe.ReplaceAllStringFunc(text, func(m string) string {
		return StyleBold.Render(boldRe.FindStringSubmatch(m)[1])
	})
	out = italicRe.ReplaceAllStringFunc(out, func(m string) string {
		return StyleItalic.Render(italicRe.FindStringSubmatch(m)[1])
	})
	out = codeRe.ReplaceAllStringFunc(out, func(m string) string {
		return StylePurple.Render(codeRe.FindStringSubmatch(m)[1])
	})
	return out
}

// StripMarkup removes the inline markers without styling, for plain-text
// sinks like the PDF export.
func StripMarkup(text string) string {
	out := boldRe.ReplaceAllString(text, "$1")
	out = italicRe.ReplaceAllString(out, "$1")
	out = codeRe.ReplaceAllString(out, "$1")
	return out
}
