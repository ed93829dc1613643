// Package term renders collections and summaries as terminal output.
package term

// Banner holds the single transient status message. Errors do not stack or
// queue: the most recent failure replaces whatever was shown, and any
// success clears it.
type Banner struct {
	message string
}

// Fail replaces the banner with a failure message.
func (b *Banner) Fail(message string) {
	b.message = message
}

// Clear removes the banner, called after every successful operation.
func (b *Banner) Clear() {
	b.message = ""
}

// Current returns the active message, empty when nothing failed since the
// last success.
func (b *Banner) Current() string {
	return b.message
}
