// Package share builds the outbound payloads for the messaging targets.
// The app only supplies text and links; actually opening the target is up
// to whatever consumes them.
package share

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds a wa.me click-to-chat URL carrying the given text.
func WhatsAppLink(text string) string {
	// wa.me decodes %20, not '+', for spaces.
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/?text=" + encoded
}
