package share

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("CLUB SHEET\nActive members: 2")

	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("unexpected prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Errorf("spaces must be %%20-encoded, got %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := u.Query().Get("text"); got != "CLUB SHEET\nActive members: 2" {
		t.Errorf("text round-trip = %q", got)
	}
}
