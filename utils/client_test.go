package utils

import "testing"

func TestParseClient(t *testing.T) {
	t.Run("desktop browser", func(t *testing.T) {
		browser, os, device := ParseClient(
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
		if browser != "Chrome" {
			t.Errorf("browser = %q, want Chrome", browser)
		}
		if os != "Windows" {
			t.Errorf("os = %q, want Windows", os)
		}
		if device != "Desktop" {
			t.Errorf("device = %q, want Desktop", device)
		}
	})

	t.Run("empty user agent", func(t *testing.T) {
		browser, os, device := ParseClient("")
		if browser != "Unknown Browser" || os != "Unknown OS" || device != "Desktop" {
			t.Errorf("got %q/%q/%q for empty UA", browser, os, device)
		}
	})

	t.Run("mobile device", func(t *testing.T) {
		_, _, device := ParseClient(
			"Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Mobile/15E148 Safari/604.1")
		if device != "Mobile" {
			t.Errorf("device = %q, want Mobile", device)
		}
	})
}
