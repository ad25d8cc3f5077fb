package utils

import (
	"strings"

	ua "github.com/mileusna/useragent"
)

// ParseClient extracts browser, OS and device type from a User-Agent string
// for request logging.
func ParseClient(userAgent string) (browser, os, device string) {
	if userAgent == "" {
		return "Unknown Browser", "Unknown OS", "Desktop"
	}

	parsedUA := ua.Parse(userAgent)

	browser = parsedUA.Name
	if browser == "" {
		browser = "Unknown Browser"
	}

	os = parsedUA.OS
	if os == "" {
		os = "Unknown OS"
	}

	device = "Desktop"
	if parsedUA.Mobile {
		device = "Mobile"
	} else if parsedUA.Tablet {
		device = "Tablet"
	} else if parsedUA.Bot {
		device = "Bot"
	}

	return strings.TrimSpace(browser), strings.TrimSpace(os), device
}
