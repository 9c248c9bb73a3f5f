// Package fetch - platform.go provides form platform detection.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known form hosting platform.
type Platform string

const (
	// PlatformGoogleForms is Google Forms
	PlatformGoogleForms Platform = "google-forms"
	// PlatformMicrosoftForms is Microsoft Forms
	PlatformMicrosoftForms Platform = "microsoft-forms"
	// PlatformGreenhouse is the Greenhouse ATS application page
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS application page
	PlatformLever Platform = "lever"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the form hosting platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	path := strings.ToLower(parsed.Path)

	// Google Forms patterns
	if strings.Contains(host, "docs.google.com") && strings.Contains(path, "/forms/") {
		return PlatformGoogleForms
	}
	if strings.Contains(host, "forms.gle") {
		return PlatformGoogleForms
	}

	// Microsoft Forms patterns
	if strings.Contains(host, "forms.office.com") ||
		strings.Contains(host, "forms.microsoft.com") {
		return PlatformMicrosoftForms
	}

	// Greenhouse patterns
	if strings.Contains(host, "greenhouse.io") {
		return PlatformGreenhouse
	}

	// Lever patterns
	if strings.Contains(host, "lever.co") {
		return PlatformLever
	}

	return PlatformUnknown
}

// NeedsBrowser reports whether the platform renders its form controls from
// JavaScript, making a static HTTP fetch useless.
func NeedsBrowser(platform Platform) bool {
	switch platform {
	case PlatformMicrosoftForms:
		return true
	default:
		return false
	}
}
