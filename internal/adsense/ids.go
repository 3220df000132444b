package adsense

import "regexp"

var (
	publisherIDPattern = regexp.MustCompile(`^pub-\d{16}$`)
	slotIDPattern      = regexp.MustCompile(`^\d{10}$`)
)

// IsPublisherID reports whether v looks like an AdSense publisher id
// ("pub-" followed by sixteen digits). The empty string is never valid.
func IsPublisherID(v string) bool {
	return publisherIDPattern.MatchString(v)
}

// IsSlotID reports whether v looks like an AdSense ad slot id (ten digits).
func IsSlotID(v string) bool {
	return slotIDPattern.MatchString(v)
}
