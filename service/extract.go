package service

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	orderIDPattern = regexp.MustCompile(`(?i)\bORD-\d+\b`)
)

// ExtractEntities pulls an email address and an order identifier out of free
// text. Either result may be empty; absence is not an error. Order ids are
// normalized to upper case, email case is preserved.
func ExtractEntities(query string) (email, orderID string) {
	if m := emailPattern.FindString(query); m != "" {
		email = m
	}
	if m := orderIDPattern.FindString(query); m != "" {
		orderID = strings.ToUpper(m)
	}
	return email, orderID
}
