package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a domain part that resolves
// to either an MX or an A/AAAA record. It is a liveness check, not a full
// RFC 5322 validation.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
