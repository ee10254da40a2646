package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid is a syntactic check only. Deliverability is the mail
// provider's problem; registration must not depend on live DNS.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".")
}
