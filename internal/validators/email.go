package validators

import "strings"

// HasEmailShape is a cheap syntactic check used before hitting the unique
// index: one @, non-empty local part, a dot somewhere in the domain.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
