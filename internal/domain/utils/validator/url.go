package validator

import (
	"net/url"

	playground "github.com/go-playground/validator/v10"
)

var validate = playground.New()

// URL reports whether candidate is a well-formed URL with a scheme and a host
func URL(candidate string) bool {
	if validate.Var(candidate, "required,url") != nil {
		return false
	}

	// the url tag also passes opaque ("foo:bar") and fragment-only forms
	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return false
	}
	return validate.Var(u.Hostname(), "required,hostname_rfc1123|ip") == nil
}
