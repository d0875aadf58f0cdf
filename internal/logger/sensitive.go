package logger

import (
	"net/url"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// SensitiveDataPatterns match credentials that must not reach log output
var SensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9-._~+/]+=*)`),
	regexp.MustCompile(`(?i)((api|access|auth|token|secret|key|passw(or)?d)[0-9a-z\-_\.]*[\s:=]+)([^;,&\s]{5,})`),
}

// SensitiveKeywords mark query parameters whose values are redacted
var SensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "auth", "key", "api",
}

// RedactSensitiveData replaces credentials in free text with "[REDACTED]"
func RedactSensitiveData(input string) string {
	if input == "" {
		return input
	}

	for _, pattern := range SensitiveDataPatterns {
		input = pattern.ReplaceAllString(input, "$1"+redacted)
	}

	return input
}

// RedactURL masks user info and sensitive query values of a download URL,
// e.g. the Club Log api key. Unparseable input falls back to RedactSensitiveData.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return RedactSensitiveData(raw)
	}

	if u.User != nil {
		u.User = url.User(redacted)
	}

	query := u.Query()
	changed := false
	for name := range query {
		if isSensitiveKey(name) {
			query.Set(name, redacted)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}

	// url.Values.Encode escapes the brackets
	return strings.ReplaceAll(u.String(), "%5BREDACTED%5D", redacted)
}

func isSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range SensitiveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
