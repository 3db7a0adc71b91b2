package validation

import "regexp"

// Validation rule patterns
var (
	// Operator username: 3-32 chars, lowercase alphanumeric plus ._-
	UsernamePattern = `^[a-z0-9._\-]{3,32}$`

	// Password min length for operator accounts
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username *regexp.Regexp
}{
	Username: regexp.MustCompile(UsernamePattern),
}

// ValidUsername reports whether a username matches the operator naming rule.
func ValidUsername(username string) bool {
	return CompiledPatterns.Username.MatchString(username)
}

// ValidPassword reports whether a password meets the minimum length.
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}
