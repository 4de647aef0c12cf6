package types

import "strings"

// Keywords that mark a variable as holding secret material.
var sensitiveKeywords = []string{
	"SECRET", "KEY", "PASSWORD", "TOKEN", "CREDENTIAL", "PRIVATE", "AUTH",
}

// Category rules in priority order: the first category whose keyword list
// matches wins, so AUTH_API_URL is "auth" even though it also matches "api".
var categoryRules = []struct {
	Name     string
	Keywords []string
}{
	{"database", []string{"DATABASE", "DB_", "POSTGRES", "MYSQL", "MONGO", "REDIS"}},
	{"auth", []string{"AUTH", "JWT", "SECRET", "TOKEN", "PASSWORD", "API_KEY"}},
	{"api", []string{"API_", "ENDPOINT", "URL", "HOST", "PORT"}},
	{"cloud", []string{"AWS_", "GCP_", "AZURE_", "S3_"}},
	{"email", []string{"SMTP", "EMAIL", "MAIL", "SENDGRID"}},
	{"logging", []string{"LOG_", "DEBUG", "SENTRY"}},
	{"feature", []string{"FEATURE_", "ENABLE_", "DISABLE_", "FLAG_"}},
}

// CategoryOrder is the fixed section order used by renderers.
var CategoryOrder = []string{
	"database", "auth", "api", "cloud", "email", "logging", "feature", "general",
}

// Shell builtins and common script-local names that are never application
// configuration.
var ignoredVars = map[string]bool{
	"HOME": true, "PATH": true, "USER": true, "SHELL": true, "PWD": true,
	"TERM": true, "LANG": true, "LC_ALL": true,
	"BASH_SOURCE": true, "BASH_LINENO": true, "FUNCNAME": true, "LINENO": true,
	"RANDOM": true, "SECONDS": true, "IFS": true, "PS1": true, "PS2": true,
	"PS4": true, "OLDPWD": true, "HOSTNAME": true, "HOSTTYPE": true,
	"OSTYPE": true, "UID": true, "EUID": true, "GROUPS": true, "PPID": true,
	"SHELLOPTS": true, "BASHOPTS": true,
	// Color codes in scripts
	"RED": true, "GREEN": true, "YELLOW": true, "BLUE": true, "PURPLE": true,
	"CYAN": true, "WHITE": true, "NC": true, "RESET": true, "BOLD": true,
	// Common script variables
	"SCRIPT_DIR": true, "PROJECT_ROOT": true, "DIR": true, "ROOT": true,
	"BASE_DIR": true,
}

// IsSensitive reports whether the name suggests secret material. The extra
// keywords come from repo-local configuration and only ever widen the match.
func IsSensitive(name string, extra []string) bool {
	upper := strings.ToUpper(name)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	for _, kw := range extra {
		if kw != "" && strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

// Categorize assigns the highest-priority matching category, or "general".
func Categorize(name string) string {
	upper := strings.ToUpper(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(upper, kw) {
				return rule.Name
			}
		}
	}
	return "general"
}

// ShouldIgnore reports whether a matched name is a known false positive:
// shell builtins, script-local helper names, or names too short to be real
// configuration.
func ShouldIgnore(name string) bool {
	return len(name) < 3 || ignoredVars[name]
}

// ValidName reports whether name conforms to the identifier grammar:
// letters, digits and underscores, not starting with a digit.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
