package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/indiekitai/env-audit/internal/audit/types"
)

func TestCategorize(t *testing.T) {
	cases := map[string]string{
		"DATABASE_URL":      "database",
		"POSTGRES_PASSWORD": "database", // database outranks auth
		"JWT_SECRET":        "auth",
		"AUTH_API_URL":      "auth", // auth outranks api
		"API_BASE_URL":      "api",
		"AWS_REGION":        "cloud",
		"SMTP_HOST":         "api", // HOST matches before the email rules
		"EMAIL_SENDER":      "email",
		"LOG_LEVEL":         "logging",
		"FEATURE_SIGNUP":    "feature",
		"WORKER_COUNT":      "general",
	}

	for name, want := range cases {
		assert.Equal(t, want, types.Categorize(name), "category of %s", name)
	}
}

func TestIsSensitive(t *testing.T) {
	assert.True(t, types.IsSensitive("API_SECRET", nil))
	assert.True(t, types.IsSensitive("DB_PASSWORD", nil))
	assert.True(t, types.IsSensitive("AWS_SECRET_ACCESS_KEY", nil))
	assert.True(t, types.IsSensitive("GITHUB_TOKEN", nil))

	assert.False(t, types.IsSensitive("NODE_ENV", nil))
	assert.False(t, types.IsSensitive("LOG_LEVEL", nil))

	// Extra keywords widen the match but never shrink it
	assert.True(t, types.IsSensitive("INTERNAL_DSN", []string{"DSN"}))
	assert.False(t, types.IsSensitive("INTERNAL_DSN", nil))
}

func TestValidName(t *testing.T) {
	assert.True(t, types.ValidName("DATABASE_URL"))
	assert.True(t, types.ValidName("_PRIVATE"))
	assert.True(t, types.ValidName("HTTP2_ENABLED"))

	assert.False(t, types.ValidName(""))
	assert.False(t, types.ValidName("2FA_CODE"))
	assert.False(t, types.ValidName("MY-VAR"))
	assert.False(t, types.ValidName("A B"))
}

func TestShouldIgnore(t *testing.T) {
	assert.True(t, types.ShouldIgnore("HOME"))
	assert.True(t, types.ShouldIgnore("NC"))
	assert.True(t, types.ShouldIgnore("DB")) // too short to be real config

	assert.False(t, types.ShouldIgnore("DATABASE_URL"))
}

func TestDescribeIsDeterministic(t *testing.T) {
	assert.Equal(t, "Database connection string", types.Describe("DATABASE_URL"))
	assert.Equal(t, "Webhook Retry Limit configuration", types.Describe("WEBHOOK_RETRY_LIMIT"))
	assert.Equal(t, types.Describe("CUSTOM_SETTING"), types.Describe("CUSTOM_SETTING"))
}

func TestExampleValue(t *testing.T) {
	def := "5432"
	assert.Equal(t, "5432", types.ExampleValue("DB_PORT", &def))
	assert.Equal(t, "8080", types.ExampleValue("LISTEN_PORT", nil))
	assert.Equal(t, "your-secret-here", types.ExampleValue("SIGNING_KEY", nil))
	assert.Equal(t, "", types.ExampleValue("MISC_SETTING", nil))
}
