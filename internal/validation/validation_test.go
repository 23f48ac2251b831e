package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"first.last@example.co",
		"under_score@sub.domain.org",
		"dash-ed@my-host.io",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user@example.toolong",
		"user name@example.com",
		" user@example.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Ana"))
	assert.True(t, ValidName("  Bob  "))
	assert.False(t, ValidName("Al"))
	assert.False(t, ValidName("  a  "))
	assert.False(t, ValidName(""))
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.False(t, NotBlank("   "))
	assert.False(t, NotBlank(""))
}
