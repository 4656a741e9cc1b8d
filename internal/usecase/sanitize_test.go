package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStringStripsInjectionPatterns(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "click", SanitizeString("javascript:click"))
	assert.Equal(t, `img src=x `, SanitizeString(`img src=x onerror=`))
	assert.Equal(t, "Jane", SanitizeString("  Jane  "))
}

func TestSanitizeStringTruncates(t *testing.T) {
	long := strings.Repeat("a", 2000)
	assert.Len(t, SanitizeString(long), 1000)
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "jane@acme.com", SanitizeEmail("  Jane@Acme.COM  "))
	assert.Equal(t, "jane@acme.com", SanitizeEmail("ja ne@acme.com!"))
}

func TestSanitizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+1 (555) 123-4567", SanitizePhoneNumber("+1 (555) 123-4567abc"))
}

func TestSanitizeURL(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/jane", SanitizeURL("https://linkedin.com/in/jane"))
	assert.Equal(t, "", SanitizeURL("not-a-url"))
	assert.Equal(t, "", SanitizeURL("ftp://example.com/x"))
	assert.Equal(t, "", SanitizeURL("javascript:alert(1)"))
}

func TestSanitizeSubmissionIdempotentOnCleanInput(t *testing.T) {
	clean := WaitlistSubmission{
		Email:           "jane@acme.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		Company:         "Acme",
		Role:            "Chief Executive Officer",
		CompanySize:     "fortune500",
		PhoneNumber:     "+1 (555) 123-4567",
		LinkedinProfile: "https://linkedin.com/in/janedoe",
		TermsAccepted:   true,
		PrivacyAccepted: true,
	}

	once := SanitizeSubmission(clean)
	twice := SanitizeSubmission(once)

	assert.Equal(t, clean, once)
	assert.Equal(t, once, twice)
}
