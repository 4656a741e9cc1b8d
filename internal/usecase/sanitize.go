package usecase

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	angleBracketsRe = regexp.MustCompile(`[<>]`)
	jsSchemeRe      = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe  = regexp.MustCompile(`(?i)on\w+=`)
	emailCharsRe    = regexp.MustCompile(`[^a-z0-9@._-]`)
	phoneCharsRe    = regexp.MustCompile(`[^\d+()\-.\s]`)
)

// SanitizeString strips markup and script-injection patterns from free text.
func SanitizeString(input string) string {
	s := strings.TrimSpace(input)
	s = angleBracketsRe.ReplaceAllString(s, "")
	s = jsSchemeRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	return truncate(s, 1000)
}

// SanitizeEmail lowercases and restricts to the RFC-safe character class.
func SanitizeEmail(email string) string {
	s := strings.ToLower(strings.TrimSpace(email))
	s = emailCharsRe.ReplaceAllString(s, "")
	return truncate(s, 254) // RFC 5321 limit
}

func SanitizePhoneNumber(phone string) string {
	s := phoneCharsRe.ReplaceAllString(phone, "")
	return truncate(strings.TrimSpace(s), 20)
}

// SanitizeURL accepts only absolute http/https URLs. Anything else becomes
// the empty string, so a garbage optional URL turns into an absent field at
// storage time rather than a stored attack vector.
func SanitizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

// SanitizeSubmission returns a cleaned copy of the form. Pure transform, no
// I/O. The LinkedIn URL keeps the string-level cleanup only: the validator
// still needs to see a malformed value to reject it, and SanitizeURL is
// applied again when the stored projection is built.
func SanitizeSubmission(data WaitlistSubmission) WaitlistSubmission {
	out := data
	out.Email = SanitizeEmail(data.Email)
	out.FirstName = SanitizeString(data.FirstName)
	out.LastName = SanitizeString(data.LastName)
	out.Company = SanitizeString(data.Company)
	out.Role = SanitizeString(data.Role)
	out.Industry = SanitizeString(data.Industry)
	out.CTAClicked = SanitizeString(data.CTAClicked)
	if data.PhoneNumber != "" {
		out.PhoneNumber = SanitizePhoneNumber(data.PhoneNumber)
	}
	if data.LinkedinProfile != "" {
		out.LinkedinProfile = SanitizeString(data.LinkedinProfile)
	}
	// CompanySize is matched against the closed enum by the validator,
	// consent flags and counters pass through untouched.
	return out
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// CompanyDomain extracts the lowercase domain part of an email address.
func CompanyDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
