package usecase

import (
	"regexp"
	"strings"

	"github.com/napoleonai/waitlist-api/internal/entity"
)

// FieldValidation is the per-field result surfaced in 400 responses.
type FieldValidation struct {
	Field        string `json:"field"`
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Suggestion   string `json:"suggestion,omitempty"`
}

// FormValidation is the full validator output. Classification and score are
// always populated, even when the form is invalid.
type FormValidation struct {
	IsValid        bool                  `json:"isValid"`
	Errors         map[string]string     `json:"errors"`
	Validations    []FieldValidation     `json:"validations"`
	PriorityScore  int                   `json:"priorityScore"`
	ExecutiveLevel entity.ExecutiveLevel `json:"executiveLevel"`
	CompanyTier    entity.CompanyTier    `json:"companyTier"`
}

var (
	emailShapeRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	digitsRe     = regexp.MustCompile(`\D`)
	linkedinRe   = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/(in|pub)/[\w-]+/?$`)
)

// Job titles that signal executive or senior-management seniority. Signups
// without one of these are rejected outright.
var executiveTitleKeywords = []string{
	"ceo", "cfo", "coo", "cto", "chief", "president", "founder", "owner",
	"vp", "vice president", "director", "head of", "lead", "senior",
	"principal", "manager", "executive", "partner",
}

func valid(field string) FieldValidation {
	return FieldValidation{Field: field, IsValid: true}
}

func invalid(field, message string) FieldValidation {
	return FieldValidation{Field: field, IsValid: false, ErrorMessage: message}
}

func ValidateEmail(email string) FieldValidation {
	if email == "" {
		return invalid("email", "Email address is required")
	}
	if !emailShapeRe.MatchString(email) {
		return invalid("email", "Please enter a valid email address")
	}
	if !IsBusinessEmail(email) {
		v := invalid("email", "Please use your business email address")
		v.Suggestion = "Personal email addresses are not accepted for executive access"
		return v
	}
	return valid("email")
}

func ValidateFirstName(firstName string) FieldValidation {
	return validateName("firstName", "First name", firstName)
}

func ValidateLastName(lastName string) FieldValidation {
	return validateName("lastName", "Last name", lastName)
}

func validateName(field, label, value string) FieldValidation {
	if value == "" {
		return invalid(field, label+" is required")
	}
	if len(value) < 2 {
		return invalid(field, label+" must be at least 2 characters")
	}
	if len(value) > 50 {
		return invalid(field, label+" must be less than 50 characters")
	}
	if !nameRe.MatchString(value) {
		return invalid(field, label+" contains invalid characters")
	}
	return valid(field)
}

func ValidateCompany(company string) FieldValidation {
	if company == "" {
		return invalid("company", "Company name is required")
	}
	if len(company) < 2 {
		return invalid("company", "Company name must be at least 2 characters")
	}
	if len(company) > 100 {
		return invalid("company", "Company name must be less than 100 characters")
	}
	return valid("company")
}

func ValidateRole(role string) FieldValidation {
	if role == "" {
		return invalid("role", "Job title is required")
	}
	if len(role) < 2 {
		return invalid("role", "Job title must be at least 2 characters")
	}
	if len(role) > 100 {
		return invalid("role", "Job title must be less than 100 characters")
	}
	roleLower := strings.ToLower(role)
	for _, title := range executiveTitleKeywords {
		if strings.Contains(roleLower, title) {
			return valid("role")
		}
	}
	v := invalid("role", "This access is limited to executives and senior management")
	v.Suggestion = "Please use your executive or management title"
	return v
}

func ValidateCompanySize(companySize string) FieldValidation {
	if companySize == "" {
		return invalid("companySize", "Company size is required")
	}
	if !entity.ValidCompanySize(entity.CompanySize(companySize)) {
		return invalid("companySize", "Please select a valid company size")
	}
	return valid("companySize")
}

func ValidatePhoneNumber(phoneNumber string) FieldValidation {
	if phoneNumber == "" {
		return valid("phoneNumber") // optional
	}
	digits := digitsRe.ReplaceAllString(phoneNumber, "")
	if len(digits) < 10 {
		return invalid("phoneNumber", "Phone number must be at least 10 digits")
	}
	if len(digits) > 15 {
		return invalid("phoneNumber", "Phone number must be less than 15 digits")
	}
	return valid("phoneNumber")
}

func ValidateLinkedinProfile(linkedinProfile string) FieldValidation {
	if linkedinProfile == "" {
		return valid("linkedinProfile") // optional
	}
	if !linkedinRe.MatchString(linkedinProfile) {
		v := invalid("linkedinProfile", "Please enter a valid LinkedIn profile URL")
		v.Suggestion = "Format: https://linkedin.com/in/your-profile"
		return v
	}
	return valid("linkedinProfile")
}

// ValidateWaitlistForm runs every field rule on the sanitized submission.
// All rules are evaluated; nothing short-circuits across fields, so the
// client gets the complete error map in one round trip.
func ValidateWaitlistForm(data WaitlistSubmission) *FormValidation {
	validations := []FieldValidation{
		ValidateEmail(data.Email),
		ValidateFirstName(data.FirstName),
		ValidateLastName(data.LastName),
		ValidateCompany(data.Company),
		ValidateRole(data.Role),
		ValidateCompanySize(data.CompanySize),
		ValidatePhoneNumber(data.PhoneNumber),
		ValidateLinkedinProfile(data.LinkedinProfile),
	}

	errors := make(map[string]string)
	failing := make([]FieldValidation, 0, len(validations))
	isValid := true

	for _, v := range validations {
		if !v.IsValid {
			errors[v.Field] = v.ErrorMessage
			failing = append(failing, v)
			isValid = false
		}
	}

	if !data.TermsAccepted {
		errors["termsAccepted"] = "You must accept the terms and conditions"
		isValid = false
	}
	if !data.PrivacyAccepted {
		errors["privacyAccepted"] = "You must accept the privacy policy"
		isValid = false
	}

	return &FormValidation{
		IsValid:        isValid,
		Errors:         errors,
		Validations:    failing,
		PriorityScore:  CalculatePriorityScore(data),
		ExecutiveLevel: ExecutiveLevelFromRole(data.Role),
		CompanyTier:    CompanyTierFromSize(entity.CompanySize(data.CompanySize)),
	}
}
