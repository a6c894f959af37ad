package services

import (
	"crypto/rand"
	"regexp"
	"strings"

	"cometjet/crewdesk/internal/constants"
)

const (
	tempPasswordLength = 12
	passwordCharset    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	uppercaseLetters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// tailNumberPattern is the only check applied to registrations; the middle
// letter is not verified against the catalog.
var tailNumberPattern = regexp.MustCompile(`^SP-[A-Z]{3}$`)

func randomString(charset string, length int) string {
	buf := make([]byte, length)
	// rand.Read on crypto/rand never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = charset[int(b)%len(charset)]
	}
	return string(buf)
}

// GenerateTempPassword returns a random 12-character mixed-case alphanumeric
// password. No uniqueness guarantee; collision risk is accepted.
func GenerateTempPassword() string {
	return randomString(passwordCharset, tempPasswordLength)
}

// GenerateRegistrationCode returns two random uppercase letters, used as a
// per-pilot identifier distinct from tail numbers.
func GenerateRegistrationCode() string {
	return randomString(uppercaseLetters, 2)
}

// GenerateTailNumber composes SP-<L1><model letter><L2> for a supported
// aircraft model. Returns false for models outside the catalog.
func GenerateTailNumber(model string, letterPair string) (string, bool) {
	modelLetter, ok := constants.AircraftRegistrationLetters[model]
	if !ok || len(letterPair) != 2 {
		return "", false
	}
	return "SP-" + letterPair[:1] + modelLetter + letterPair[1:], true
}

// ValidTailNumber reports whether a registration matches SP-XXX.
func ValidTailNumber(reg string) bool {
	return tailNumberPattern.MatchString(reg)
}

// NormalizeAircraftList splits a comma-joined selected-aircraft field into
// trimmed model names, dropping empty entries.
func NormalizeAircraftList(raw string) []string {
	parts := strings.Split(raw, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			models = append(models, p)
		}
	}
	return models
}
