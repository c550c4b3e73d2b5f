package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
)

// GenerateRandomString returns a random alphanumeric string of the given length.
func GenerateRandomString(length int) string {
	return gofakeit.LetterN(uint(length))
}

// GenerateRandomSecret returns a random shared secret for auth tests.
func GenerateRandomSecret() string {
	return gofakeit.UUID()
}

// GenerateSampleText returns a short multi-sentence paragraph.
func GenerateSampleText() string {
	return gofakeit.Paragraph(1, 3, 8, " ")
}
