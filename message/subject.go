package message

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jeffrom/czconfig/config"
)

type SubjectTooLongError struct {
	Length int
	Limit  int
}

func (e *SubjectTooLongError) Error() string {
	return fmt.Sprintf("subject is %d characters long, limit is %d", e.Length, e.Limit)
}

// SubjectLength counts the characters of s as a user would see them typed:
// runes of the NFC normalized string.
func SubjectLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// CheckSubject validates a subject line before it is used in a message.
func CheckSubject(cfg *config.Config, subject string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrEmptySubject
	}
	if strings.ContainsAny(subject, "\r\n") {
		return ErrMultilineSubject
	}
	if n := SubjectLength(subject); n > cfg.SubjectLimit() {
		return &SubjectTooLongError{Length: n, Limit: cfg.SubjectLimit()}
	}
	return nil
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
