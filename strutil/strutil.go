// Package strutil holds small, stateless string exercises.
package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Concat joins two strings.
func Concat(a, b string) string {
	return a + b
}

// Length returns the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Greeting builds the string "Hello, <firstName> <lastName>!".
func Greeting(firstName, lastName string) string {
	return fmt.Sprintf("Hello, %s %s!", firstName, lastName)
}

// ExtractName pulls the name back out of a string built by Greeting.
func ExtractName(greeting string) string {
	return strings.TrimSuffix(strings.TrimPrefix(greeting, "Hello, "), "!")
}

// FirstChar returns the first rune of s, or the empty string.
func FirstChar(s string) string {
	for _, r := range s {
		return string(r)
	}

	return ""
}

// TrimWhitespace removes leading and trailing whitespace.
func TrimWhitespace(s string) string {
	return strings.TrimSpace(s)
}

// Repeat concatenates n copies of s.
func Repeat(s string, n int) string {
	return strings.Repeat(s, n)
}

// RemoveFirst removes the first occurrence of sub from s.
func RemoveFirst(s, sub string) string {
	return strings.Replace(s, sub, "", 1)
}

// UnbracketTag strips one leading '<' and one trailing '>' from a tag.
func UnbracketTag(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
}

// Upper converts s to upper case.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// ExtractEmails splits a ';'-separated list of addresses.
func ExtractEmails(list string) []string {
	if list == "" {
		return nil
	}

	return strings.Split(list, ";")
}

// Rot13 applies the ROT13 substitution to ASCII letters. Every other rune
// passes through unchanged, so applying it twice round-trips.
func Rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		}

		return r
	}, s)
}

// IsString reports whether v holds a string value.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}
