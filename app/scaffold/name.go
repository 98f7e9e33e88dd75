package scaffold

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValidateName checks a user-supplied identifier. field names the input in the
// returned error ("name", "param").
func ValidateName(field, name string) (string, error) {
	if name == "" {
		return "", errors.WithHintf(
			errors.Wrapf(ErrInvalidName, "%s is empty", field),
			"enter a %s such as new-screen", field)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "", errors.WithHint(
			errors.Wrapf(ErrInvalidName, "%s %q contains whitespace", field, name),
			"use hyphens or camelCase instead of spaces")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", errors.WithHint(
			errors.Wrapf(ErrInvalidName, "%s %q contains a path separator or \"..\"", field, name),
			"names become directory names; pass a single segment such as user-detail")
	}
	return name, nil
}

// -----------------------------
// Casing
// -----------------------------
//
// Given: Name = "user-detail"
// - Pascal: UserDetail
// - Camel:  userDetail
// - Lower:  user-detail
//
// Hyphens and underscores split words; inner capitals are preserved, so
// "NewScreen" stays "NewScreen".

var titleCaser = cases.Title(language.Und, cases.NoLower)

// ToPascalCase converts input to PascalCase.
func ToPascalCase(input string) string {
	words := splitIntoWords(input)
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, "")
}

// ToCamelCase converts input to camelCase.
func ToCamelCase(input string) string {
	pascal := ToPascalCase(input)
	r, size := utf8.DecodeRuneInString(pascal)
	if size == 0 {
		return pascal
	}
	return string(unicode.ToLower(r)) + pascal[size:]
}

func splitIntoWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
}
