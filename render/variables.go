// Package render derives entity-name variables and substitutes them into
// template text. It also discovers template files on an fs.FS.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names of the variables available to templates.
const (
	VarPascal = "EntityName"
	VarCamel  = "entityName"
	VarUpper  = "ENTITY_NAME"
	VarKebab  = "entity-name"
)

// VariableNames lists every variable in substitution order.
var VariableNames = []string{VarPascal, VarCamel, VarUpper, VarKebab}

// VariableSet maps variable names to their values for a single entity.
type VariableSet map[string]string

// Derive builds the casing variants of entity. It never fails; an empty
// entity yields empty values for every variable.
func Derive(entity string) VariableSet {
	return VariableSet{
		VarPascal: toPascal(entity),
		VarCamel:  toCamel(entity),
		VarUpper:  strings.ToUpper(entity),
		VarKebab:  toKebab(entity),
	}
}

// toPascal upper-cases the first rune only; the remainder is left as-is.
func toPascal(s string) string {
	return mapFirstRune(s, unicode.ToUpper)
}

// toCamel lower-cases the first rune only.
func toCamel(s string) string {
	return mapFirstRune(s, unicode.ToLower)
}

func mapFirstRune(s string, fn func(rune) rune) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(fn(r)) + s[size:]
}

// toKebab puts a hyphen in front of every upper-case letter, drops the
// leading hyphens that produces and lower-cases the result.
// "UserProfile" becomes "user-profile"; no other word boundaries are inferred.
func toKebab(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}

	return strings.ToLower(strings.TrimLeft(b.String(), "-"))
}
