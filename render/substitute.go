package render

import "strings"

// Placeholder returns the literal token that stands for name in template text.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// Render replaces every {{Name}} token whose name is in vars. Tokens for
// names outside vars are left untouched.
func Render(text string, vars VariableSet) string {
	if text == "" || len(vars) == 0 {
		return text
	}

	result := text
	for _, name := range VariableNames {
		value, ok := vars[name]
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, Placeholder(name), value)
	}
	return result
}
