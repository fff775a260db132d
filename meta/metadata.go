// Package meta parses the "// META:" declarations embedded in template
// files and decides which templates take part in a run.
package meta

import "strings"

// Prefix marks a metadata declaration line, e.g. "// META: output=src/{{EntityName}}.cs".
const Prefix = "// META:"

// Metadata is the set of declarations read from one template.
type Metadata struct {
	// Output is the destination path relative to the output root. It may
	// contain placeholders.
	Output      string
	Description string
	Tags        []string

	// Ignored holds declarations that were dropped because they had no
	// "=" or used an unknown key.
	Ignored []string
}

// Valid reports whether the metadata names an output path.
func (m Metadata) Valid() bool {
	return strings.TrimSpace(m.Output) != ""
}

// Template is a parsed template file. Body has the metadata lines removed.
type Template struct {
	Path     string
	Body     string
	Metadata Metadata
}

// Parse extracts the metadata and body of the template read from path.
func Parse(path, raw string) Template {
	md, body := Extract(raw)
	return Template{
		Path:     path,
		Body:     body,
		Metadata: md,
	}
}

type key int

const (
	keyUnknown key = iota
	keyOutput
	keyDescription
	keyTags
)

func parseKey(s string) key {
	switch strings.ToLower(s) {
	case "output":
		return keyOutput
	case "description":
		return keyDescription
	case "tags":
		return keyTags
	default:
		return keyUnknown
	}
}

// IsMetadataLine reports whether line is a metadata declaration.
func IsMetadataLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}

// Extract reads every metadata declaration in raw and returns them with
// the remaining text. Later declarations of a key replace earlier ones.
// Malformed declarations are dropped from both results.
func Extract(raw string) (Metadata, string) {
	var md Metadata
	var body []string

	for _, line := range strings.Split(raw, "\n") {
		if !IsMetadataLine(line) {
			body = append(body, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		decl := strings.TrimSpace(strings.TrimPrefix(trimmed, Prefix))
		name, value, ok := strings.Cut(decl, "=")
		if !ok {
			md.Ignored = append(md.Ignored, trimmed)
			continue
		}
		value = strings.TrimSpace(value)

		switch parseKey(strings.TrimSpace(name)) {
		case keyOutput:
			md.Output = value
		case keyDescription:
			md.Description = value
		case keyTags:
			md.Tags = ParseTags(value)
		default:
			md.Ignored = append(md.Ignored, trimmed)
		}
	}

	return md, strings.TrimSpace(strings.Join(body, "\n"))
}
