package meta

import "strings"

// ParseTags splits a comma-separated list, trimming each tag and dropping
// empty ones. Order is preserved.
func ParseTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// IsEligible reports whether a template with metadata m takes part in a
// run filtered by requested. An empty request admits every template;
// otherwise the template needs at least one tag matching a requested tag,
// ignoring case.
func IsEligible(m Metadata, requested []string) bool {
	if len(requested) == 0 {
		return true
	}

	for _, tag := range m.Tags {
		for _, want := range requested {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
