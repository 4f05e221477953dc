package taskfile

import "strings"

// Camelize turns a hyphen-delimited package name into a camel-case JavaScript
// identifier: "gulp-sass" → "gulpSass". The first segment is kept as-is and
// empty segments (consecutive hyphens) contribute nothing.
func Camelize(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) == 1 {
		return name
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
