package config

import "strings"

// URLList is an ordered list of URLs or URL paths read from a single
// comma-separated setting.
type URLList []string

// ParseURLList splits raw on commas, trims every segment and drops the empty
// ones. Order is preserved.
func ParseURLList(raw string) URLList {
	parts := strings.Split(raw, ",")

	list := make(URLList, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}

	return list
}
