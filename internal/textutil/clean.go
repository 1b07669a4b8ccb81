// Package textutil normalizes vacancy and resume text before it is embedded
// into prompts. Job boards and resume exports are full of invisible
// characters that confuse both schema validation and the generation service.
package textutil

import "strings"

var replacer = strings.NewReplacer(
	" ", " ", // narrow no-break space
	" ", " ", // no-break space
	"\r", " ",
	"\n", " ",
	"\t", " ",
	"\f", " ",
	"\v", " ",
)

// Clean collapses control characters and non-breaking spaces into plain
// spaces and trims the result.
func Clean(text string) string {
	return strings.TrimSpace(replacer.Replace(text))
}

// CleanAll applies Clean to every element, dropping entries that become empty.
func CleanAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if cleaned := Clean(item); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// IsBlank reports whether the text is empty after normalization.
func IsBlank(text string) bool {
	return Clean(text) == ""
}
