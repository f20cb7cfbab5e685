package utils

import "strings"

// ExtractJSONObject returns the first balanced, top-level JSON object embedded
// in free-form text. The model is asked for bare JSON but routinely wraps it
// in prose or ```json fences, and a greedy regex breaks on braces inside
// string values, so this walks the text respecting string escaping instead.
func ExtractJSONObject(text string) (string, bool) {
	from := 0
	for {
		start := strings.IndexByte(text[from:], '{')
		if start < 0 {
			return "", false
		}
		start += from

		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(text); i++ {
			c := text[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		}

		// Unbalanced from this opening brace; try the next one.
		from = start + 1
	}
}
