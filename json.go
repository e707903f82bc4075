package legalease

import "strings"

// sanitizeReply removes garbage often wrapped around model output: leading
// and trailing whitespace plus markdown code fences.
func sanitizeReply(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// extractJSONObject returns the first balanced top-level JSON object embedded
// in reply. Models are prompted to emit prose plus one JSON object, so the
// scanner starts at the first '{' and walks to its matching '}', tracking
// string literals and escapes so braces inside strings don't count. A second
// top-level object is ignored; a truncated object yields ok=false.
func extractJSONObject(reply string) (string, bool) {
	s := sanitizeReply(reply)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
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
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
