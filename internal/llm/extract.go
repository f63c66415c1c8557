package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON object from raw model output. Models asked for
// pure JSON still wrap it in markdown fences or surround it with prose, so
// extraction runs in two stages: strip a fenced code block if present, then,
// if the remainder is still not valid JSON, isolate the first balanced
// {...} span by brace-depth counting and parse that.
func ExtractJSON(raw string) (json.RawMessage, error) {
	cleaned := stripCodeFences(raw)

	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}

	span, ok := firstObjectSpan(cleaned)
	if ok && json.Valid([]byte(span)) {
		return json.RawMessage(span), nil
	}

	return nil, &ErrParse{
		Raw:     raw,
		Cleaned: cleaned,
		Err:     fmt.Errorf("no JSON object found in response"),
	}
}

// stripCodeFences removes a leading ```json (or bare ```) fence and the
// matching trailing fence, if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Drop the fence line itself; it may read "```json" or just "```".
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSpace(s)
		if strings.HasSuffix(s, "```") {
			s = strings.TrimSuffix(s, "```")
			s = strings.TrimSpace(s)
		}
	}
	return s
}

// firstObjectSpan returns the substring from the first '{' to its matching
// '}'. Braces inside JSON strings are ignored; backslash escapes are honored
// so a quote inside a string does not end it.
func firstObjectSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
