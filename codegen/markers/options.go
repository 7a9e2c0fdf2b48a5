package markers

import (
	"fmt"
	"strconv"
	"strings"
)

// option is one key=value pair of a marker.
type option struct {
	key   string
	value string
}

// parseOptions splits the text following a marker token into key=value
// pairs. Pairs are separated by commas or spaces; values may be quoted and may
// contain balanced braces, brackets and parentheses.
func parseOptions(text string) ([]option, error) {
	var opts []option
	i := 0
	for i < len(text) {
		for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == ',') {
			i++
		}
		if i >= len(text) {
			break
		}

		keyStart := i
		for i < len(text) && text[i] != '=' && text[i] != ' ' && text[i] != ',' {
			i++
		}
		key := text[keyStart:i]
		if i >= len(text) || text[i] != '=' {
			return nil, fmt.Errorf("option %q: missing '='", key)
		}
		if key == "" {
			return nil, fmt.Errorf("option without key")
		}
		i++ // '='

		valueStart := i
		depth := 0
		inQuotes := false
	value:
		for i < len(text) {
			c := text[i]
			switch {
			case inQuotes:
				if c == '\\' {
					i++
				} else if c == '"' {
					inQuotes = false
				}
			case c == '"':
				inQuotes = true
			case c == '{' || c == '[' || c == '(':
				depth++
			case c == '}' || c == ']' || c == ')':
				depth--
			case (c == ',' || c == ' ' || c == '\t') && depth == 0:
				break value
			}
			i++
		}
		if inQuotes {
			return nil, fmt.Errorf("option %q: unterminated quote", key)
		}

		val := text[valueStart:min(i, len(text))]
		if strings.HasPrefix(val, `"`) {
			unquoted, err := strconv.Unquote(val)
			if err != nil {
				return nil, fmt.Errorf("option %q: invalid quoted value %s", key, val)
			}
			val = unquoted
		}
		opts = append(opts, option{key: key, value: val})
	}
	return opts, nil
}
