package utils

import (
	"fmt"
	"strconv"
)

// Converts string value to int64
func FromStringToInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Converts raw tokens to strings. Positions of nil tokens are returned separately.
func TokensToStrings(tokens [][]byte) ([]string, []int) {
	values := make([]string, len(tokens))
	var missing []int

	for i, token := range tokens {
		if token == nil {
			missing = append(missing, i)
			continue
		}
		values[i] = string(token)
	}
	return values, missing
}

const EMPTY_TOKEN = `""`

// Splits a command line on whitespace into a name and raw tokens.
// A bare "" field stands for an empty value; no other quoting is understood.
func SplitCommandLine(fields []string) (string, [][]byte) {
	if len(fields) == 0 {
		return "", nil
	}

	tokens := make([][]byte, len(fields)-1)
	for i, field := range fields[1:] {
		if field == EMPTY_TOKEN {
			tokens[i] = []byte{}
			continue
		}
		tokens[i] = []byte(field)
	}
	return fields[0], tokens
}

// Converts a value to its textual form
func ValueToString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case float32:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
