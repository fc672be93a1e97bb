package server

import (
	"fmt"
	"strings"

	"redicore/pkg/utils"
)

type ClientResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   error  `json:"error,omitempty"`
}

func NewSuccessResponse(message string) ClientResponse {
	return ClientResponse{
		Success: true,
		Message: message,
		Error:   nil,
	}
}

func NewErrorResponse(err error) ClientResponse {
	return ClientResponse{
		Success: false,
		Message: fmt.Sprintf("(error) %v", err),
		Error:   err,
	}
}

func (response ClientResponse) ToString() string {
	return response.Message + "\n"
}

// Renders a command result the way redis-cli prints it
func FormatReply(result any) string {
	switch value := result.(type) {
	case nil:
		return "(nil)"
	case string:
		if value == "" {
			return utils.EMPTY_TOKEN
		}
		return value
	case int64:
		return fmt.Sprintf("(integer) %d", value)
	case []string:
		if len(value) == 0 {
			return "(empty array)"
		}
		lines := make([]string, len(value))
		for i, item := range value {
			lines[i] = fmt.Sprintf("%d) %q", i+1, item)
		}
		return strings.Join(lines, "\n")
	default:
		return utils.ValueToString(value)
	}
}
