package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/reviewkit/codeowners-resolve/internal/app"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

func formatOutput(output *app.OutputData, format OutputFormat) string {
	switch format {
	case FormatOneLine:
		return strings.Join(output.Owners, ", ") + "\n"
	case FormatJSON:
		jsonString, _ := json.Marshal(output)
		return string(jsonString) + "\n"
	default:
		if len(output.Owners) == 0 {
			return "no owners\n"
		}
		return strings.Join(output.Owners, "\n") + "\n"
	}
}
