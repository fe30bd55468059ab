package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type outputFlags struct {
	format string
	out    string
}

// encode renders v as json or yaml, or calls md for markdown.
func encode(v any, format string, md func() string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal output: %w", err)
		}
		return string(data), nil
	case "md":
		return md(), nil
	default:
		return "", exitError(3, "unknown format: %s", format)
	}
}

func writeOutput(w io.Writer, o *outputFlags, output string) error {
	if o.out != "" {
		if err := os.WriteFile(o.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(w, output)
	return err
}
