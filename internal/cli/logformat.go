package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ParseLogFormat maps a -log-format flag value to a charmbracelet/log
// Formatter. An empty string or "text" returns log.TextFormatter.
func ParseLogFormat(name string) (log.Formatter, error) {
	switch name {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format %q (want text, json, or logfmt)", name)
	}
}
