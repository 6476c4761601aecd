package logging

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger.
// format is "text" or "json"; an empty format means text.
func Setup(out io.Writer, level log.Level, format string) error {
	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	log.SetOutput(out)
	log.SetLevel(level)
	return nil
}
