/*
PURPOSE:
  Provides a structured logger for evalreport.
  Wraps logrus for consistent output.

REQUIREMENTS:
  User-specified:
  - "Sane" CLI output. Not spammy.

  Implementation-discovered:
  - Report text goes to stdout; logs go to stderr so they never mix into
    redirected tables.
  - Level is selected by --log-level / log_level.

ARCHITECTURE INTEGRATION:
  - Used everywhere.

ERROR HANDLING:
  - SetLevel returns the logrus parse error for unknown level names.

IMPLEMENTATION RULES:
  - Use github.com/sirupsen/logrus with the full-timestamp TextFormatter.
  - Structured fields via WithField/WithFields/WithError.

USAGE:
  output.Logger.WithField("key", "value").Info("message")

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - All.

MAINTENANCE:
  - JSON formatter for non-interactive runs?
*/

package output

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetLogger allows overriding the default logger (e.g. for testing or config changes)
func SetLogger(l *logrus.Logger) {
	Logger = l
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Logger.SetLevel(level)
	return nil
}
