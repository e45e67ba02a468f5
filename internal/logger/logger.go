package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ColorScheme struct {
	Reset  string
	Red    string
	Green  string
	Yellow string
	Blue   string
	Purple string
	Cyan   string
	Gray   string
	Bold   string
}

var (
	// ANSI color codes
	colors = ColorScheme{
		Reset:  "\033[0m",
		Red:    "\033[31m",
		Green:  "\033[32m",
		Yellow: "\033[33m",
		Blue:   "\033[34m",
		Purple: "\033[35m",
		Cyan:   "\033[36m",
		Gray:   "\033[37m",
		Bold:   "\033[1m",
	}

	noColors = ColorScheme{}

	// exactly three digits, 200-599
	statusCodeRegex = regexp.MustCompile(`^[2-5]\d{2}$`)
)

// Init configures the global logger for the given NODE_ENV value
func Init(env string) {
	log.Logger = zerolog.New(consoleWriter(os.Stdout)).
		With().
		Timestamp().
		Str("env", env).
		Logger()

	switch env {
	case "development":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "test":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "production":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// SetLevel overrides the global level chosen by Init, e.g. from LOG_LEVEL
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// NewDiagnostic returns a logger for fatal startup diagnostics written to w
func NewDiagnostic(w io.Writer) zerolog.Logger {
	return zerolog.New(consoleWriter(w)).
		With().
		Timestamp().
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	scheme := noColors
	if isTerminal(out) {
		scheme = colors
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "02.01.2006 15:04:05",
		NoColor:    scheme == noColors,
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "INFO":
				return fmt.Sprintf("%s●%s", scheme.Blue, scheme.Reset)
			case "WARN":
				return fmt.Sprintf("%s●%s", scheme.Yellow, scheme.Reset)
			case "ERROR", "FATAL":
				return fmt.Sprintf("%s●%s", scheme.Red, scheme.Reset)
			default:
				return level
			}
		},
		FormatMessage: func(i interface{}) string {
			msg := fmt.Sprintf("%-35s", i)

			if strings.Contains(msg, "Request completed") {
				return fmt.Sprintf("%s%s%s", scheme.Gray, msg, scheme.Reset)
			}
			if strings.Contains(msg, "Request started") {
				return fmt.Sprintf("%s%s%s", scheme.Bold, msg, scheme.Reset)
			}

			return msg
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s%s%s=", scheme.Cyan, i, scheme.Reset)
		},
		FormatFieldValue: func(i interface{}) string {
			val := fmt.Sprintf("%s", i)

			switch val {
			case "GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS":
				return fmt.Sprintf("%s%s%s", scheme.Purple, val, scheme.Reset)
			}

			if statusCodeRegex.MatchString(val) {
				switch val[0] {
				case '2':
					return fmt.Sprintf("%s%s%s", scheme.Green, val, scheme.Reset)
				case '3':
					return fmt.Sprintf("%s%s%s", scheme.Yellow, val, scheme.Reset)
				case '4', '5':
					return fmt.Sprintf("%s%s%s", scheme.Red, val, scheme.Reset)
				}
			}

			return val
		},
	}
}
