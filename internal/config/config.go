package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/chat-popup-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envAPIURL  = "CHAT_POPUP_CONTROL_API_URL"
	envToken   = "CHAT_POPUP_CONTROL_TOKEN"
	envAgent   = "CHAT_POPUP_CONTROL_AGENT"
	envDB      = "CHAT_POPUP_CONTROL_DB"
	envRename  = "CHAT_POPUP_CONTROL_RENAME"
	envPoll    = "CHAT_POPUP_CONTROL_POLL"
	envTimeout = "CHAT_POPUP_CONTROL_TIMEOUT"
	envWidth   = "CHAT_POPUP_CONTROL_WIDTH"
	envHeight  = "CHAT_POPUP_CONTROL_HEIGHT"
	envFooter  = "CHAT_POPUP_CONTROL_FOOTER"
	envVerbose = "CHAT_POPUP_CONTROL_VERBOSE"
	envTrace   = "CHAT_POPUP_CONTROL_TRACE"
	envLogFile = "CHAT_POPUP_CONTROL_LOG_FILE"
)

const (
	defaultPoll    = 5 * time.Second
	defaultTimeout = 10 * time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("chat-popup-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiURL := fs.String("api-url", envOrDefault(env, envAPIURL, ""), "base URL of the chat API")
	token := fs.String("token", envOrDefault(env, envToken, ""), "bearer token for the chat API")
	agent := fs.Int("agent", envOrInt(env, envAgent, 0), "agent id whose conversations are listed (0 lists all)")
	db := fs.String("db", envOrDefault(env, envDB, ""), "path to a local SQLite conversation store")
	rename := fs.String("rename", envOrDefault(env, envRename, ""), "open the rename dialog for this conversation id and exit afterwards")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "conversation list refresh interval")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "timeout for each backend request")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			APIURL:       strings.TrimSpace(*apiURL),
			Token:        *token,
			AgentID:      *agent,
			DBPath:       strings.TrimSpace(*db),
			RenameID:     strings.TrimSpace(*rename),
			PollInterval: *poll,
			Timeout:      *timeout,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"api-url": *apiURL,
			"token":   redact(*token),
			"agent":   strconv.Itoa(*agent),
			"db":      *db,
			"rename":  *rename,
			"poll":    poll.String(),
			"timeout": timeout.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: redactArgs(args),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<redacted>"
}

// redactArgs hides the token value so startup traces never carry it.
func redactArgs(args []string) []string {
	out := append([]string(nil), args...)
	for i, arg := range out {
		switch {
		case arg == "-token" || arg == "--token":
			if i+1 < len(out) {
				out[i+1] = redact(out[i+1])
			}
		case strings.HasPrefix(arg, "-token=") || strings.HasPrefix(arg, "--token="):
			name := arg[:strings.Index(arg, "=")]
			out[i] = name + "=" + redact(arg[len(name)+1:])
		}
	}
	return out
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures exactly one backend is selected and timings are usable.
func Validate(cfg Config) error {
	hasAPI := cfg.App.APIURL != ""
	hasDB := cfg.App.DBPath != ""
	switch {
	case hasAPI && hasDB:
		return errors.New("use either --api-url or --db, not both")
	case !hasAPI && !hasDB:
		return errors.New("a backend is required: set --api-url or --db")
	}
	if hasAPI {
		parsed, err := url.Parse(cfg.App.APIURL)
		if err != nil {
			return fmt.Errorf("invalid api url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("api url must use http or https (got %q)", cfg.App.APIURL)
		}
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be > 0 (got %s)", cfg.App.PollInterval)
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	return nil
}
