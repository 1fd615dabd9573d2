package crashreport

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wippyai/cef-bridge/errors"
)

// ConfigFileName is the name of the crash reporter configuration file.
const ConfigFileName = "crash_reporter.cfg"

// KeySize is the size class of a crash key.
type KeySize int

const (
	KeySmall  KeySize = 64
	KeyMedium KeySize = 256
	KeyLarge  KeySize = 1024
)

func parseKeySize(s string) (KeySize, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return KeySmall, true
	case "medium":
		return KeyMedium, true
	case "large":
		return KeyLarge, true
	}
	return 0, false
}

func (k KeySize) String() string {
	switch k {
	case KeySmall:
		return "small"
	case KeyMedium:
		return "medium"
	case KeyLarge:
		return "large"
	default:
		return strconv.Itoa(int(k))
	}
}

// Config is the parsed crash reporter configuration.
type Config struct {
	// CrashKeys maps application key names to their size class.
	CrashKeys map[string]KeySize

	ServerURL      string
	ProductName    string
	ProductVersion string
	AppName        string

	MaxUploadsPerDay     int
	MaxDatabaseSizeInMb  int
	MaxDatabaseAgeInDays int
	RateLimitEnabled     bool
}

// DefaultConfig returns the values used for settings the file leaves out.
func DefaultConfig() *Config {
	return &Config{
		CrashKeys:            make(map[string]KeySize),
		ProductName:          "cef",
		AppName:              "cef",
		MaxUploadsPerDay:     5,
		MaxDatabaseSizeInMb:  20,
		MaxDatabaseAgeInDays: 5,
		RateLimitEnabled:     true,
	}
}

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseConfig, "crash config", path)
		}
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "open crash config")
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig parses the INI-style configuration. Unknown sections and
// keys are ignored; a malformed number or size class is an error.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	section := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '[' {
			if !strings.HasSuffix(line, "]") {
				return nil, lineError(lineNo, "unterminated section header")
			}
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, lineError(lineNo, "expected name=value")
		}
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)

		switch section {
		case "Config":
			if err := cfg.set(name, value); err != nil {
				return nil, lineError(lineNo, err.Error())
			}
		case "CrashKeys":
			size, ok := parseKeySize(value)
			if !ok {
				return nil, lineError(lineNo, "unknown crash key size "+strconv.Quote(value))
			}
			cfg.CrashKeys[name] = size
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read crash config")
	}
	return cfg, nil
}

func (c *Config) set(name, value string) error {
	var err error
	switch name {
	case "ServerURL":
		c.ServerURL = value
	case "ProductName":
		c.ProductName = value
	case "ProductVersion":
		c.ProductVersion = value
	case "AppName":
		c.AppName = value
	case "MaxUploadsPerDay":
		c.MaxUploadsPerDay, err = strconv.Atoi(value)
	case "MaxDatabaseSizeInMb":
		c.MaxDatabaseSizeInMb, err = strconv.Atoi(value)
	case "MaxDatabaseAgeInDays":
		c.MaxDatabaseAgeInDays, err = strconv.Atoi(value)
	case "RateLimitEnabled":
		c.RateLimitEnabled = value == "1" || strings.EqualFold(value, "true")
	}
	if err != nil {
		return errors.InvalidInput(errors.PhaseConfig, name+": "+err.Error())
	}
	return nil
}

func lineError(line int, msg string) error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
		Detail("%s line %d: %s", ConfigFileName, line, msg).
		Build()
}
