package crashreport

import (
	"context"
	"maps"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/wippyai/cef-bridge/content"
	"github.com/wippyai/cef-bridge/errors"
	"go.uber.org/zap"
)

const (
	zygoteProcess       = "zygote"
	enableCrashReporter = "enable-crash-reporter"
)

// ErrRateLimited is returned by Snapshot once the daily report limit is
// reached.
var ErrRateLimited = errors.New(errors.PhaseStorage, errors.KindInvalidInput).
	Detail("daily crash report limit reached").
	Build()

// Reporter owns the crash keys of one process.
type Reporter struct {
	cfg   *Config
	store Store
	sizes map[string]KeySize
	now   func() time.Time

	mu          sync.RWMutex
	values      map[string]string
	processType string

	enabled atomic.Bool
}

// New creates a reporter. A nil cfg means no configuration file was found:
// the reporter never enables and ignores every key. store may be nil.
func New(cfg *Config, store Store) *Reporter {
	r := &Reporter{
		cfg:    cfg,
		store:  store,
		sizes:  make(map[string]KeySize),
		values: make(map[string]string),
		now:    time.Now,
	}
	r.sizes[numSwitchesKey] = KeySmall
	for i := 1; i <= MaxSwitches; i++ {
		r.sizes[switchKey(i)] = KeySmall
	}
	if cfg != nil {
		maps.Copy(r.sizes, cfg.CrashKeys)
	}
	return r
}

// HasConfig reports whether the reporter was created with a configuration.
func (r *Reporter) HasConfig() bool {
	return r.cfg != nil
}

// Config returns the configuration, or nil.
func (r *Reporter) Config() *Config {
	return r.cfg
}

// Enabled reports whether crash reporting is on for this process.
func (r *Reporter) Enabled() bool {
	return r.enabled.Load()
}

// BasicStartupComplete runs before logging is up. The dump handler needs
// its switch on the command line when a configuration exists.
func (r *Reporter) BasicStartupComplete(cmd content.CommandLine) {
	if r.cfg != nil && !cmd.HasSwitch(enableCrashReporter) {
		cmd.AppendSwitch(enableCrashReporter)
	}
}

// PreSandboxStartup enables reporting for processType and records the
// command line. An empty processType is the browser process.
func (r *Reporter) PreSandboxStartup(cmd content.CommandLine, processType string) {
	r.init(processType)
	r.SetSwitchesFromCommandLine(cmd.Argv())
}

// ZygoteForked enables reporting in a process forked from the zygote.
func (r *Reporter) ZygoteForked(cmd content.CommandLine, processType string) {
	if r.cfg != nil && !cmd.HasSwitch(enableCrashReporter) {
		cmd.AppendSwitch(enableCrashReporter)
	}
	r.init(processType)
	r.SetSwitchesFromCommandLine(cmd.Argv())
}

func (r *Reporter) init(processType string) {
	r.mu.Lock()
	r.processType = processType
	r.mu.Unlock()

	// Zygote children initialize after the fork.
	if r.cfg == nil || processType == zygoteProcess {
		return
	}
	r.enabled.Store(true)

	name := processType
	if name == "" {
		name = "browser"
	}
	Logger().Info("crash reporting enabled", zap.String("process", name))
}

// SetCrashKeyValue sets a registered key, truncating the value to the
// key's size class. An empty value clears the key. It reports whether the
// key was accepted.
func (r *Reporter) SetCrashKeyValue(key, value string) bool {
	if r.cfg == nil {
		return false
	}
	size, ok := r.sizes[key]
	if !ok {
		Logger().Debug("unknown crash key", zap.String("key", key))
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if value == "" {
		delete(r.values, key)
		return true
	}
	r.values[key] = truncate(value, int(size))
	return true
}

// CrashKeys returns a copy of the current key values.
func (r *Reporter) CrashKeys() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.values)
}

// SetSwitchesFromCommandLine records up to MaxSwitches interesting
// arguments as switch-N keys and the argument count as num-switches.
// argv[0] is the program and is skipped.
func (r *Reporter) SetSwitchesFromCommandLine(argv []string) {
	if len(argv) == 0 {
		return
	}
	key := 1
	for _, arg := range argv[1:] {
		if key > MaxSwitches {
			break
		}
		if IsBoringSwitch(arg) {
			continue
		}
		r.SetCrashKeyValue(switchKey(key), arg)
		key++
	}
	for ; key <= MaxSwitches; key++ {
		r.SetCrashKeyValue(switchKey(key), "")
	}
	r.SetCrashKeyValue(numSwitchesKey, strconv.Itoa(len(argv)-1))
}

// Snapshot persists the current keys to the store and returns the report
// ID. Reports older than MaxDatabaseAgeInDays are pruned first.
func (r *Reporter) Snapshot(ctx context.Context) (int64, error) {
	if !r.Enabled() {
		return 0, errors.NotInitialized(errors.PhaseStorage, "crash reporting")
	}
	if r.store == nil {
		return 0, errors.NotInitialized(errors.PhaseStorage, "crash store")
	}

	now := r.now()
	if days := r.cfg.MaxDatabaseAgeInDays; days > 0 {
		pruned, err := r.store.Prune(ctx, now.Add(-time.Duration(days)*24*time.Hour))
		if err != nil {
			return 0, err
		}
		if pruned > 0 {
			Logger().Debug("pruned crash reports", zap.Int("count", pruned))
		}
	}

	if r.cfg.RateLimitEnabled && r.cfg.MaxUploadsPerDay > 0 {
		n, err := r.store.CountSince(ctx, now.Add(-24*time.Hour))
		if err != nil {
			return 0, err
		}
		if n >= r.cfg.MaxUploadsPerDay {
			return 0, ErrRateLimited
		}
	}

	r.mu.RLock()
	rep := &Report{
		ProcessType: r.processType,
		CreatedAt:   now,
		Keys:        maps.Clone(r.values),
	}
	r.mu.RUnlock()
	return r.store.Save(ctx, rep)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
