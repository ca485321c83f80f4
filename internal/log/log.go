package log

import (
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

var (
	mu     sync.RWMutex
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "ndfcctl",
		Level:  hclog.Info,
		Output: os.Stderr,
	})
)

// Configure sets the global log level and output format.
// Level is one of trace, debug, info, warn, error; format is console or json.
func Configure(level, format string) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}

	mu.Lock()
	defer mu.Unlock()
	logger = hclog.New(&hclog.LoggerOptions{
		Name:       "ndfcctl",
		Level:      lvl,
		Output:     os.Stderr,
		JSONFormat: strings.EqualFold(format, "json"),
	})
}

func get() hclog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Trace(msg string, args ...interface{}) { get().Trace(msg, args...) }
func Debug(msg string, args ...interface{}) { get().Debug(msg, args...) }
func Info(msg string, args ...interface{})  { get().Info(msg, args...) }
func Warn(msg string, args ...interface{})  { get().Warn(msg, args...) }
func Error(msg string, args ...interface{}) { get().Error(msg, args...) }
