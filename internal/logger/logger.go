package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel accepts the level names case-insensitively. An empty
// string means info.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	}
	for l, name := range levelNames {
		if strings.ToLower(name) == s {
			return Level(l), nil
		}
	}
	return LevelInfo, errors.Errorf("unknown log level %q", s)
}

// Logger writes one line per message: time, level, component name and
// text. Named children share the parent's writer and lock.
type Logger struct {
	w     io.Writer
	mu    *sync.Mutex
	level Level
	name  string
}

// New returns a logger for the named component. A nil w means stderr.
func New(w io.Writer, level Level, name string) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{w: w, mu: new(sync.Mutex), level: level, name: name}
}

func Default() *Logger {
	return New(nil, LevelInfo, "")
}

// Named returns a child logger for a sub-component, e.g. "nestdraw/window".
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		name = l.name + "/" + name
	}
	child.name = name
	return &child
}

func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args) }
func (l *Logger) Info(format string, args ...any)  { l.write(LevelInfo, format, args) }
func (l *Logger) Warn(format string, args ...any)  { l.write(LevelWarn, format, args) }
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args) }

func (l *Logger) write(level Level, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	var b strings.Builder
	b.WriteString(time.Now().Format("15:04:05.000"))
	fmt.Fprintf(&b, " %-5s ", level)
	if l.name != "" {
		b.WriteString(l.name)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	l.mu.Lock()
	io.WriteString(l.w, b.String())
	l.mu.Unlock()
}
