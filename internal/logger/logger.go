// Package logger provides the leveled log sink shared by the generator, the loader and the CLI.
//
// A Sink is passed explicitly to every component that reports progress.
// Arguments after the message are slog-style key/value pairs.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level is the severity of a log message.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "SUCCESS"
	LevelWarn    Level = "WARN"
	LevelError   Level = "ERROR"
)

// TimestampLayout renders timestamps like "10/18/26, 3:04:05 PM".
const TimestampLayout = "1/2/06, 3:04:05 PM"

// Sink accepts leveled messages. It is purely observational.
type Sink interface {
	Info(msg string, args ...any)
	Success(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Console writes colored, timestamped lines:
//
//	[10/18/26, 3:04:05 PM][INFO] message key=value
type Console struct {
	w       io.Writer
	now     func() time.Time
	mu      sync.Mutex
	palette map[Level][2]*color.Color
	stamp   *color.Color
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) ConsoleOption {
	return func(c *Console) {
		c.now = now
	}
}

// WithoutColor disables ANSI colors regardless of the terminal.
func WithoutColor() ConsoleOption {
	return func(c *Console) {
		c.stamp.DisableColor()
		for _, pair := range c.palette {
			pair[0].DisableColor()
			pair[1].DisableColor()
		}
	}
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, options ...ConsoleOption) *Console {
	c := &Console{
		w:     w,
		now:   time.Now,
		stamp: color.New(color.FgHiCyan),
		palette: map[Level][2]*color.Color{
			LevelInfo:    {color.New(color.FgHiBlue), color.New(color.FgHiCyan)},
			LevelSuccess: {color.New(color.FgHiGreen), color.New(color.FgHiGreen)},
			LevelWarn:    {color.New(color.FgHiYellow), color.New(color.FgHiYellow)},
			LevelError:   {color.New(color.FgHiRed), color.New(color.FgHiRed)},
		},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *Console) Info(msg string, args ...any)    { c.log(LevelInfo, msg, args) }
func (c *Console) Success(msg string, args ...any) { c.log(LevelSuccess, msg, args) }
func (c *Console) Warn(msg string, args ...any)    { c.log(LevelWarn, msg, args) }
func (c *Console) Error(msg string, args ...any)   { c.log(LevelError, msg, args) }

func (c *Console) log(level Level, msg string, args []any) {
	pair := c.palette[level]
	line := fmt.Sprintf("%s%s %s\n",
		c.stamp.Sprintf("[%s]", c.now().Format(TimestampLayout)),
		pair[0].Sprintf("[%s]", level),
		pair[1].Sprint(msg+formatArgs(args)))

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.w, line)
}

// formatArgs renders key/value pairs as " key=value". A trailing key without value is printed as is.
func formatArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			fmt.Fprintf(&sb, " %v", args[i])
			break
		}
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	return sb.String()
}

// Slog adapts a *slog.Logger. Success messages are logged at info level with status=success.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a Sink backed by l. A nil l uses slog.Default().
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{logger: l}
}

func (s *Slog) Info(msg string, args ...any) { s.logger.Info(msg, args...) }

func (s *Slog) Success(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelInfo, msg, append([]any{"status", "success"}, args...)...)
}

func (s *Slog) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *Slog) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

type nop struct{}

func (nop) Info(string, ...any)    {}
func (nop) Success(string, ...any) {}
func (nop) Warn(string, ...any)    {}
func (nop) Error(string, ...any)   {}

// Nop returns a Sink that discards everything.
func Nop() Sink {
	return nop{}
}
