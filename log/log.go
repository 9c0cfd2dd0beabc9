package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

type Options struct {
	// Console mirrors diagnostics to stderr. Set it only once stderr is
	// bound to a console.
	Console bool
}

func ResolveDir() (string, error) {
	// Priority 1: RUNNER_LOG_PATH environment variable
	envPath := os.Getenv("RUNNER_LOG_PATH")
	if envPath != "" {
		if !filepath.IsAbs(envPath) {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			return filepath.Join(wd, envPath), nil
		}
		return envPath, nil
	}

	// Priority 2: Default OS-specific location
	return getDefaultDir()
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func Init(opts Options) error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	pid = os.Getpid()

	var err error
	diagPath := filepath.Join(dir, "diagnostics_log.txt")
	diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        diagFile,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}}
	if opts.Console {
		writers = append(writers, stderrWriter())
	}
	diagLog = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func stderrWriter() io.Writer {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		TimeFormat: "15:04:05",
		NoColor:    !tty,
	}
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Startup(version, console string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("version", version).
		Str("console", console).
		Msg("startup")
}

func Arguments(n int) {
	if !logReady {
		return
	}
	diagLog.Info().Int("count", n).Msg("entrypoint_args")
}

type PlacementData struct {
	Left, Top, Right, Bottom int32
	X, Y, Width, Height      int32
}

func Placement(p PlacementData) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int32("wa_left", p.Left).
		Int32("wa_top", p.Top).
		Int32("wa_right", p.Right).
		Int32("wa_bottom", p.Bottom).
		Int32("x", p.X).
		Int32("y", p.Y).
		Int32("width", p.Width).
		Int32("height", p.Height).
		Msg("placement")
}

func WindowCreated(title string, handle uintptr) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("title", title).
		Str("hwnd", fmt.Sprintf("%#x", handle)).
		Msg("window_created")
}

func LoopExit(dispatched int) {
	if !logReady {
		return
	}
	diagLog.Info().Int("dispatched", dispatched).Msg("loop_exit")
}
