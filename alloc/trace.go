package alloc

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logAlloc = os.Getenv("SLIST_LOG_ALLOC") != ""

var tracer = newTracer()

func newTracer() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	if logAlloc {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// SetLogLevel changes the verbosity of allocator tracing. Level names follow
// logrus ("debug", "info", "warn", ...).
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	tracer.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects allocator tracing.
func SetLogOutput(w io.Writer) {
	tracer.SetOutput(w)
}

func traceEnabled() bool {
	return tracer.IsLevelEnabled(logrus.DebugLevel)
}

func traceAlloc(kind string, ref CellRef, size int32, cls Class) {
	if !traceEnabled() {
		return
	}
	tracer.WithFields(logrus.Fields{
		"allocator": kind,
		"ref":       ref,
		"size":      size,
		"class":     cls.String(),
	}).Debug("alloc")
}

func traceFree(kind string, ref CellRef, size int32, cls Class) {
	if !traceEnabled() {
		return
	}
	tracer.WithFields(logrus.Fields{
		"allocator": kind,
		"ref":       ref,
		"size":      size,
		"class":     cls.String(),
	}).Debug("free")
}
