package config

import (
	"log"

	"github.com/julien-sobczak/the-noteformatter/pkg/resync"
)

var (
	// Lazy-load
	loggerOnce      resync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = &Logger{verbose: VerboseOff}
	})
	return loggerSingleton
}

type Logger struct {
	verbose VerboseLevel
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.verbose = level
	return l
}

func (l *Logger) println(level VerboseLevel, v ...any) {
	if l.verbose >= level {
		log.Println(v...)
	}
}

func (l *Logger) printf(level VerboseLevel, format string, v ...any) {
	if l.verbose >= level {
		log.Printf(format, v...)
	}
}

func (l *Logger) Fatal(v ...any) {
	log.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	log.Fatalf(format, v...)
}

// Warnings are always reported.
func (l *Logger) Warn(v ...any) {
	log.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	log.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	l.println(VerboseInfo, v...)
}
func (l *Logger) Infof(format string, v ...any) {
	l.printf(VerboseInfo, format, v...)
}

func (l *Logger) Debug(v ...any) {
	l.println(VerboseDebug, v...)
}
func (l *Logger) Debugf(format string, v ...any) {
	l.printf(VerboseDebug, format, v...)
}

func (l *Logger) Trace(v ...any) {
	l.println(VerboseTrace, v...)
}
func (l *Logger) Tracef(format string, v ...any) {
	l.printf(VerboseTrace, format, v...)
}
