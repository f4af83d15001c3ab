package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repository) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
	// WithComponent devolve um logger filho com o campo "component" preenchido.
	WithComponent(name string) Logger
}

// LogrusLogger é a implementação de Logger sobre o logrus, com saída JSON.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogger cria o logger raiz no nível informado (debug, info, warn, error).
// Esta função é chamada no main.go.
func NewLogger(level string) Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput cria o logger raiz escrevendo em out.
func NewWithOutput(level string, out io.Writer) Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	})
	base.SetLevel(parseLevel(level))
	return &LogrusLogger{entry: logrus.NewEntry(base)}
}

// FromEntry adapta uma entrada logrus existente (útil em testes com hooks).
func FromEntry(entry *logrus.Entry) Logger {
	return &LogrusLogger{entry: entry}
}

// parseLevel converte o nível textual, com "info" como padrão.
func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *LogrusLogger) with(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	return l.entry.WithFields(logrus.Fields(fields))
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.with(fields).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.with(fields).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.with(fields).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error) {
	if err != nil {
		l.entry.WithError(err).Error(msg)
		return
	}
	l.entry.Error(msg)
}

func (l *LogrusLogger) Fatal(msg string, err error) {
	l.entry.WithError(err).Fatal(msg)
}

func (l *LogrusLogger) WithComponent(name string) Logger {
	return &LogrusLogger{entry: l.entry.WithField("component", name)}
}

// Nop devolve um logger que descarta tudo. Usado em testes.
func Nop() Logger {
	return NewWithOutput("panic", io.Discard)
}
