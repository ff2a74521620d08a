package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// GooseLogger adapts a Logger to goose's Printf/Fatalf logger.
type GooseLogger struct {
	l Logger
}

func NewGooseLogger(l Logger) *GooseLogger {
	return &GooseLogger{l: l.With("module", "migrations")}
}

func (g *GooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

var exit = os.Exit

func (g *GooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	exit(1)
}
