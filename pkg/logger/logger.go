package logger

import (
	"go.uber.org/zap"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Sync() error
}

// ZapLogger é a implementação de Logger sobre o zap
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger cria uma nova instância de Logger de acordo com o ambiente
func NewLogger(env string) Logger {
	var base *zap.Logger
	if env == "production" {
		base = zap.Must(zap.NewProduction())
	} else {
		base = zap.Must(zap.NewDevelopment())
	}
	return &ZapLogger{sugar: base.Sugar()}
}

// New cria um Logger sobre um *zap.Logger já configurado
func New(base *zap.Logger) Logger {
	return &ZapLogger{sugar: base.Sugar()}
}

// NewNop cria um Logger que descarta tudo
func NewNop() Logger {
	return &ZapLogger{sugar: zap.NewNop().Sugar()}
}

// Info registra uma mensagem de informação
func (l *ZapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *ZapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *ZapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *ZapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}

// Sync descarrega o buffer do logger
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
