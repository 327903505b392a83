package logger

import (
	"log"

	"go.uber.org/zap"
)

// Log is the global application logger. It is a no-op until InitLogger runs.
var Log = zap.NewNop()

func InitLogger(level string) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		log.Fatalf("parse log level: %v", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}
	Log = zl
}
