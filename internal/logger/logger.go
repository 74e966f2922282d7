package logger

import "go.uber.org/zap"

// Log is the process-wide sugared logger. It defaults to a no-op logger so
// packages can log before Initialize has run (tests in particular).
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a production logger at the given level.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = z.Sugar()
	return nil
}
