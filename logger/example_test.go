package logger_test

import (
	"io"

	"github.com/runlab/runlog/logger"
)

// Set the run name once at startup, then create named loggers through
// the default registry.
func Example() {
	logger.SetRunName("run42")

	svc := logger.New("svc")
	_ = svc.AddFileHandler("main", logger.FileOptions{Level: logger.DebugLevel})

	svc.Info("service starting",
		logger.String("version", "1.4.2"),
		logger.Int("port", 8080),
	)
}

// Share a file handler between two loggers so their output lands in
// the same file.
func ExampleLogger_JoinHandler() {
	reg := logger.NewRegistry(logger.RegistryConfig{BaseDir: "data/logs"})
	defer reg.Close()

	svc := reg.Logger("svc")
	_ = svc.AddFileHandler("main", logger.FileOptions{})

	worker := reg.Logger("worker")
	_ = worker.JoinHandler("svc", "main")

	svc.Info("request accepted")
	worker.Info("request processed") // same file as the line above
}

// Attach a console handler with an explicit sink and threshold.
func ExampleLogger_AddConsoleHandler() {
	reg := logger.NewRegistry(logger.RegistryConfig{})
	defer reg.Close()

	svc := reg.Logger("svc")
	_ = svc.AddConsoleHandler("stderr", logger.ConsoleOptions{
		Writer: io.Discard, // os.Stderr in real code
		Level:  logger.WarningLevel,
	})

	svc.Debug("not emitted")
	svc.Warning("emitted")
}
