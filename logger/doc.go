// Package logger is the public API of runlog. Most users only need to
// import this package.
//
// A Registry owns a set of named Logger instances and the run ID they
// share. Constructing a logger registers it; constructing again with
// the same name returns the same instance:
//
//	reg := logger.NewRegistry(logger.RegistryConfig{})
//	reg.SetRunName("run42")
//	svc := reg.Logger("svc")
//	svc.AddFileHandler("main", logger.FileOptions{Level: logger.DebugLevel})
//	svc.Info("ready", logger.Int("port", 8080))
//
// File handler paths encode the run name, so every log file of one
// process run lands under a common run directory:
//
//	data/logs/<date>/<runID>/<logger>_<handler>.log
//
// Handlers can be shared between instances. JoinHandler attaches an
// existing handler of another logger to this one, so both write to the
// same sink; RemoveHandler detaches only the calling instance, and the
// sink closes when its last reference is gone:
//
//	worker := reg.Logger("worker")
//	worker.JoinHandler("svc", "main")
//
// There is no per-logger level gate — each handler filters with its
// own threshold, adjustable at runtime via SetHandlerLevel.
//
// A package-level default registry backs the package functions New,
// Lookup, Names, and SetRunName for programs that don't need test
// isolation or multiple log trees. Whole logging trees can also be
// declared in a TOML file and built with NewRegistryFromConfig.
package logger
