// Package logging builds the logr.Logger used by the CLI.
//
// Records are rendered by zap's console encoder as
// "15:04:05  INFO  message  {key: value}" lines. Verbosity is an explicit
// [Options] field: debug output is written through logger.V(1) and only
// shows when Options.Debug is set.
package logging
