//go:build nolog
// +build nolog

package build

// LogLevel is ignored when logging is compiled out.
var LogLevel = "off"

// LoggingType compiles out every subsystem logger.
const LoggingType = LogTypeNone
