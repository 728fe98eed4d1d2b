// Package log provides leveled logging for keen-console.
//
// It keeps a small printf-style API over github.com/apex/log. Output goes
// through the apex cli handler when the stream is a terminal and the text
// handler otherwise; errors are written to stderr, everything else to stdout.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
//	log.Infof("Opened session %s for %s", id, app)
//	log.WithFields(log.Fields{"method": r.Method, "path": r.URL.Path}).Info("request")
//
//	log.SetVerbose(true)
//	log.Debugf("Edit: %s", edit)
package log
