package mock

import "github.com/tendermint/tendermint/libs/log"

var _ log.Logger = (*MockLogger)(nil)

// MockLogger records the entries logged by the keepers of a test chain
type MockLogger struct {
	DebugLogs  []LogEntry
	InfoLogs   []LogEntry
	ErrorLogs  []LogEntry
	WithRecord []interface{}
}

// LogEntry is a struct that contains the message and key values passed to the logger
type LogEntry struct {
	Message string
	Params  []interface{}
}

// NewMockLogger returns a new MockLogger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug entry
func (l *MockLogger) Debug(msg string, params ...interface{}) {
	l.DebugLogs = append(l.DebugLogs, LogEntry{Message: msg, Params: params})
}

// Info records an info entry
func (l *MockLogger) Info(msg string, params ...interface{}) {
	l.InfoLogs = append(l.InfoLogs, LogEntry{Message: msg, Params: params})
}

// Error records an error entry
func (l *MockLogger) Error(msg string, params ...interface{}) {
	l.ErrorLogs = append(l.ErrorLogs, LogEntry{Message: msg, Params: params})
}

// With records the key values and returns the same logger, so that entries of module loggers are
// recorded together.
func (l *MockLogger) With(params ...interface{}) log.Logger {
	l.WithRecord = append(l.WithRecord, params...)
	return l
}

// Reset drops all recorded entries
func (l *MockLogger) Reset() {
	*l = MockLogger{}
}

// Logged returns the entries of the given level with the given message
func Logged(entries []LogEntry, msg string) []LogEntry {
	var matches []LogEntry
	for _, entry := range entries {
		if entry.Message == msg {
			matches = append(matches, entry)
		}
	}

	return matches
}
