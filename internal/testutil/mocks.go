package testutil

import (
	"context"
	"sync"
	"time"

	"wld/internal/models"
	"wld/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockStore implements interfaces.StoreInterface with injectable state.
type MockStore struct {
	mu       sync.Mutex
	Doc      models.Document
	Rev      models.Revision
	ReadErr  error
	WriteErr error

	ReadCalls  int
	WriteCalls []WriteCall
}

type WriteCall struct {
	Doc models.Document
	Rev models.Revision
}

func (m *MockStore) Read(_ context.Context) (models.Document, models.Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	if m.ReadErr != nil {
		return nil, "", m.ReadErr
	}
	doc := make(models.Document, len(m.Doc))
	for k, v := range m.Doc {
		doc[k] = v
	}
	return doc, m.Rev, nil
}

func (m *MockStore) Write(_ context.Context, doc models.Document, rev models.Revision) (models.Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls = append(m.WriteCalls, WriteCall{Doc: doc, Rev: rev})
	if m.WriteErr != nil {
		return "", m.WriteErr
	}
	m.Doc = doc
	m.Rev = m.Rev + "x"
	return m.Rev, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	Requests       int
	StoreReads     int
	StoreWrites    int
	WriteConflicts int
	DocumentDays   int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncStoreReads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreReads++
}
func (m *MockMetrics) IncStoreWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreWrites++
}
func (m *MockMetrics) IncWriteConflicts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteConflicts++
}
func (m *MockMetrics) ObserveStoreDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) SetDocumentDays(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DocumentDays = count
}
