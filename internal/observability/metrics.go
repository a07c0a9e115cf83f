package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	dispatchCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		dispatchCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordDispatch counts agent dispatches per role and action.
func (m *Metrics) RecordDispatch(role, action string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	key := role + "|" + action + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatchCount[key]++
}

// DispatchCount returns the counter for a role|action|outcome triple.
func (m *Metrics) DispatchCount(role, action string, ok bool) int64 {
	if m == nil {
		return 0
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchCount[role+"|"+action+"|"+outcome]
}
