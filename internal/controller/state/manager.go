package state

import (
	"sync"
	"time"
)

// Manager хранит последний запрос каждого чата
type Manager struct {
	mu      sync.RWMutex
	queries map[int64]Query // chatID -> Query
	ttl     time.Duration
	now     func() time.Time
}

// NewManager создаёт менеджер; запросы старше ttl забываются
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		queries: make(map[int64]Query),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get получает запрос чата
func (sm *Manager) Get(chatID int64) (Query, bool) {
	sm.mu.RLock()
	q, ok := sm.queries[chatID]
	sm.mu.RUnlock()

	if !ok {
		return Query{}, false
	}
	if sm.ttl > 0 && sm.now().Sub(q.SetAt) > sm.ttl {
		sm.Clear(chatID)
		return Query{}, false
	}
	return q, true
}

// Set запоминает запрос чата
func (sm *Manager) Set(chatID int64, q Query) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	q.SetAt = sm.now()
	sm.queries[chatID] = q
}

// Clear забывает запрос чата
func (sm *Manager) Clear(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.queries, chatID)
}
