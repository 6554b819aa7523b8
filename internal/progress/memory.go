package progress

import "sync"

// MemoryPersister keeps the record in memory. Used in tests and when
// no database path is configured.
type MemoryPersister struct {
	mu  sync.Mutex
	rec Record
	set bool
}

// NewMemoryPersister returns an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load() (Record, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rec, p.set, nil
}

func (p *MemoryPersister) Save(rec Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rec = rec
	p.set = true
	return nil
}
