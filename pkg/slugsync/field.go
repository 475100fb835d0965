package slugsync

import "sync"

// Field is a text input the synchronizer writes to.
type Field interface {
	Value() string
	SetValue(v string)
}

// TextField is an in-memory Field that remembers whether it was written.
type TextField struct {
	value   string
	written bool
	mu      sync.Mutex
}

// NewTextField returns a field holding v.
func NewTextField(v string) *TextField {
	return &TextField{value: v}
}

func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *TextField) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
	f.written = true
}

// Written reports whether SetValue was called at least once.
func (f *TextField) Written() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written
}
