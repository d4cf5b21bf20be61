// Package keylock - мьютекс на строковый ключ.
//
// Записи считают ссылки и удаляются, когда ключ никто не держит и не ждёт,
// поэтому в карте только используемые ключи.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Locker {
	return &Locker{
		entries: make(map[string]*entry),
	}
}

// Lock ждёт захвата key и возвращает функцию освобождения.
// Функцию освобождения можно вызывать повторно.
func (l *Locker) Lock(key string) func() {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len - число ключей, которые сейчас держат или ждут.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
