package loginlimit

import (
	"fmt"
	"sync"
)

type counterMap struct {
	lock   sync.Mutex
	counts map[string]int
}

// Store holds the failure counters for both keyspaces. Each keyspace has its own lock, so a wipe of one never waits on
// the other.
type Store struct {
	spaces map[Keyspace]*counterMap
}

func NewStore() *Store {
	s := &Store{spaces: make(map[Keyspace]*counterMap, len(keyspaces))}
	for _, ks := range keyspaces {
		s.spaces[ks] = &counterMap{counts: map[string]int{}}
	}
	return s
}

func (s *Store) space(ks Keyspace) *counterMap {
	cm, ok := s.spaces[ks]
	if !ok {
		panic(fmt.Sprintf("loginlimit: unknown keyspace %d", ks))
	}
	return cm
}

// Get returns the current count for key and whether the key is being tracked at all.
func (s *Store) Get(ks Keyspace, key string) (int, bool) {
	cm := s.space(ks)
	cm.lock.Lock()
	defer cm.lock.Unlock()

	count, found := cm.counts[key]
	return count, found
}

// Increment adds one to the count for key, creating it if needed, and returns the new count.
func (s *Store) Increment(ks Keyspace, key string) int {
	cm := s.space(ks)
	cm.lock.Lock()
	defer cm.lock.Unlock()

	cm.counts[key]++
	return cm.counts[key]
}

// Clear stops tracking key entirely.
func (s *Store) Clear(ks Keyspace, key string) {
	cm := s.space(ks)
	cm.lock.Lock()
	defer cm.lock.Unlock()

	delete(cm.counts, key)
}

// ClearAll forgets every key in the keyspace.
func (s *Store) ClearAll(ks Keyspace) {
	cm := s.space(ks)
	cm.lock.Lock()
	defer cm.lock.Unlock()

	cm.counts = map[string]int{}
}

func (s *Store) Len(ks Keyspace) int {
	cm := s.space(ks)
	cm.lock.Lock()
	defer cm.lock.Unlock()

	return len(cm.counts)
}
