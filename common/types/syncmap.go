package types

import "sync"

type SyncMap[T any] struct {
	data map[string]T
	lock *sync.RWMutex
}

func NewSyncMap[T any]() *SyncMap[T] {
	return &SyncMap[T]{
		data: make(map[string]T),
		lock: &sync.RWMutex{},
	}
}

func (wmap *SyncMap[T]) Get(id string) (T, bool) {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	res, present := wmap.data[id]
	return res, present
}

func (wmap *SyncMap[T]) Set(id string, item T) {
	wmap.lock.Lock()
	wmap.data[id] = item
	wmap.lock.Unlock()
}

func (wmap *SyncMap[T]) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *SyncMap[T]) Size() int {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	return len(wmap.data)
}

// Values returns a snapshot of the stored items, in no particular order.
func (wmap *SyncMap[T]) Values() []T {
	wmap.lock.RLock()
	defer wmap.lock.RUnlock()

	res := make([]T, 0, len(wmap.data))
	for _, item := range wmap.data {
		res = append(res, item)
	}

	return res
}
