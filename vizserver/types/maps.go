package types

import (
	commontypes "github.com/wybiral/air-hockey/common/types"
)

type WatcherMap struct {
	*commontypes.SyncMap[*Watcher]
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		commontypes.NewSyncMap[*Watcher](),
	}
}

// Find returns nil when no watcher has this id.
func (wmap *WatcherMap) Find(id string) *Watcher {
	if res, ok := wmap.Get(id); ok {
		return res
	}

	return nil
}
