package api

import (
	"sync"

	"github.com/sparktechagency/phoenixx-cli/pkg/logger"
)

// Tag labels a cached query for invalidation. Mutations that touch a
// resource invalidate its tag, which refetches every live query holding it.
type Tag string

const (
	TagPost         Tag = "post"
	TagComment      Tag = "comment"
	TagChat         Tag = "chat"
	TagMessage      Tag = "message"
	TagNotification Tag = "notification"
	TagProfile      Tag = "profile"
	TagCategory     Tag = "category"
	TagFAQ          Tag = "faq"
)

var (
	subscribersMu sync.RWMutex
	subscribers   = make(map[Tag]map[int]func())
	nextSubID     int
)

// Subscribe registers a refetch callback under one or more tags. The
// returned function removes the subscription; callers run it when the
// query's consumer goes away.
func Subscribe(refetch func(), tags ...Tag) func() {
	subscribersMu.Lock()
	id := nextSubID
	nextSubID++
	for _, tag := range tags {
		if subscribers[tag] == nil {
			subscribers[tag] = make(map[int]func())
		}
		subscribers[tag][id] = refetch
	}
	subscribersMu.Unlock()

	return func() {
		subscribersMu.Lock()
		for _, tag := range tags {
			delete(subscribers[tag], id)
		}
		subscribersMu.Unlock()
	}
}

// Invalidate triggers a refetch of every live query subscribed to any of
// the given tags. A query subscribed under several invalidated tags is
// refetched once.
func Invalidate(tags ...Tag) {
	subscribersMu.RLock()
	seen := make(map[int]bool)
	var refetches []func()
	for _, tag := range tags {
		for id, refetch := range subscribers[tag] {
			if !seen[id] {
				seen[id] = true
				refetches = append(refetches, refetch)
			}
		}
	}
	subscribersMu.RUnlock()

	logger.Debug("Invalidating cache tags", "tags", tags, "queries", len(refetches))

	for _, refetch := range refetches {
		refetch()
	}
}
