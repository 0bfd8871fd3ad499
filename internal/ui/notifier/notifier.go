// Package notifier fans out refresh pings to the dashboard's live SSE streams.
package notifier

import "sync"

// Topic names a class of updates.
type Topic string

// Topics pushed to browsers.
const (
	// TopicGallery fires when a gallery image appears, changes or disappears.
	TopicGallery Topic = "gallery"
	// TopicStatus fires after store activity so status badges refresh.
	TopicStatus Topic = "status"
)

// Notifier broadcasts pings to listeners of a topic. A ping carries no data;
// listeners re-read whatever they display.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[Topic]map[chan struct{}]struct{}
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[Topic]map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel that receives pings for topic.
// The caller must call Unsubscribe when done.
func (n *Notifier) Subscribe(topic Topic) chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners[topic] == nil {
		n.listeners[topic] = make(map[chan struct{}]struct{})
	}
	n.listeners[topic][ch] = struct{}{}
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (n *Notifier) Unsubscribe(topic Topic, ch chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, ok := n.listeners[topic][ch]; !ok {
		return
	}
	delete(n.listeners[topic], ch)
	if len(n.listeners[topic]) == 0 {
		delete(n.listeners, topic)
	}
	close(ch)
}

// Broadcast pings every listener of topic without blocking; a listener with a
// pending ping is skipped.
func (n *Notifier) Broadcast(topic Topic) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.listeners[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Listeners returns the number of subscribers of topic.
func (n *Notifier) Listeners(topic Topic) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners[topic])
}
