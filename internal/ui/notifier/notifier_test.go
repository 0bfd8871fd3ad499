package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Subscribe_Unsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe(TopicGallery)
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Listeners(TopicGallery))
	assert.Equal(t, 0, n.Listeners(TopicStatus))

	n.Unsubscribe(TopicGallery, ch)
	assert.Equal(t, 0, n.Listeners(TopicGallery))

	_, open := <-ch
	assert.False(t, open, "unsubscribe closes the channel")

	// A second unsubscribe is a no-op.
	assert.NotPanics(t, func() { n.Unsubscribe(TopicGallery, ch) })
}

func TestNotifier_BroadcastIsPerTopic(t *testing.T) {
	n := New()

	gallery1 := n.Subscribe(TopicGallery)
	gallery2 := n.Subscribe(TopicGallery)
	status := n.Subscribe(TopicStatus)
	defer n.Unsubscribe(TopicGallery, gallery1)
	defer n.Unsubscribe(TopicGallery, gallery2)
	defer n.Unsubscribe(TopicStatus, status)

	n.Broadcast(TopicGallery)

	for name, ch := range map[string]chan struct{}{"gallery1": gallery1, "gallery2": gallery2} {
		select {
		case <-ch:
		case <-time.After(100 * time.Millisecond):
			t.Errorf("%s did not receive broadcast", name)
		}
	}

	select {
	case <-status:
		t.Error("status listener received a gallery ping")
	default:
	}
}

func TestNotifier_Broadcast_NonBlocking(t *testing.T) {
	n := New()

	ch := n.Subscribe(TopicStatus)
	defer n.Unsubscribe(TopicStatus, ch)

	ch <- struct{}{}

	done := make(chan bool)
	go func() {
		n.Broadcast(TopicStatus)
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Error("Broadcast blocked on full channel")
	}
}

func TestNotifier_Concurrent(t *testing.T) {
	n := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(topic Topic) {
			defer wg.Done()
			ch := n.Subscribe(topic)
			n.Broadcast(topic)
			n.Unsubscribe(topic, ch)
		}([]Topic{TopicGallery, TopicStatus}[i%2])
	}
	wg.Wait()

	assert.Equal(t, 0, n.Listeners(TopicGallery))
	assert.Equal(t, 0, n.Listeners(TopicStatus))
}
