package app

import (
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
)

func TestPublishOrderCreatedDoesNotBlockOnSlowHandler(t *testing.T) {
	a := &Application{bus: EventBus.New()}

	release := make(chan struct{})
	received := make(chan int64, 1)
	if err := a.subscribeOrderEvents(func(orderID int64) {
		<-release
		received <- orderID
	}); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		a.PublishOrderCreated(42)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PublishOrderCreated blocked on a slow subscriber")
	}

	close(release)
	select {
	case id := <-received:
		if id != 42 {
			t.Errorf("handler got order id %d, want 42", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never ran")
	}
}
