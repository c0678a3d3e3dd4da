package sse

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestPublishReachesOnlyTheAddressedVisitor(t *testing.T) {
	m := NewManager()
	go m.Run()

	alice := &client{visitorID: "alice", send: make(chan Event, 8)}
	bob := &client{visitorID: "bob", send: make(chan Event, 8)}
	m.register <- alice
	m.register <- bob

	m.Publish("alice", "cartUpdated", map[string]int{"n": 1})

	ev := receive(t, alice.send)
	assert.Equal(t, "cartUpdated", ev.Name)
	assert.Empty(t, bob.send)
}

func TestPublishFansOutToEveryViewOfAVisitor(t *testing.T) {
	m := NewManager()
	go m.Run()

	tab1 := &client{visitorID: "v", send: make(chan Event, 8)}
	tab2 := &client{visitorID: "v", send: make(chan Event, 8)}
	m.register <- tab1
	m.register <- tab2

	m.Publish("v", "cartUpdated", nil)

	assert.Equal(t, "cartUpdated", receive(t, tab1.send).Name)
	assert.Equal(t, "cartUpdated", receive(t, tab2.send).Name)
}

func TestUnregisterClosesTheClient(t *testing.T) {
	m := NewManager()
	go m.Run()

	cl := &client{visitorID: "v", send: make(chan Event, 8)}
	m.register <- cl
	m.unregister <- cl

	_, open := <-cl.send
	assert.False(t, open)
}

func TestSlowConsumerDropsInsteadOfBlocking(t *testing.T) {
	m := NewManager()
	go m.Run()

	slow := &client{visitorID: "v", send: make(chan Event, 8)}
	m.register <- slow
	for i := 0; i < 12; i++ {
		m.Publish("v", "cartUpdated", i)
	}

	// A marker for another visitor proves the loop got past every publish.
	marker := &client{visitorID: "other", send: make(chan Event, 1)}
	m.register <- marker
	m.Publish("other", "done", nil)
	receive(t, marker.send)

	assert.Len(t, slow.send, 8)
}

func TestServeHTTPStreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager()
	go m.Run()

	r := gin.New()
	r.GET("/events", func(c *gin.Context) {
		m.ServeHTTP(c, "v")
	})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/events")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 16)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	// The handler may still be registering; publish until the stream answers.
	deadline := time.After(5 * time.Second)
	for {
		m.Publish("v", "cartUpdated", map[string]string{"x": "1"})
		select {
		case line := <-lines:
			if strings.Contains(line, "cartUpdated") {
				return
			}
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("no event observed on the stream")
		}
	}
}
