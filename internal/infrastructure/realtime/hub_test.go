package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autocare_api/internal/domain/entities"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}
	tech     = entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
	other    = entities.Actor{ID: "tech-2", Role: entities.RoleTechnician}
	supplier = entities.Actor{ID: "sup-1", Role: entities.RoleSupplier}
)

func acceptedEvent() entities.JobEvent {
	job := entities.Job{ID: "job-1", CustomerID: "cust-1", TechnicianID: "tech-1", Status: entities.JobStatusAccepted}
	return entities.JobEvent{Type: entities.JobEventUpdated, Command: "accept", JobID: job.ID, Status: job.Status, Job: job, At: time.Now()}
}

func TestEventFor(t *testing.T) {
	ev := acceptedEvent()

	got, ok := eventFor(customer, ev)
	assert.True(t, ok)
	assert.Equal(t, "job-1", got.Job.ID)

	got, ok = eventFor(other, ev)
	assert.True(t, ok)
	assert.Empty(t, got.Job.ID)
	assert.Equal(t, entities.JobStatusAccepted, got.Status)

	_, ok = eventFor(supplier, ev)
	assert.False(t, ok)

	ev.Command = "arrive"
	_, ok = eventFor(other, ev)
	assert.False(t, ok)
}

func TestHub_PublishFiltersAndNeverBlocks(t *testing.T) {
	h := NewHub()
	h.buffer = 1
	custCh, unsubCust := h.Subscribe(customer)
	defer unsubCust()
	supCh, unsubSup := h.Subscribe(supplier)
	defer unsubSup()

	h.Publish(context.Background(), acceptedEvent())
	h.Publish(context.Background(), acceptedEvent())

	select {
	case ev := <-custCh:
		assert.Equal(t, "job-1", ev.JobID)
	default:
		t.Fatal("customer should receive the event")
	}
	select {
	case <-custCh:
		t.Fatal("second event should have been dropped")
	default:
	}
	select {
	case <-supCh:
		t.Fatal("supplier should not receive job events")
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	h := NewHub()
	ch, unsubscribe := h.Subscribe(customer)
	assert.Equal(t, 1, h.Subscribers())

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, h.Subscribers())
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_ServeStreamsOverWebsocket(t *testing.T) {
	h := NewHub()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Serve(context.Background(), conn, customer)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return h.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	h.Publish(context.Background(), acceptedEvent())

	var got entities.JobEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "job-1", got.JobID)
	assert.Equal(t, entities.JobEventUpdated, got.Type)
}
