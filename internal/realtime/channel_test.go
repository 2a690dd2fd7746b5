package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uturns/booking-agent/internal/models"
	"github.com/uturns/booking-agent/internal/store"
)

var upgrader = websocket.Upgrader{}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestChannelDispatchesIncomingFrames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		payload, _ := json.Marshal(CancelBookPayload{BookingID: "b1"})
		require.NoError(t, conn.WriteJSON(Frame{Event: EventCancelBook, Data: payload}))

		// segura a conexão aberta até o teste terminar
		conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)

	bookings := store.NewBookings()
	bookings.SetCompanyBookings([]models.Booking{{ID: "b1"}, {ID: "b2"}})

	d := NewDispatcher(bookings, nil, nil, nil)
	ch := NewChannel(wsURL(srv), d)
	t.Cleanup(ch.Close)

	ch.Open()

	require.Eventually(t, func() bool {
		return len(bookings.Get().Company) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "b2", bookings.Get().Company[0].ID)
}

func TestChannelEmitReachesBackend(t *testing.T) {
	received := make(chan Frame, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		var frame Frame
		if err := conn.ReadJSON(&frame); err == nil {
			received <- frame
		}
	}))
	t.Cleanup(srv.Close)

	ch := NewChannel(wsURL(srv), NewDispatcher(store.NewBookings(), nil, nil, nil))
	t.Cleanup(ch.Close)

	err := ch.Emit(EventUpdateProfile, UpdateProfilePayload{
		Action:  "updated",
		Profile: models.Company{ID: "c1"},
	})
	require.NoError(t, err)

	select {
	case frame := <-received:
		assert.Equal(t, EventUpdateProfile, frame.Event)

		var payload UpdateProfilePayload
		require.NoError(t, json.Unmarshal(frame.Data, &payload))
		assert.Equal(t, "c1", payload.Profile.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("frame não chegou no backend")
	}
}

func TestChannelStaysDeadAfterDialFailure(t *testing.T) {
	// nada escutando nessa porta
	ch := NewChannel("ws://127.0.0.1:1", nil)

	ch.Open()

	err := ch.Emit(EventUpdateProfile, UpdateProfilePayload{})
	assert.ErrorIs(t, err, ErrChannelClosed)
}

func TestChannelEmitAfterCloseFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()
		conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)

	ch := NewChannel(wsURL(srv), NewDispatcher(store.NewBookings(), nil, nil, nil))
	ch.Open()
	ch.Close()

	assert.ErrorIs(t, ch.Emit(EventCancelBook, CancelBookPayload{BookingID: "b1"}), ErrChannelClosed)
}
