package queue

import (
    "testing"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestForwardStopsWhenConsumerLoopEnds(t *testing.T) {
    msgs := make(chan amqp.Delivery, 1)
    msgs <- amqp.Delivery{Body: []byte(`{}`)}

    out := make(chan delivery) // no reader, the send must block
    done := make(chan struct{})
    finished := make(chan struct{})
    go func() {
        forward(AccountCreatedQueue, msgs, out, done)
        close(finished)
    }()

    close(done)
    select {
    case <-finished:
    case <-time.After(time.Second):
        t.Fatal("forwarder kept blocking after the loop ended")
    }
}

func TestForwardDrainsUntilSourceCloses(t *testing.T) {
    msgs := make(chan amqp.Delivery, 2)
    msgs <- amqp.Delivery{Body: []byte(`{"a":1}`)}
    msgs <- amqp.Delivery{Body: []byte(`{"b":2}`)}
    close(msgs)

    out := make(chan delivery, 2)
    done := make(chan struct{})
    finished := make(chan struct{})
    go func() {
        forward(ReservationRequestedQueue, msgs, out, done)
        close(finished)
    }()

    select {
    case <-finished:
    case <-time.After(time.Second):
        t.Fatal("forwarder did not finish after its source closed")
    }
    require.Len(t, out, 2)
    d := <-out
    assert.Equal(t, ReservationRequestedQueue, d.queue)
}

func TestRenderMailPerQueue(t *testing.T) {
    cases := []struct {
        queue string
        body  string
        want  []string
    }{
        {
            queue: AccountCreatedQueue,
            body: `{"user_id":2,"name":"Alice","lastname":"Mora","email":"alice@example.com",
                    "activation_link":"http://localhost:8080/api/v1/auth/activate?token=abc","created_at":"2026-09-01T10:00:00Z"}`,
            want: []string{"To: alice@example.com", "Activate your account", "?token=abc"},
        },
        {
            queue: ReservationRequestedQueue,
            body: `{"reservation_id":7,"reference":"ref-1","venue_name":"Court One","venue_location":"Riverside Complex",
                    "date":"2026-09-15","hour_initial":"10:00 AM","hour_finish":"12:00 PM",
                    "requester_name":"Alice Mora","requester_email":"alice@example.com","requested_at":"2026-09-01T10:00:00Z"}`,
            want: []string{"Reservation received", "Court One", "pending approval", "ref-1"},
        },
        {
            queue: ReservationConfirmedQueue,
            body: `{"reservation_id":7,"reference":"ref-1","venue_name":"Court One","venue_location":"Riverside Complex",
                    "date":"2026-09-15","hour_initial":"10:00 AM","hour_finish":"12:00 PM",
                    "requester_name":"Alice Mora","requester_email":"alice@example.com","confirmed_at":"2026-09-01T11:00:00Z"}`,
            want: []string{"Reservation confirmed", "is confirmed", "ref-1"},
        },
    }
    for _, tc := range cases {
        t.Run(tc.queue, func(t *testing.T) {
            line, err := renderMail(tc.queue, []byte(tc.body))
            require.NoError(t, err)
            for _, w := range tc.want {
                assert.Contains(t, line, w)
            }
        })
    }

    _, err := renderMail("unknown.queue", []byte(`{}`))
    assert.Error(t, err)

    _, err = renderMail(AccountCreatedQueue, []byte(`not json`))
    assert.Error(t, err)
}
