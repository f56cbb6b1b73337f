package eventbustest_test

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/eventbus/eventbustest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		match   bool
	}{
		{"minutes.meeting.created", "minutes.meeting.created", true},
		{"minutes.meeting.*", "minutes.meeting.deleted", true},
		{"minutes.*.created", "minutes.attendee.created", true},
		{"minutes.#", "minutes.attendance.added", true},
		{"#", "minutes.meeting.created", true},
		{"minutes.meeting.*", "minutes.attendee.created", false},
		{"minutes.*", "minutes.meeting.created", false},
		{"minutes.meeting.created", "minutes.meeting", false},
	}

	for _, tc := range tests {
		t.Run(tc.pattern+"/"+tc.key, func(t *testing.T) {
			assert.Equal(t, tc.match, eventbustest.TopicMatch(tc.pattern, tc.key))
		})
	}
}

func TestBus_Publish(t *testing.T) {
	bus := eventbustest.NewBus()

	var meetings, all []eventbustest.Message
	bus.Subscribe("minutes.meeting.*", func(_ context.Context, msg eventbustest.Message) {
		meetings = append(meetings, msg)
	})
	bus.Subscribe("#", func(_ context.Context, msg eventbustest.Message) {
		all = append(all, msg)
	})

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, "minutes.meeting.created", []byte(`{"id":"1"}`)))
	require.NoError(t, bus.Publish(ctx, "minutes.attendee.deleted", []byte(`{}`)))

	require.Len(t, meetings, 1)
	assert.Equal(t, "minutes.meeting.created", meetings[0].RoutingKey)
	assert.JSONEq(t, `{"id":"1"}`, string(meetings[0].Payload))
	assert.Len(t, all, 2)
	assert.NoError(t, bus.Close())
}
