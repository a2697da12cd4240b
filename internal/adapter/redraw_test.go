package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelRedrawSinkDeliversEvents(t *testing.T) {
	sink := NewChannelRedrawSink(4)
	sink.NotifyLines([]uint32{1, 2})
	sink.NotifyFull()

	ev := <-sink.Events()
	assert.Equal(t, []uint32{1, 2}, ev.Rows)
	assert.False(t, ev.Full)

	ev = <-sink.Events()
	assert.True(t, ev.Full)
}

func TestChannelRedrawSinkCoalescesWhenFull(t *testing.T) {
	sink := NewChannelRedrawSink(1)
	sink.NotifyLines([]uint32{1})
	sink.NotifyFull() // channel full, drops the pending line event

	ev := <-sink.Events()
	assert.True(t, ev.Full)
}
