package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_DistinctFIFO(t *testing.T) {
	var q queue
	assert.True(t, q.offer(CmdPlay))
	assert.True(t, q.offer(CmdStepForward))
	assert.False(t, q.offer(CmdPlay))
	assert.Equal(t, []Command{CmdPlay, CmdStepForward}, q.snapshot())

	c, ok := q.next()
	assert.True(t, ok)
	assert.Equal(t, CmdPlay, c)
	assert.Equal(t, CmdPlay, q.current)

	// The executing kind may queue again behind itself.
	assert.True(t, q.offer(CmdPlay))
	assert.True(t, q.drop(CmdPlay))
	assert.False(t, q.drop(CmdPlay))

	c, _ = q.next()
	assert.Equal(t, CmdStepForward, c)
	_, ok = q.next()
	assert.False(t, ok)
	assert.Zero(t, q.current)

	q.offer(CmdReset)
	q.next()
	q.reset()
	assert.Zero(t, q.current)
	assert.Empty(t, q.snapshot())
}
