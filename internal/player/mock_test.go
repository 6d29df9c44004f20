package player

import (
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock_PlayIdempotent(t *testing.T) {
	m := NewMock()
	_ = m.Load("a.mp3")
	m.SetSourceDuration("a.mp3", time.Minute)

	assert.NoError(t, m.Play())
	assert.NoError(t, m.Play())

	assert.Equal(t, Playing, m.State())
	assert.Equal(t, time.Minute, m.Duration())
	assert.Equal(t, 2, m.PlayCalls())
}

func TestMock_PlayError(t *testing.T) {
	m := NewMock()
	boom := errors.New("boom")
	m.SetPlayError(boom)
	_ = m.Load("a.mp3")

	assert.ErrorIs(t, m.Play(), boom)
	assert.Equal(t, Stopped, m.State())
}

func TestMock_SeekClamps(t *testing.T) {
	m := NewMock()
	_ = m.Load("a.mp3")
	m.SetSourceDuration("a.mp3", 100*time.Second)
	_ = m.Play()

	m.Seek(500 * time.Second)
	pos, _ := m.CurrentTime()
	assert.Equal(t, 100*time.Second, pos)

	m.Seek(-time.Second)
	pos, _ = m.CurrentTime()
	assert.Equal(t, time.Duration(0), pos)
}

func TestMock_AdvanceFollowsClock(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := NewMock()
		m.SetAdvance(true)
		_ = m.Load("a.mp3")
		_ = m.Play()

		time.Sleep(3 * time.Second)
		m.Pause()
		time.Sleep(time.Second)

		pos, ok := m.CurrentTime()
		assert.True(t, ok)
		assert.Equal(t, 3*time.Second, pos)
	})
}
