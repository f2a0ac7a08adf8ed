package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/dotjump/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saved []SavedSettings
	err   error
}

func (r *recordingSaver) Save(s SavedSettings) error {
	r.saved = append(r.saved, s)
	return r.err
}

func stubFullscreen(t *testing.T, on bool) {
	t.Helper()
	isFullscreen = func() bool { return on }
	t.Cleanup(func() { isFullscreen = ebitenIsFullscreen })
}

func TestDebugToggleIsSaved(t *testing.T) {
	stubFullscreen(t, true)
	e, _ := newTestWorld(t, 0, 0)
	saver := &recordingSaver{}
	update := NewUpdateSettings(saver)

	press(e, cfg.ActionToggleDebug)
	update(e)
	require.True(t, GetOrCreateSettings(e).Debug)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, SavedSettings{Debug: true, Fullscreen: true}, saver.saved[0])

	// Still held on the next tick: no new toggle
	press(e, cfg.ActionToggleDebug)
	update(e)
	assert.Len(t, saver.saved, 1)

	release(e)
	update(e)
	press(e, cfg.ActionToggleDebug)
	update(e)
	assert.False(t, GetOrCreateSettings(e).Debug)
	assert.Len(t, saver.saved, 2)
}

func TestDebugToggleSurvivesSaveFailure(t *testing.T) {
	stubFullscreen(t, false)
	e, _ := newTestWorld(t, 0, 0)
	saver := &recordingSaver{err: errors.New("disk full")}
	update := NewUpdateSettings(saver)

	press(e, cfg.ActionToggleDebug)
	assert.NotPanics(t, func() { update(e) })
	assert.True(t, GetOrCreateSettings(e).Debug)
	assert.Len(t, saver.saved, 1)
}

func TestDebugToggleWithoutSaver(t *testing.T) {
	stubFullscreen(t, false)
	e, _ := newTestWorld(t, 0, 0)

	press(e, cfg.ActionToggleDebug)
	NewUpdateSettings(nil)(e)
	assert.True(t, GetOrCreateSettings(e).Debug)
}

func TestDecodeSettings(t *testing.T) {
	saved, err := decodeSettings([]byte(`{"debug":true}`))
	require.NoError(t, err)
	assert.Equal(t, SavedSettings{Debug: true}, saved)

	_, err = decodeSettings([]byte("{"))
	assert.Error(t, err)
}
