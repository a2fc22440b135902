package watch

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_CoalescesEvents(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)

	d := NewDebouncer(50*time.Millisecond, func(path string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, path)
	})
	defer d.Stop()

	d.Trigger("a.yaml")
	d.Trigger("b.yaml")
	d.Trigger("c.yaml")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"c.yaml"}, calls)
}

func TestDebouncer_Stop(t *testing.T) {
	fired := make(chan struct{}, 1)

	d := NewDebouncer(30*time.Millisecond, func(string) {
		fired <- struct{}{}
	})

	d.Trigger("a.yaml")
	d.Stop()

	select {
	case <-fired:
		t.Fatal("callback fired after Stop")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestIsRelevant(t *testing.T) {
	watched := map[string]struct{}{}

	abs, err := filepath.Abs("target.yaml")
	require.NoError(t, err)
	watched[abs] = struct{}{}

	// --- write on a watched file
	assert.True(t, isRelevant(fsnotify.Event{
		Name: "target.yaml", Op: fsnotify.Write,
	}, watched))

	// --- write on an unwatched file
	assert.False(t, isRelevant(fsnotify.Event{
		Name: "other.yaml", Op: fsnotify.Write,
	}, watched))

	// --- chmod only
	assert.False(t, isRelevant(fsnotify.Event{
		Name: "target.yaml", Op: fsnotify.Chmod,
	}, watched))

	// --- editor temp files
	for _, name := range []string{".target.yaml.swx", "target.yaml~", "#target.yaml#"} {
		assert.False(t, isRelevant(fsnotify.Event{
			Name: name, Op: fsnotify.Write,
		}, watched), name)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 500*time.Millisecond, opts.Debounce)
	assert.NotNil(t, opts.Logger)
	assert.NotNil(t, opts.Out)
}
