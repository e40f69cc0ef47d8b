package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(RegistryConfig{BaseDir: t.TempDir()})
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRegistry_LoggerReusesInstance(t *testing.T) {
	r := newTestRegistry(t)

	first := r.Logger("svc")
	second := r.Logger("svc")

	assert.Same(t, first, second, "same name must return the same instance")
	assert.Equal(t, []string{"svc"}, r.Names(), "name must appear exactly once")
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry(t)

	l := r.Logger("svc")

	got, err := r.Lookup("svc")
	require.NoError(t, err)
	assert.Same(t, l, got)

	_, err = r.Lookup("nonexistent")
	assert.ErrorIs(t, err, ErrLoggerNotFound)
}

func TestRegistry_NamesRegistrationOrder(t *testing.T) {
	r := newTestRegistry(t)

	r.Logger("gamma")
	r.Logger("alpha")
	r.Logger("beta")
	r.Logger("alpha") // reuse must not duplicate

	assert.Equal(t, []string{"gamma", "alpha", "beta"}, r.Names())
}

func TestRegistry_RunID(t *testing.T) {
	r := newTestRegistry(t)

	// Unset run name still yields a usable, non-empty run ID
	require.NotEmpty(t, r.RunID())

	r.SetRunName("run42")
	assert.True(t, strings.HasSuffix(r.RunID(), "_run42"), "run ID %q should end in run name", r.RunID())

	// A second call overwrites - documented gap, not a guard
	r.SetRunName("run43")
	assert.True(t, strings.HasSuffix(r.RunID(), "_run43"))
}

func TestRegistry_DefaultRunIDsDiffer(t *testing.T) {
	a := NewRegistry(RegistryConfig{BaseDir: t.TempDir()})
	b := NewRegistry(RegistryConfig{BaseDir: t.TempDir()})

	assert.NotEqual(t, a.RunID(), b.RunID(), "default run IDs must not collide")
}

func TestRegistry_Remove(t *testing.T) {
	r := newTestRegistry(t)

	l := r.Logger("svc")
	require.NoError(t, l.AddFileHandler("main", FileOptions{}))

	require.NoError(t, r.Remove("svc"))
	assert.Empty(t, r.Names())

	_, err := r.Lookup("svc")
	assert.ErrorIs(t, err, ErrLoggerNotFound)

	assert.ErrorIs(t, r.Remove("svc"), ErrLoggerNotFound)
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry(RegistryConfig{BaseDir: t.TempDir()})

	a := r.Logger("a")
	require.NoError(t, a.AddFileHandler("main", FileOptions{}))
	r.Logger("b")

	require.NoError(t, r.Close())
	assert.Empty(t, r.Names())
	assert.Empty(t, a.Handlers())
}

func TestDefaultRegistry(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	r := NewRegistry(RegistryConfig{BaseDir: t.TempDir()})
	SetDefault(r)

	SetRunName("pkg-level")
	assert.True(t, strings.HasSuffix(RunID(), "_pkg-level"))

	l := New("svc")
	got, err := Lookup("svc")
	require.NoError(t, err)
	assert.Same(t, l, got)
	assert.Equal(t, []string{"svc"}, Names())
}
