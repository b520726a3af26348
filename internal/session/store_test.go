package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ffb-cli/pkg/ffb"
)

func validSession() ffb.Session {
	return ffb.Session{
		Cookies: []ffb.Cookie{
			{Name: "wordpress_logged_in", Value: "tok", Domain: ".example.com", Path: "/"},
		},
		Nonce:     "a1b2c3d4e5",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	want := validSession()

	require.NoError(t, st.Save(want))

	got, ok := st.Load()
	require.True(t, ok)
	assert.Equal(t, want.Nonce, got.Nonce)
	assert.Equal(t, want.Cookies, got.Cookies)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestSaveOwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	st := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, st.Save(validSession()))

	info, err := os.Stat(st.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveRefusesIncomplete(t *testing.T) {
	st := newTestStore(t)

	noCookies := validSession()
	noCookies.Cookies = nil
	require.Error(t, st.Save(noCookies))

	noNonce := validSession()
	noNonce.Nonce = ""
	require.Error(t, st.Save(noNonce))

	_, ok := st.Load()
	assert.False(t, ok, "nothing may be persisted after refused saves")
}

func TestLoadAbsent(t *testing.T) {
	st := newTestStore(t)
	_, ok := st.Load()
	assert.False(t, ok)
}

func TestLoadCorruptIsAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	st := NewStore(path)

	for name, content := range map[string]string{
		"not json":      "{{{",
		"missing nonce": `{"cookies":[{"name":"a","value":"b","domain":"d","path":"/"}],"created_at":"2026-08-30T00:00:00Z"}`,
		"empty cookies": `{"cookies":[],"nonce":"abc","created_at":"2026-08-30T00:00:00Z"}`,
		"no timestamp":  `{"cookies":[{"name":"a","value":"b","domain":"d","path":"/"}],"nonce":"abc"}`,
	} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		_, ok := st.Load()
		assert.False(t, ok, "case %q must read as absent", name)
	}
}

func TestClear(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Save(validSession()))

	require.NoError(t, st.Clear())
	_, ok := st.Load()
	assert.False(t, ok)

	// Clearing an absent session is a no-op.
	require.NoError(t, st.Clear())
}

func TestAgeHours(t *testing.T) {
	st := newTestStore(t)

	_, ok := st.AgeHours()
	assert.False(t, ok)

	rec := validSession()
	rec.CreatedAt = time.Now().UTC().Add(-90 * time.Minute)
	require.NoError(t, st.Save(rec))

	age, ok := st.AgeHours()
	require.True(t, ok)
	assert.InDelta(t, 1.5, age, 0.05)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	st := newTestStore(t)
	first := validSession()
	require.NoError(t, st.Save(first))

	second := validSession()
	second.Nonce = "ffffffffff"
	require.NoError(t, st.Save(second))

	got, ok := st.Load()
	require.True(t, ok)
	assert.Equal(t, "ffffffffff", got.Nonce)
}
