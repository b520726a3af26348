package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ffb-cli/internal/cache"
	"github.com/sells-group/ffb-cli/pkg/ffb"
)

func TestFetchDecodesEnvelope(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"error":"","data":[
			{"player_id":123,"name":"Patrick Mahomes","pos":"QB","team":"KC"},
			{"player_id":"124","name":"Josh Allen","position":"QB","team":"BUF"},
			{"player_id":"125","name":"","pos":"RB","team":"SF"}
		]}`))
	}))
	defer srv.Close()

	client := ffb.New(ffb.Config{APIBase: srv.URL, PageBase: srv.URL})
	c := cache.NewMemory()

	players, err := Fetch(context.Background(), client, c, time.Hour)
	require.NoError(t, err)
	require.Len(t, players, 2, "unnamed entries are dropped")
	assert.Equal(t, "123", players[0].ID)
	assert.Equal(t, "QB", players[0].Position)
	assert.Equal(t, "Josh Allen", players[1].Name)

	// Second call is served from cache.
	_, err = Fetch(context.Background(), client, c, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchDecodesBareList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"player_id":"1","name":"Travis Kelce","pos":"TE","team":"KC"}]`))
	}))
	defer srv.Close()

	client := ffb.New(ffb.Config{APIBase: srv.URL, PageBase: srv.URL})
	players, err := Fetch(context.Background(), client, cache.NewMemory(), time.Hour)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Travis Kelce", players[0].Name)
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"not a roster"`))
	}))
	defer srv.Close()

	client := ffb.New(ffb.Config{APIBase: srv.URL, PageBase: srv.URL})
	_, err := Fetch(context.Background(), client, cache.NewMemory(), time.Hour)
	require.Error(t, err)
}
