package codepkg

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	g := New()

	code, err := g.Generate()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(code, Prefix))

	_, err = ulid.ParseStrict(strings.TrimPrefix(code, Prefix))
	require.NoError(t, err)
}

func TestGenerateFrozenClock(t *testing.T) {
	frozen := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	g := New()
	g.now = func() time.Time { return frozen }

	const n = 1000

	prev := ""

	for i := 0; i < n; i++ {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Greater(t, code, prev)

		prev = code
	}
}

func TestGenerateConcurrent(t *testing.T) {
	g := New()

	const (
		workers = 8
		perWork = 500
	)

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		codes = make(map[string]struct{}, workers*perWork)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < perWork; i++ {
				code, err := g.Generate()
				if err != nil {
					t.Errorf("Generate() returned error: %v", err)
					return
				}

				mu.Lock()
				codes[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	require.Len(t, codes, workers*perWork)
}
