package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_StreamsEvents(t *testing.T) {
	h := startHub(t)
	srv := httptest.NewServer(Handler(h))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=enrichment.progress&run_id=r1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string, 32)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	nextEvent := func() string {
		for {
			select {
			case line, ok := <-lines:
				require.True(t, ok, "stream closed")
				if strings.HasPrefix(line, "event: ") {
					return strings.TrimPrefix(line, "event: ")
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for SSE event")
				return ""
			}
		}
	}

	assert.Equal(t, EventTypeConnected, nextEvent())
	waitForClients(t, h, 1)

	h.Broadcast(EventTypeEnrichmentCompleted, "r1", CompletedPayload{RunID: "r1"})
	h.Broadcast(EventTypeEnrichmentProgress, "other", ProgressPayload{RunID: "other"})
	h.Broadcast(EventTypeEnrichmentProgress, "r1", ProgressPayload{RunID: "r1", Done: 6})

	assert.Equal(t, EventTypeEnrichmentProgress, nextEvent())

	cancel()
	waitForClients(t, h, 0)
}
