package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/GlobePalette_Go/internal/server"
	"github.com/osse101/GlobePalette_Go/internal/sse"
)

const defaultWatchDuration = 30 * time.Second

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Print SSE events from API_URL (args: [types] [run_id])"
}

func (c *WatchEventsCommand) Run(args []string) error {
	q := url.Values{}
	if len(args) > 0 && args[0] != "" {
		q.Set(sse.QueryParamTypes, args[0])
	}
	if len(args) > 1 {
		q.Set(sse.QueryParamRunID, args[1])
	}

	target := strings.TrimRight(getEnv("API_URL", defaultAPIURL), "/") + "/api/v1/events"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	PrintHeader("Watching " + target)

	ctx, cancel := context.WithTimeout(context.Background(), defaultWatchDuration)
	defer cancel()

	n, err := watchEvents(ctx, http.DefaultClient, target, func(eventType, data string) {
		PrintInfo("%s %s", eventType, data)
	})
	if err != nil && ctx.Err() == nil {
		return err
	}
	PrintSuccess("Received %d events", n)
	return nil
}

// watchEvents reads an event stream and calls onEvent per event until the
// stream ends or ctx is done. Keepalives are skipped.
func watchEvents(ctx context.Context, client *http.Client, target string, onEvent func(eventType, data string)) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	n := 0
	var eventType string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			if eventType == sse.EventTypeKeepalive {
				continue
			}
			onEvent(eventType, strings.TrimPrefix(line, "data: "))
			n++
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return n, err
	}
	return n, nil
}

type InvalidateCommand struct{}

func (c *InvalidateCommand) Name() string {
	return "invalidate"
}

func (c *InvalidateCommand) Description() string {
	return "Mark the reference set stale on API_URL (uses ADMIN_API_KEY)"
}

func (c *InvalidateCommand) Run(args []string) error {
	target := strings.TrimRight(getEnv("API_URL", defaultAPIURL), "/") + "/api/v1/admin/reference/invalidate"
	if err := invalidate(context.Background(), http.DefaultClient, target, getEnv("ADMIN_API_KEY", "")); err != nil {
		return err
	}
	PrintSuccess("Reference set invalidated")
	return nil
}

func invalidate(ctx context.Context, client *http.Client, target, apiKey string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return err
	}
	if apiKey != "" {
		req.Header.Set(server.HeaderAPIKey, apiKey)
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}
