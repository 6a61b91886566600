package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const slowResponseThreshold = time.Second

var healthPaths = []string{"/healthz", "/readyz"}

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running instance (API_URL)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	apiURL := getEnv("API_URL", defaultAPIURL)
	if len(args) > 0 {
		apiURL = args[0]
	}
	PrintHeader(fmt.Sprintf("Health Check (%s)", apiURL))

	client := &http.Client{Timeout: 10 * time.Second}
	for _, path := range healthPaths {
		start := time.Now()
		if err := checkEndpoint(context.Background(), client, apiURL, path); err != nil {
			PrintError("%s: %v", path, err)
			return err
		}
		if d := time.Since(start); d > slowResponseThreshold {
			PrintWarning("%s passed but slow (%v)", path, d)
		} else {
			PrintSuccess("%s passed (%v)", path, d)
		}
	}
	return nil
}

// checkEndpoint expects 200 from baseURL+path.
func checkEndpoint(ctx context.Context, client *http.Client, baseURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+path, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}
