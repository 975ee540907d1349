package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// The fake platform answers every count from these values; the expected deviations below depend on them.
const (
	currentCount  = 100 // 24h count of every metric
	businessCount = 50  // count of every business day bucket
	weekendCount  = 10  // count of every weekend day bucket
	dayMs         = int64(24 * time.Hour / time.Millisecond)
)

var metrics = []string{"los_502", "los_504"}

// ### End - fixed configs

type aggregateRequest struct {
	Filter struct {
		Query string `json:"query"`
		From  string `json:"from"`
		To    string `json:"to"`
	} `json:"filter"`
}

type deviationResult struct {
	MetricName string  `json:"metricName"`
	Current    int64   `json:"current"`
	Baseline   int64   `json:"baseline"`
	Deviation  float64 `json:"deviation"`
}

type environmentDeviations struct {
	Environment string            `json:"environment"`
	Baseline    string            `json:"baseline"`
	Results     []deviationResult `json:"results"`
}

type snapshot struct {
	RunID string `json:"runId"`
}

// main runs the e2e scenario: 001_daily_baseline
//
// It starts a fake observability platform and drives a running read API through one report run.
// Start the API first, from the project root and in UTC so day buckets start at UTC midnight:
//
//	E2E_PROD_API_KEY=key E2E_PROD_APP_KEY=app TZ=UTC \
//	  go run ./cmd/logbaseline serve -c tests/e2e/scenarios/001_daily_baseline/configs.yml
//	go run ./tests/e2e/scenarios/001_daily_baseline
//
// What it tests:
//   - POST /runs counts the current 24h window and every calendar day of the lookback
//   - the saved snapshot is served by GET /snapshots/latest
//   - GET /environments/prod/deviations compares against business and weekend averages
//
// Expected results:
//   - every metric has current=100, a business baseline of 50 (+100%) and a weekend baseline of 10 (+900%)
//   - the snapshot served as latest is the one the run returned
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the read API
	platformAddr := ":9099"            // Address of the fake platform, must match platform.base_url

	fmt.Println("Starting e2e scenario: 001_daily_baseline")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PLATFORM_ADDR: %s\n", platformAddr)
	fmt.Println()

	var aggregateCalls atomic.Int64
	platform := &http.Server{Addr: platformAddr, Handler: fakePlatform(&aggregateCalls), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := platform.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fail("fake platform failed: %v", err)
		}
	}()
	defer platform.Close()
	time.Sleep(200 * time.Millisecond)

	client := &http.Client{Timeout: 2 * time.Minute}

	fmt.Println("POST /runs")
	var run snapshot
	status := doJSON(client, http.MethodPost, baseURL+"/runs", `{"environments":["prod"]}`, &run)
	expect(status == http.StatusCreated, "POST /runs status %d, want 201", status)
	expect(run.RunID != "", "POST /runs returned no run id")
	fmt.Printf("run %s used %d platform count queries\n\n", run.RunID, aggregateCalls.Load())

	fmt.Println("GET /snapshots/latest")
	var latest snapshot
	status = doJSON(client, http.MethodGet, baseURL+"/snapshots/latest", "", &latest)
	expect(status == http.StatusOK, "GET /snapshots/latest status %d, want 200", status)
	expect(latest.RunID == run.RunID, "latest run %s, want %s", latest.RunID, run.RunID)
	fmt.Println()

	checks := []struct {
		baseline string
		average  int64
	}{
		{baseline: "business", average: businessCount},
		{baseline: "weekend", average: weekendCount},
	}
	for _, c := range checks {
		fmt.Printf("GET /environments/prod/deviations?baseline=%s\n", c.baseline)
		var devs environmentDeviations
		status = doJSON(client, http.MethodGet, baseURL+"/environments/prod/deviations?mode=percent&baseline="+c.baseline, "", &devs)
		expect(status == http.StatusOK, "deviations status %d, want 200", status)
		expect(len(devs.Results) == len(metrics), "got %d deviation results, want %d", len(devs.Results), len(metrics))

		want := float64(currentCount-c.average) / float64(c.average) * 100
		for _, res := range devs.Results {
			fmt.Printf("  %s: current=%d baseline=%d deviation=%.1f%%\n", res.MetricName, res.Current, res.Baseline, res.Deviation)
			expect(res.Current == currentCount, "%s current %d, want %d", res.MetricName, res.Current, currentCount)
			expect(res.Baseline == c.average, "%s baseline %d, want %d", res.MetricName, res.Baseline, c.average)
			expect(math.Abs(res.Deviation-want) < 1e-9, "%s deviation %.3f, want %.3f", res.MetricName, res.Deviation, want)
		}
		fmt.Println()
	}

	fmt.Println("PASS")
}

// fakePlatform answers log aggregate queries. Day buckets start at UTC midnight; any other range is the 24h window.
func fakePlatform(calls *atomic.Int64) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v2/logs/analytics/aggregate", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req aggregateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		from, err := strconv.ParseInt(req.Filter.From, 10, 64)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		count := currentCount
		if from%dayMs == 0 {
			switch time.UnixMilli(from).UTC().Weekday() {
			case time.Saturday, time.Sunday:
				count = weekendCount
			default:
				count = businessCount
			}
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":{"buckets":[{"computes":{"c0":%d}}]}}`, count)
	})
	return mux
}

func doJSON(client *http.Client, method, url, body string, dest any) int {
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		fail("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		fail("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		fail("read %s %s: %v", method, url, err)
	}
	if resp.StatusCode < 300 {
		if err := json.Unmarshal(raw, dest); err != nil {
			fail("decode %s %s: %v", method, url, err)
		}
	} else {
		fmt.Printf("  response: %s\n", raw)
	}
	return resp.StatusCode
}

func expect(ok bool, format string, args ...any) {
	if !ok {
		fail(format, args...)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
