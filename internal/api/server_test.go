package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dgallion1/docrtf/internal/config"
	"github.com/dgallion1/docrtf/internal/pipeline"
)

const testKey = "secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		DocrtfAPIKey:   testKey,
		WorkerCount:    1,
		MaxQueueSize:   4,
		MaxUploadBytes: 1 << 20,
		JobTTL:         time.Hour,
		OutputLanguage: "en",
	}
	log := slog.New(slog.DiscardHandler)
	reg := prom.NewRegistry()
	orch := pipeline.NewOrchestrator(cfg, &pipeline.Converter{}, reg, log)
	orch.Start(context.Background())
	t.Cleanup(orch.Stop)

	srv := httptest.NewServer(NewServer(orch, nil, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), log, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+testKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func upload(t *testing.T, srv *httptest.Server, filename, content string, fields map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte(content))
	mw.Close()
	return do(t, http.MethodPost, srv.URL+"/api/render", &buf, mw.FormDataContentType())
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/stats/render")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/stats/render", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %d", resp2.StatusCode)
	}
}

func TestRenderFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := upload(t, srv, "../guide.md", "# Title\n\nSome *text*.\n", map[string]string{"lang": "es-MX"})
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	body := decode(t, resp)
	jobID, _ := body["job_id"].(string)
	if jobID == "" {
		t.Fatal("expected job_id in response")
	}
	if body["language"] != "es" {
		t.Errorf("expected language matched to es, got %v", body["language"])
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		st := decode(t, do(t, http.MethodGet, srv.URL+"/api/render/"+jobID+"/status", nil, ""))
		if st["status"] == string(pipeline.StatusCompleted) {
			if st["filename"] != "guide.md" {
				t.Errorf("expected sanitized filename, got %v", st["filename"])
			}
			break
		}
		if st["status"] == string(pipeline.StatusFailed) {
			t.Fatalf("job failed: %v", st["progress"])
		}
		if time.Now().After(deadline) {
			t.Fatalf("job did not complete, status %v", st["status"])
		}
		time.Sleep(10 * time.Millisecond)
	}

	res := do(t, http.MethodGet, srv.URL+"/api/render/"+jobID+"/result", nil, "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/rtf" {
		t.Errorf("expected application/rtf, got %q", ct)
	}
	if cd := res.Header.Get("Content-Disposition"); !strings.Contains(cd, `"guide.rtf"`) {
		t.Errorf("unexpected content disposition %q", cd)
	}
	rtf, _ := io.ReadAll(res.Body)
	if !bytes.HasPrefix(rtf, []byte(`{\rtf1`)) {
		t.Errorf("expected rtf document, got %q", rtf[:min(len(rtf), 20)])
	}

	stats := decode(t, do(t, http.MethodGet, srv.URL+"/api/stats/render", nil, ""))
	if s, ok := stats["stats"].(map[string]any); !ok || s["count"] != float64(1) {
		t.Errorf("expected one render sample, got %v", stats["stats"])
	}

	m, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer m.Body.Close()
	text, _ := io.ReadAll(m.Body)
	if !strings.Contains(string(text), `docrtf_jobs_total{status="completed"} 1`) {
		t.Errorf("expected completed job counter in metrics")
	}
}

func TestRenderRejectsUnsupportedType(t *testing.T) {
	srv := newTestServer(t)
	resp := upload(t, srv, "image.png", "x", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRenderUnknownJob(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/status", "/result"} {
		resp := do(t, http.MethodGet, srv.URL+"/api/render/nope"+path, nil, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}

func TestLocales(t *testing.T) {
	srv := newTestServer(t)
	body := decode(t, do(t, http.MethodGet, srv.URL+"/api/locales", nil, ""))
	if body["default"] != "en" {
		t.Errorf("expected default en, got %v", body["default"])
	}
	locales, _ := body["locales"].([]any)
	found := false
	for _, l := range locales {
		if l == "es" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected es among locales, got %v", locales)
	}
}

func TestMemberSections(t *testing.T) {
	srv := newTestServer(t)
	manifest := `members:
  - name: open
    type: function
    brief: true
  - name: Pal
    type: friend
    brief: true
`
	resp := do(t, http.MethodPost, srv.URL+"/api/members/sections?lang=es", strings.NewReader(manifest), "application/yaml")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decode(t, resp)
	declared, _ := body["declared"].(map[string]any)
	if declared["total"] != float64(1) || declared["friends"] != float64(1) {
		t.Errorf("expected friends excluded from total, got %v", declared)
	}
	sections, _ := body["sections"].([]any)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %v", sections)
	}
	first := sections[0].(map[string]any)
	if first["title"] != "Funciones" {
		t.Errorf("expected Spanish title, got %v", first["title"])
	}

	bad := do(t, http.MethodPost, srv.URL+"/api/members/sections", strings.NewReader("members:\n  - name: x\n    type: bogus\n"), "")
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for bad manifest, got %d", bad.StatusCode)
	}
}

// Run with -race: the accepted response must not read job state the worker
// is already updating.
func TestRenderUploads_ReportQueued(t *testing.T) {
	srv := newTestServer(t)
	accepted := 0
	for i := range 20 {
		resp := upload(t, srv, fmt.Sprintf("doc%d.md", i), "# Doc\n\nbody text\n", nil)
		switch resp.StatusCode {
		case http.StatusAccepted:
			accepted++
			if body := decode(t, resp); body["status"] != "queued" || body["language"] != "en" {
				t.Fatalf("expected queued job in en, got %v", body)
			}
		case http.StatusServiceUnavailable:
		default:
			t.Fatalf("expected 202 or 503, got %d", resp.StatusCode)
		}
	}
	if accepted == 0 {
		t.Fatal("expected at least one accepted upload")
	}
}
