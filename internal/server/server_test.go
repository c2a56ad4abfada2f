package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/genofig/genofig/pkg/pipeline"
)

const sampleGFF = `##gff-version 3
chr1	test	gene	100	400	.	+	.	ID=gene:G1;Name=alpha
chr1	test	gene	500	900	.	-	.	ID=gene:G2;Name=beta
`

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(nil, nil, logger)
	return New(runner, nil, logger)
}

func createFigure(t *testing.T, s *Server) string {
	t.Helper()
	body, _ := json.Marshal(map[string]any{
		"name":       "demo",
		"source":     []byte(sampleGFF),
		"input_kind": "gff",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/figures", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var resp createResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("create response has no ID")
	}
	return resp.ID
}

func TestHealth(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestCreateAndGet(t *testing.T) {
	s := testServer(t)
	id := createFigure(t, s)

	req := httptest.NewRequest(http.MethodGet, "/v1/figures/"+id, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var got struct {
		ID   string          `json:"id"`
		Name string          `json:"name"`
		Doc  json.RawMessage `json:"doc"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != id || got.Name != "demo" {
		t.Errorf("record = %+v", got)
	}

	var doc struct {
		Data []json.RawMessage `json:"data"`
	}
	var docBytes []byte
	if err := json.Unmarshal(got.Doc, &docBytes); err != nil {
		t.Fatalf("doc bytes: %v", err)
	}
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}
	if len(doc.Data) != 2 {
		t.Errorf("doc traces = %d, want 2", len(doc.Data))
	}
}

func TestCreateRejectsPaths(t *testing.T) {
	s := testServer(t)
	body, _ := json.Marshal(map[string]any{
		"name":  "demo",
		"input": "/etc/passwd",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/figures", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestGetAbsent(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/figures/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "FIGURE_NOT_FOUND") {
		t.Errorf("body missing error code: %s", rec.Body)
	}
}

func TestList(t *testing.T) {
	s := testServer(t)
	createFigure(t, s)
	createFigure(t, s)

	req := httptest.NewRequest(http.MethodGet, "/v1/figures", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var entries []listEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
	// The list omits document bodies.
	if strings.Contains(rec.Body.String(), `"doc"`) {
		t.Error("list response should not include document bodies")
	}
}

func TestGetHTML(t *testing.T) {
	s := testServer(t)
	id := createFigure(t, s)

	req := httptest.NewRequest(http.MethodGet, "/v1/figures/"+id+"/html", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("html status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>demo</title>") {
		t.Error("page missing title")
	}
	if !strings.Contains(body, "Plotly.newPlot") {
		t.Error("page missing plot call")
	}
}

func TestDelete(t *testing.T) {
	s := testServer(t)
	id := createFigure(t, s)

	req := httptest.NewRequest(http.MethodDelete, "/v1/figures/"+id, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/figures/"+id, nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "given-id" {
		t.Errorf("X-Request-ID = %q, want given-id", got)
	}
}
