package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aura-studio/albrouter/router"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	alb := router.NewEngine()
	alb.MustHandle("/hello/<user>", func(c *router.Context) (any, error) {
		return map[string]any{"message": "Hello " + c.Param("user") + "!"}, nil
	}, "GET")
	alb.MustHandle("/echo", func(c *router.Context) (any, error) {
		return c.Data, nil
	}, "POST")

	return NewEngine(alb, opts...)
}

func TestForward_GET(t *testing.T) {
	e := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/hello/bob", nil)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", resp.Header.Get("Content-Type"))
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("body %q is not JSON: %v", body, err)
	}
	if decoded["message"] != "Hello bob!" {
		t.Errorf("message = %v, want 'Hello bob!'", decoded["message"])
	}
}

func TestForward_POSTBody(t *testing.T) {
	e := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"bob"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(string(body), `"name":"bob"`) {
		t.Errorf("body = %q, want echoed JSON", body)
	}
}

func TestForward_NotFound(t *testing.T) {
	e := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

func TestForward_MethodNotAllowed(t *testing.T) {
	e := newTestEngine(t)

	req := httptest.NewRequest(http.MethodDelete, "/echo", nil)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("StatusCode = %d, want %d", w.Result().StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestCors_Preflight(t *testing.T) {
	e := newTestEngine(t, WithCors())

	req := httptest.NewRequest(http.MethodOptions, "/hello/bob", nil)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", resp.Header.Get("Access-Control-Allow-Origin"))
	}
}
