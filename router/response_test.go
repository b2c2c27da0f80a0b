package router

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildResponse_JSONPayload(t *testing.T) {
	resp, err := buildResponse(map[string]any{"message": "Hello world!"})
	if err != nil {
		t.Fatalf("buildResponse error = %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if resp.StatusDescription != "200 OK" {
		t.Errorf("StatusDescription = %q, want '200 OK'", resp.StatusDescription)
	}
	if resp.Headers["Content-Type"] != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", resp.Headers["Content-Type"])
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
		t.Fatalf("Body %q is not JSON: %v", resp.Body, err)
	}
	if decoded["message"] != "Hello world!" {
		t.Errorf("Body message = %v, want 'Hello world!'", decoded["message"])
	}
}

func TestBuildResponse_StringPassthrough(t *testing.T) {
	resp, err := buildResponse("Hello!")
	if err != nil {
		t.Fatalf("buildResponse error = %v", err)
	}

	if resp.Body != "Hello!" {
		t.Errorf("Body = %q, want 'Hello!'", resp.Body)
	}
	if resp.IsBase64Encoded {
		t.Error("IsBase64Encoded = true, want false")
	}
}

func TestBuildResponse_BinaryBody(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	resp, err := buildResponse(raw)
	if err != nil {
		t.Fatalf("buildResponse error = %v", err)
	}

	if !resp.IsBase64Encoded {
		t.Fatal("IsBase64Encoded = false, want true")
	}
	decoded, err := base64.StdEncoding.DecodeString(resp.Body)
	if err != nil {
		t.Fatalf("Body is not base64: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Errorf("decoded body = %v, want %v", decoded, raw)
	}
}

func TestBuildResponse_NilResult(t *testing.T) {
	resp, err := buildResponse(nil)
	if err != nil {
		t.Fatalf("buildResponse error = %v", err)
	}
	if resp.StatusCode != 200 || resp.Body != "" {
		t.Errorf("response = %d %q, want 200 with empty body", resp.StatusCode, resp.Body)
	}
}

func TestBuildResponse_ExplicitResponse(t *testing.T) {
	r := NewResponse("created").
		WithStatus(201).
		WithHeader("Content-Type", "text/plain").
		WithHeader("Location", "/things/1")

	resp, err := buildResponse(r)
	if err != nil {
		t.Fatalf("buildResponse error = %v", err)
	}

	if resp.StatusCode != 201 {
		t.Errorf("StatusCode = %d, want 201", resp.StatusCode)
	}
	if resp.StatusDescription != "201 Created" {
		t.Errorf("StatusDescription = %q, want '201 Created'", resp.StatusDescription)
	}
	if resp.Headers["Content-Type"] != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", resp.Headers["Content-Type"])
	}
	if resp.Headers["Location"] != "/things/1" {
		t.Errorf("Location = %q, want /things/1", resp.Headers["Location"])
	}
}

func TestBuildResponse_UnmarshalableBody(t *testing.T) {
	if _, err := buildResponse(map[string]any{"bad": make(chan int)}); err == nil {
		t.Error("buildResponse with unmarshalable body = nil error, want error")
	}
}

func TestErrorResponse_MessageBody(t *testing.T) {
	resp := errorResponse(BadRequest("Missing required input 'something'"))

	if resp.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", resp.StatusCode)
	}
	if resp.StatusDescription != "400 Bad Request" {
		t.Errorf("StatusDescription = %q, want '400 Bad Request'", resp.StatusDescription)
	}
	if !strings.Contains(resp.Body, "Missing required input 'something'") {
		t.Errorf("Body = %q, want it to contain the abort message", resp.Body)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &decoded); err != nil {
		t.Fatalf("Body %q is not JSON: %v", resp.Body, err)
	}
}

func TestStatusDescription(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "200 OK"},
		{404, "404 Not Found"},
		{405, "405 Method Not Allowed"},
		{500, "500 Internal Server Error"},
		{599, "599"},
	}

	for _, tt := range tests {
		if got := statusDescription(tt.code); got != tt.want {
			t.Errorf("statusDescription(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
