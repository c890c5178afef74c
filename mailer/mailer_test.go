package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendPayload(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New("svc_1", "tpl_1", "pub_1")
	c.Endpoint = srv.URL

	msg := Message{
		FromName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+36 30 123 4567",
		Message:  "I would like to book a session.",
	}
	if err := c.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if got.ServiceID != "svc_1" || got.TemplateID != "tpl_1" || got.UserID != "pub_1" {
		t.Errorf("triple = (%s, %s, %s), want (svc_1, tpl_1, pub_1)",
			got.ServiceID, got.TemplateID, got.UserID)
	}
	if got.TemplateParams != msg {
		t.Errorf("template params = %+v, want %+v", got.TemplateParams, msg)
	}
}

func TestSendUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad public key", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("svc", "tpl", "bad")
	c.Endpoint = srv.URL

	err := c.Send(context.Background(), Message{FromName: "x", Email: "x@example.com", Message: "hi"})
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestConfigured(t *testing.T) {
	if New("a", "b", "c").Configured() != true {
		t.Error("complete triple should be configured")
	}
	if New("a", "", "c").Configured() {
		t.Error("missing template id should not be configured")
	}
}
