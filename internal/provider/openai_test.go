package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func chatCompletionJSON(text string) string {
	return `{"id":"cmpl-1","object":"chat.completion","model":"gpt-4o","choices":[{"index":0,"message":{"role":"assistant","content":` + mustJSON(text) + `},"finish_reason":"stop"}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestOpenAI(t *testing.T, handler http.HandlerFunc, warn *bytes.Buffer) *OpenAI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAI("test-key", Options{Endpoint: srv.URL, Stderr: warn})
}

func TestOpenAI_GenerateReview(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionJSON("Looks solid.")))
	}, &bytes.Buffer{})

	out := o.GenerateReview(context.Background(), ReviewRequest{
		Content: "+x := 1\n", Prompt: "Be strict.", Model: "gpt-4o",
	})
	if out != "Looks solid." {
		t.Errorf("GenerateReview = %q", out)
	}
	if !strings.HasSuffix(gotPath, "/chat/completions") {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v, want system + user", gotBody["messages"])
	}
	system := msgs[0].(map[string]any)
	if system["role"] != "system" || system["content"] != "Be strict." {
		t.Errorf("system message = %v", system)
	}
	user := msgs[1].(map[string]any)
	if user["role"] != "user" || !strings.Contains(user["content"].(string), "+x := 1") {
		t.Errorf("user message = %v", user)
	}
}

func TestOpenAI_TransportFailureEmbedsError(t *testing.T) {
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"server exploded"}}`, http.StatusInternalServerError)
	}, &bytes.Buffer{})

	out := o.GenerateReview(context.Background(), ReviewRequest{Model: "gpt-4o"})
	if !strings.Contains(out, "(Error during API call:") {
		t.Errorf("output = %q, want embedded error marker", out)
	}
}

func TestOpenAI_DebugSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	var warn bytes.Buffer
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}, &warn)

	out := o.GenerateReview(context.Background(), ReviewRequest{
		Content: "+x\n", Prompt: "p", Model: "gpt-4o", Debug: true,
	})
	if out != DebugSentinel {
		t.Errorf("debug output = %q, want sentinel", out)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server received %d requests in debug mode", n)
	}
	if !strings.Contains(warn.String(), "DEBUG") {
		t.Error("debug echo missing from operator channel")
	}
}

func TestOpenAI_EmptyResponse(t *testing.T) {
	var warn bytes.Buffer
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","model":"gpt-4o","choices":[]}`))
	}, &warn)

	out := o.GenerateReview(context.Background(), ReviewRequest{Model: "gpt-4o"})
	if out != EmptyResponse {
		t.Errorf("output = %q, want %q", out, EmptyResponse)
	}
	if warn.Len() == 0 {
		t.Error("empty response should warn on the operator channel")
	}
}

func TestOpenAI_ModelsSorted(t *testing.T) {
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o-mini","object":"model"},{"id":"gpt-4o","object":"model"},{"id":"o3-mini","object":"model"}]}`))
	}, &bytes.Buffer{})

	got := o.Models(context.Background())
	want := []string{"gpt-4o", "gpt-4o-mini", "o3-mini"}
	if len(got) != len(want) {
		t.Fatalf("Models = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Models[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOpenAI_ModelsFailureDegrades(t *testing.T) {
	var warn bytes.Buffer
	o := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	}, &warn)

	got := o.Models(context.Background())
	if len(got) != 0 {
		t.Errorf("Models = %v, want empty", got)
	}
	if warn.Len() == 0 {
		t.Error("listing failure should warn on the operator channel")
	}
}
