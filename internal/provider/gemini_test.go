package provider

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeGemini implements geminiAPI for tests.
type fakeGemini struct {
	modelList []geminiModel
	modelErr  error
	text      string
	genErr    error
	genCalls  int
}

func (f *fakeGemini) generate(ctx context.Context, model, prompt string) (string, error) {
	f.genCalls++
	return f.text, f.genErr
}

func (f *fakeGemini) models(ctx context.Context) ([]geminiModel, error) {
	return f.modelList, f.modelErr
}

func newTestGemini(api geminiAPI, warn *bytes.Buffer) *Gemini {
	return &Gemini{api: api, warn: warn}
}

func TestGemini_ModelsOrderingAndFiltering(t *testing.T) {
	gen := []string{"generateContent"}
	fake := &fakeGemini{modelList: []geminiModel{
		{name: "models/gemini-2.5-flash", methods: gen},
		{name: "models/aqa", methods: gen},
		{name: "models/gemini-2.5-pro", methods: gen},
		{name: "models/gemini-1.5-pro", methods: gen},
		{name: "models/gemini-1.5-flash", methods: gen},
		{name: "models/embedding-001", methods: []string{"embedContent"}},
	}}
	g := newTestGemini(fake, &bytes.Buffer{})

	got := g.Models(context.Background())
	want := []string{
		"gemini-1.5-pro",
		"gemini-2.5-pro",
		"gemini-1.5-flash",
		"gemini-2.5-flash",
		"aqa",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Models = %v, want %v", got, want)
	}
}

func TestGemini_ModelsIdempotent(t *testing.T) {
	fake := &fakeGemini{modelList: []geminiModel{
		{name: "models/gemini-2.5-pro", methods: []string{"generateContent"}},
		{name: "models/gemini-2.5-flash", methods: []string{"generateContent"}},
	}}
	g := newTestGemini(fake, &bytes.Buffer{})

	first := g.Models(context.Background())
	second := g.Models(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("successive calls differ: %v vs %v", first, second)
	}
}

func TestGemini_ModelsFailureDegrades(t *testing.T) {
	var warn bytes.Buffer
	g := newTestGemini(&fakeGemini{modelErr: errors.New("quota exceeded")}, &warn)

	got := g.Models(context.Background())
	if len(got) != 0 {
		t.Errorf("Models = %v, want empty", got)
	}
	if !strings.Contains(warn.String(), "quota exceeded") {
		t.Errorf("warning missing cause: %q", warn.String())
	}
}

func TestGemini_GenerateReview(t *testing.T) {
	g := newTestGemini(&fakeGemini{text: "Looks good overall."}, &bytes.Buffer{})

	out := g.GenerateReview(context.Background(), ReviewRequest{
		Content: "+x := 1\n", Prompt: "Review this.", Model: "gemini-2.5-pro",
	})
	if out != "Looks good overall." {
		t.Errorf("GenerateReview = %q", out)
	}
}

func TestGemini_DebugSkipsNetwork(t *testing.T) {
	var warn bytes.Buffer
	fake := &fakeGemini{text: "should not be returned"}
	g := newTestGemini(fake, &warn)

	for _, req := range []ReviewRequest{
		{Content: "+x\n", Prompt: "p", Model: "m", Debug: true},
		{Debug: true}, // empty content and prompt
	} {
		out := g.GenerateReview(context.Background(), req)
		if out != DebugSentinel {
			t.Errorf("debug output = %q, want sentinel", out)
		}
	}
	if fake.genCalls != 0 {
		t.Errorf("generate called %d times in debug mode", fake.genCalls)
	}
	if !strings.Contains(warn.String(), "DEBUG") {
		t.Error("debug echo missing from operator channel")
	}
}

func TestGemini_GenerateFailureEmbedsError(t *testing.T) {
	g := newTestGemini(&fakeGemini{genErr: errors.New("connection reset")}, &bytes.Buffer{})

	out := g.GenerateReview(context.Background(), ReviewRequest{Model: "m"})
	if !strings.Contains(out, "(Error during API call:") {
		t.Errorf("output = %q, want embedded error marker", out)
	}
	if !strings.Contains(out, "connection reset") {
		t.Errorf("output = %q, want cause included", out)
	}
}

func TestGemini_EmptyResponse(t *testing.T) {
	var warn bytes.Buffer
	g := newTestGemini(&fakeGemini{text: "  \n"}, &warn)

	out := g.GenerateReview(context.Background(), ReviewRequest{Model: "m"})
	if out != EmptyResponse {
		t.Errorf("output = %q, want %q", out, EmptyResponse)
	}
	if warn.Len() == 0 {
		t.Error("empty response should warn on the operator channel")
	}
}

func TestOrderByTier(t *testing.T) {
	got := orderByTier([]string{"zeta", "gemini-flash-b", "gemini-pro-b", "alpha", "gemini-pro-a", "gemini-flash-a"})
	want := []string{"gemini-pro-a", "gemini-pro-b", "gemini-flash-a", "gemini-flash-b", "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("orderByTier = %v, want %v", got, want)
	}
}
