package exoml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/domain"
)

// envelope mirrors the rendered markup for parse-back verification.
type envelope struct {
	XMLName xml.Name `xml:"Response"`
	Says    []string `xml:"Say"`
	Pauses  []struct {
		Length string `xml:"length,attr"`
	} `xml:"Pause"`
}

func parseBack(t *testing.T, data []byte) envelope {
	t.Helper()
	var env envelope
	if err := xml.Unmarshal(data, &env); err != nil {
		t.Fatalf("rendered markup is not well-formed XML: %v\n%s", err, data)
	}
	return env
}

func TestRender_MultiLinePrompt(t *testing.T) {
	prompt := domain.DialoguePrompt{
		Lines:        []string{"first line", "second line", "third line"},
		PauseSeconds: 1,
	}

	out := Render(prompt)

	env := parseBack(t, out)
	if len(env.Says) != 3 {
		t.Fatalf("expected 3 Say directives, got %d", len(env.Says))
	}
	// Pauses go between lines, not after the last one.
	if len(env.Pauses) != 2 {
		t.Fatalf("expected 2 Pause directives, got %d", len(env.Pauses))
	}
	for _, p := range env.Pauses {
		if p.Length != "1" {
			t.Errorf("pause length = %q, want \"1\"", p.Length)
		}
	}
	if env.Says[0] != "first line" {
		t.Errorf("first Say = %q", env.Says[0])
	}
}

func TestRender_EmptyPrompt(t *testing.T) {
	out := Render(domain.DialoguePrompt{})

	if string(out) != "<Response></Response>" {
		t.Errorf("empty prompt should render the bare envelope, got %s", out)
	}
	parseBack(t, out)
}

func TestRender_SingleLineHasNoPause(t *testing.T) {
	out := Render(domain.DialoguePrompt{Lines: []string{"only line"}, PauseSeconds: 1})

	env := parseBack(t, out)
	if len(env.Says) != 1 || len(env.Pauses) != 0 {
		t.Errorf("expected 1 Say and 0 Pause, got %d/%d", len(env.Says), len(env.Pauses))
	}
}

func TestRender_EscapesText(t *testing.T) {
	out := Render(domain.DialoguePrompt{
		Lines:        []string{`press 1 if <cost> is "less" & you agree`},
		PauseSeconds: 1,
	})

	if strings.Contains(string(out), "<cost>") {
		t.Fatalf("unescaped markup in output: %s", out)
	}
	env := parseBack(t, out)
	if !strings.Contains(env.Says[0], "<cost>") {
		t.Errorf("escaped text should round-trip, got %q", env.Says[0])
	}
}

func TestRender_SingleRootForAllPromptShapes(t *testing.T) {
	// Rendering must be total: any prompt shape yields one well-formed
	// root element.
	prompts := []domain.DialoguePrompt{
		{},
		{Lines: []string{""}},
		{Lines: []string{"a"}, PauseSeconds: 0},
		{Lines: []string{"a", "b", "c", "d"}, PauseSeconds: 2},
	}

	for i, p := range prompts {
		out := Render(p)
		if !strings.HasPrefix(string(out), "<Response>") || !strings.HasSuffix(string(out), "</Response>") {
			t.Errorf("prompt %d: output not wrapped in a single envelope: %s", i, out)
		}
		parseBack(t, out)
	}
}
