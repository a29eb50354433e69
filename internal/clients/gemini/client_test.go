package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"rate": 1400}`, `{"rate": 1400}`},
		{"json fence", "```json\n{\"rate\": 1400}\n```", `{"rate": 1400}`},
		{"plain fence", "```\n{\"rate\": 1400}\n```", `{"rate": 1400}`},
		{"leading whitespace", "  \n```json\n{}\n```  ", "{}"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Errorf("%s: stripCodeFences(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestExtractTextFromResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: `{"rate": `},
				{Text: `1400}`},
			}}},
		},
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		t.Fatalf("extractTextFromResponse failed: %v", err)
	}
	if text != `{"rate": 1400}` {
		t.Errorf("text = %q", text)
	}
}

func TestExtractTextFromResponse_Empty(t *testing.T) {
	if _, err := extractTextFromResponse(&genai.GenerateContentResponse{}); err == nil {
		t.Error("expected error for empty response")
	}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	if _, err := extractTextFromResponse(resp); err == nil {
		t.Error("expected error for candidate with no content")
	}
}
