package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedAnalysis = errors.New("llm: analysis does not match the expected schema")

// ReportAnalysis is the JSON object the model is asked to return for a
// medical report.
type ReportAnalysis struct {
	Summary         string   `json:"summary"`
	SummaryUrdu     string   `json:"summaryUrdu"`
	KeyFindings     []string `json:"keyFindings"`
	Recommendations []string `json:"recommendations"`
}

const ReportAnalysisSchema = `{
  "summary": "string, plain-English overview of the report (3-5 sentences)",
  "summaryUrdu": "string, the same overview written in Urdu",
  "keyFindings": ["string, one important value or observation per item"],
  "recommendations": ["string, one concern or suggested next step per item"]
}`

// ParseReportAnalysis decodes a model response. Markdown code fences are
// tolerated; anything else that is not the schema is rejected.
func ParseReportAnalysis(raw string) (*ReportAnalysis, error) {
	body := stripCodeFence(raw)

	var a ReportAnalysis
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	a.Summary = strings.TrimSpace(a.Summary)
	a.SummaryUrdu = strings.TrimSpace(a.SummaryUrdu)
	if a.Summary == "" {
		return nil, fmt.Errorf("%w: summary is empty", ErrMalformedAnalysis)
	}
	a.KeyFindings = compact(a.KeyFindings)
	a.Recommendations = compact(a.Recommendations)
	return &a, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
