package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/dlautopecas/adpulse/internal/model"
)

// verdictEnvelope is the JSON object the classifier is instructed to return.
type verdictEnvelope struct {
	Analyses []wireVerdict `json:"analyses"`
}

// wireVerdict is one per-ad object inside the envelope. Numeric fields are
// pointers so a missing field can be told apart from an explicit zero.
type wireVerdict struct {
	Ad       string   `json:"ad"`
	Category string   `json:"category"`
	Reason   string   `json:"reason"`
	Action   string   `json:"action"`
	Revenue  *float64 `json:"revenue"`
	Spend    *float64 `json:"spend"`
	ACOS     *float64 `json:"acos"`
}

// ParseVerdicts parses a classifier response into verdicts. Code fences are
// stripped first; if the remainder is not valid JSON one repair pass is
// attempted before giving up. Objects missing required fields are rejected
// rather than defaulted, except category, which coerces to ADJUST.
func ParseVerdicts(content string) ([]model.Verdict, error) {
	content = StripCodeFences(content)
	if content == "" {
		return nil, fmt.Errorf("empty response")
	}

	var envelope verdictEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		repaired, repairErr := jsonrepair.RepairJSON(content)
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse response JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &envelope); err != nil {
			return nil, fmt.Errorf("failed to parse repaired response JSON: %w", err)
		}
	}

	if envelope.Analyses == nil {
		return nil, fmt.Errorf("response has no analyses key")
	}

	verdicts := make([]model.Verdict, 0, len(envelope.Analyses))
	for i, wv := range envelope.Analyses {
		v, err := wv.toVerdict()
		if err != nil {
			return nil, fmt.Errorf("invalid verdict at index %d: %w", i, err)
		}
		verdicts = append(verdicts, v)
	}

	return verdicts, nil
}

func (wv wireVerdict) toVerdict() (model.Verdict, error) {
	if strings.TrimSpace(wv.Ad) == "" {
		return model.Verdict{}, fmt.Errorf("missing ad name")
	}
	if wv.Revenue == nil {
		return model.Verdict{}, fmt.Errorf("missing revenue")
	}
	if wv.Spend == nil {
		return model.Verdict{}, fmt.Errorf("missing spend")
	}
	if wv.ACOS == nil {
		return model.Verdict{}, fmt.Errorf("missing acos")
	}

	return model.Verdict{
		AdName:   wv.Ad,
		Category: model.NormalizeCategory(strings.ToUpper(strings.TrimSpace(wv.Category))),
		Reason:   wv.Reason,
		Action:   wv.Action,
		Revenue:  *wv.Revenue,
		Spend:    *wv.Spend,
		ACOS:     *wv.ACOS,
	}, nil
}

// StripCodeFences removes markdown code fence markup that models sometimes
// wrap JSON responses in.
func StripCodeFences(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		} else {
			content = strings.TrimPrefix(content, "```json")
			content = strings.TrimPrefix(content, "```")
		}
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
