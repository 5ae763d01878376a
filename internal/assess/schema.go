package assess

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Field declares one key of the assessment output contract.
type Field struct {
	Name        string
	Type        string
	Description string
}

const (
	typeString      = "string"
	typeStringArray = "string[]"
)

// OutputFields is the single source of truth for the assessment contract.
// Both the format instructions sent to the provider and the parser applied
// to its completion are derived from this list.
var OutputFields = []Field{
	{
		Name:        "summary",
		Type:        typeString,
		Description: "a concise summary of the project in at most 10 sentences",
	},
	{
		Name:        "risks",
		Type:        typeStringArray,
		Description: "the key risks identified in the project description",
	},
	{
		Name:        "ragStatus",
		Type:        typeString,
		Description: "the overall red/amber/green (RAG) delivery status for the project",
	},
}

// FormatInstructions renders the formatting guidance embedded in every
// assessment prompt.
func FormatInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a markdown code block containing a JSON object with exactly the following keys:\n\n")
	b.WriteString("```json\n{\n")
	for i, f := range OutputFields {
		b.WriteString(fmt.Sprintf("\t%q: %s // %s", f.Name, f.Type, f.Description))
		if i < len(OutputFields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n```\n\n")
	b.WriteString("Do not include any keys other than those listed, and do not add text outside the code block.")
	return b.String()
}

// ParseAssessment extracts the JSON payload from a raw completion and
// validates it against OutputFields.
func ParseAssessment(completion string) (Assessment, error) {
	raw := extractJSON(completion)
	if strings.TrimSpace(raw) == "" {
		return Assessment{}, fmt.Errorf("completion contains no JSON object")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Assessment{}, fmt.Errorf("completion is not valid JSON: %v", err)
	}

	for _, f := range OutputFields {
		value, ok := payload[f.Name]
		if !ok {
			return Assessment{}, fmt.Errorf("missing required key %q", f.Name)
		}
		if err := checkFieldType(f, value); err != nil {
			return Assessment{}, err
		}
	}

	var out Assessment
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Assessment{}, fmt.Errorf("completion does not match the assessment schema: %v", err)
	}
	if out.Risks == nil {
		out.Risks = []string{}
	}
	return out, nil
}

func checkFieldType(f Field, value any) error {
	switch f.Type {
	case typeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s must be a string", f.Name)
		}
	case typeStringArray:
		items, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s must be an array of strings", f.Name)
		}
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%s must be an array of strings", f.Name)
			}
		}
	default:
		return fmt.Errorf("unknown field type %q for %s", f.Type, f.Name)
	}
	return nil
}

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// extractJSON pulls the JSON payload out of a completion that may wrap it
// in markdown fences or surrounding prose.
func extractJSON(completion string) string {
	if m := fencedJSONPattern.FindStringSubmatch(completion); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(completion[start : end+1])
	}
	return strings.TrimSpace(completion)
}
