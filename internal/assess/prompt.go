package assess

import "strings"

const (
	systemPromptStrict = "You are a project risk assessment engine. Respond with JSON only. Output must match the schema exactly."

	promptInstruction = "Analyze project description as best as possible."
)

// BuildPrompt assembles the system and user prompts for one assessment.
// The user prompt is the fixed instruction, the schema-derived format
// instructions, and the project description; nothing else is interpolated.
func BuildPrompt(description string) (system, user string) {
	var b strings.Builder
	b.WriteString(promptInstruction)
	b.WriteString("\n\n")
	b.WriteString(FormatInstructions())
	b.WriteString("\n\nProject description:\n")
	b.WriteString(description)
	return systemPromptStrict, b.String()
}
