package assess

// AnalyzeRequest is the request payload for a project assessment.
type AnalyzeRequest struct {
	// OpenAIAPIKey optionally overrides the configured provider credential
	// for this request.
	OpenAIAPIKey string `json:"openAIApiKey"`
	// ProjectDescription is the free-text project description to assess.
	ProjectDescription string `json:"projectDescription"`
}

// Assessment is the structured result produced from the model completion.
type Assessment struct {
	Summary   string   `json:"summary"`
	Risks     []string `json:"risks"`
	RAGStatus string   `json:"ragStatus"`
}
