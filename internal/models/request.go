package models

import "github.com/sashabaranov/go-openai"

// SeedCode is the editor content shown before any edit or refactor
const SeedCode = `def add(a, b):
  return a + b`

// Model identifiers the refactor endpoint understands
const (
	ModelFast = openai.GPT3Dot5Turbo0125
	ModelBest = openai.GPT4Turbo0125
)

// KnownModels lists the accepted values for RefactorRequest.ModelName
var KnownModels = []string{ModelFast, ModelBest}

// IsKnownModel reports whether name may be sent as model_name.
// An empty name means "let the endpoint decide" and is always accepted.
func IsKnownModel(name string) bool {
	if name == "" {
		return true
	}
	for _, m := range KnownModels {
		if m == name {
			return true
		}
	}
	return false
}

// RefactorRequest is the body POSTed to the refactor endpoint
type RefactorRequest struct {
	SourceCode string `json:"source_code"`
	ModelName  string `json:"model_name,omitempty"`
}
