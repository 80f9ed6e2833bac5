package health

import "strings"

// Service encapsulates health-related checks.
type Service struct {
	apiKey string
}

// NewService constructs a health service bound to the LLM credential.
func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey}
}

// Status reports whether the analysis path is usable. The transport layer
// itself runs regardless of the credential.
func (s *Service) Status() map[string]string {
	if strings.TrimSpace(s.apiKey) == "" {
		return map[string]string{
			"status": "unhealthy",
			"error":  "OPENAI_API_KEY environment variable not set",
		}
	}
	return map[string]string{"status": "healthy"}
}
