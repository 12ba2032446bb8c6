package usecases

import (
	"strings"

	"github.com/cleitonmarx/relaytodo/internal/domain"
)

// validateContent rejects empty or whitespace-only todo content.
// Valid content is stored exactly as received.
func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.NewValidationErr("content is required")
	}
	return nil
}
