package comparison

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDocumentTooLarge reports a document whose normalized token count
	// exceeds the configured bound.
	ErrDocumentTooLarge = errors.New("document too large")
	// ErrEmptyInput reports a request where both texts are blank.
	ErrEmptyInput = errors.New("enter text in at least one field")
)

// RequireText rejects a request whose texts are all blank.
func RequireText(texts ...string) error {
	for _, text := range texts {
		if strings.TrimSpace(text) != "" {
			return nil
		}
	}
	return ErrEmptyInput
}

func tooLarge(which string, tokens, limit int) error {
	return fmt.Errorf("%w: %s document has %d tokens (limit %d)", ErrDocumentTooLarge, which, tokens, limit)
}
