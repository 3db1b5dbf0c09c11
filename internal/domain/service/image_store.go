package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing chat image attachments in a
// blob bucket and producing the URL recorded as the message content.
type ImageStore interface {
	// Save writes the image under key and returns its public URL.
	Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Delete removes a stored image. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
