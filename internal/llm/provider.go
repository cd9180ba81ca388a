package llm

import "context"

// Provider defines the interface for text completion providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}

// ImageProvider defines the interface for image generation providers.
// Not every text provider has one; callers must tolerate its absence
// and treat generation failure as a missing image, not an error.
type ImageProvider interface {
	// GenerateImage produces one image for the request's prompt.
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
	// Name returns the name of this provider.
	Name() string
}
