package api

import (
	"context"
	"math/rand/v2"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/quoteweb/internal/errors"
	"github.com/diogo/quoteweb/internal/models"
)

// Source is one candidate producer of quotes in the fallback chain
type Source interface {
	Name() string
	Fetch(ctx context.Context) (models.Quote, error)
}

// Getter is the part of Client a RemoteSource needs
type Getter interface {
	Get(ctx context.Context, endpoint string) ([]byte, error)
}

// RemoteSource fetches a quote from an HTTP endpoint described by a SourceSpec
type RemoteSource struct {
	spec   models.SourceSpec
	client Getter
}

// NewRemoteSource creates a RemoteSource
func NewRemoteSource(client Getter, spec models.SourceSpec) *RemoteSource {
	return &RemoteSource{spec: spec, client: client}
}

// Name returns the source name
func (s *RemoteSource) Name() string {
	return s.spec.Name
}

// Spec returns the source description
func (s *RemoteSource) Spec() models.SourceSpec {
	return s.spec
}

// Fetch requests the endpoint and extracts text and author from the response
func (s *RemoteSource) Fetch(ctx context.Context) (models.Quote, error) {
	body, err := s.client.Get(ctx, s.spec.URL)
	if err != nil {
		return models.Quote{}, err
	}

	return parseQuote(body, s.spec)
}

// parseQuote extracts a Quote from body using the spec's paths
func parseQuote(body []byte, spec models.SourceSpec) (models.Quote, error) {
	if !gjson.ValidBytes(body) {
		return models.Quote{}, apierrors.NewParseError("invalid JSON from "+spec.Name, "")
	}

	text, ok := lookup(body, spec.TextPath)
	if !ok {
		return models.Quote{}, apierrors.NewParseError("quote text not found", spec.TextPath)
	}

	// Author is optional; a missing author means unknown
	author, _ := lookup(body, spec.AuthorPath)

	return models.Quote{Text: text, Author: author}, nil
}

// LocalSource picks uniformly from the embedded fallback quotes
type LocalSource struct {
	quotes []models.Quote
	intn   func(n int) int
}

// NewLocalSource creates a LocalSource. A nil intn uses math/rand/v2.
func NewLocalSource(intn func(n int) int) *LocalSource {
	if intn == nil {
		intn = rand.IntN
	}
	return &LocalSource{quotes: models.FallbackQuotes(), intn: intn}
}

// Name returns the source name
func (s *LocalSource) Name() string {
	return models.SourceLocal
}

// Fetch returns a random local quote; it never fails
func (s *LocalSource) Fetch(context.Context) (models.Quote, error) {
	return s.quotes[s.intn(len(s.quotes))], nil
}
