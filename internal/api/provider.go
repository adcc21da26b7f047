package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	apierrors "github.com/diogo/quoteweb/internal/errors"
	"github.com/diogo/quoteweb/internal/models"
)

// FetchResult is the outcome of one pass over the source chain.
// Quote is always usable. Fallback is set, and Err wraps
// errors.ErrSourcesExhausted, when the local list had to be used.
type FetchResult struct {
	Quote    models.Quote
	Source   string
	Fallback bool
	Err      error
}

// QuoteFetcher is implemented by Provider and consumed by the TUI and commands
type QuoteFetcher interface {
	FetchQuote(ctx context.Context) FetchResult
}

// Provider resolves a quote by trying its sources in declared order
type Provider struct {
	sources  []Source
	fallback []models.Quote
	intn     func(n int) int
	logger   *log.Logger
}

// Ensure Provider implements QuoteFetcher
var _ QuoteFetcher = (*Provider)(nil)

// ProviderOption is a function that configures the provider
type ProviderOption func(*Provider)

// WithRand sets the function used to pick a fallback quote
func WithRand(intn func(n int) int) ProviderOption {
	return func(p *Provider) {
		if intn != nil {
			p.intn = intn
		}
	}
}

// WithProviderLogger sets the provider's logger
func WithProviderLogger(logger *log.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a Provider over sources, tried in the given order
func NewProvider(sources []Source, opts ...ProviderOption) *Provider {
	p := &Provider{
		sources:  append([]Source(nil), sources...),
		fallback: models.FallbackQuotes(),
		intn:     rand.IntN,
		logger:   log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ProviderFromSpecs builds a Provider with one RemoteSource per spec
func ProviderFromSpecs(client Getter, specs []models.SourceSpec, opts ...ProviderOption) *Provider {
	sources := make([]Source, 0, len(specs))
	for _, spec := range specs {
		sources = append(sources, NewRemoteSource(client, spec))
	}
	return NewProvider(sources, opts...)
}

// Sources returns the sources in fallback order
func (p *Provider) Sources() []Source {
	return append([]Source(nil), p.sources...)
}

// FetchQuote makes a single pass over the sources and returns the first
// accepted quote. When every source fails it returns a random fallback quote.
// It never returns an unusable quote.
func (p *Provider) FetchQuote(ctx context.Context) FetchResult {
	failures := make([]error, 0, len(p.sources))

	for _, src := range p.sources {
		if ctx.Err() != nil {
			break
		}

		quote, err := p.try(ctx, src)
		if err != nil {
			p.logger.Debug("quote source failed", "source", src.Name(), "err", err)
			failures = append(failures, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}

		p.logger.Debug("quote source succeeded", "source", src.Name())
		return FetchResult{Quote: quote, Source: src.Name()}
	}

	quote := p.fallback[p.intn(len(p.fallback))]

	// A cancelled fetch was superseded, not failed
	if ctxErr := ctx.Err(); ctxErr != nil {
		failures = append(failures, ctxErr)
		p.logger.Debug("quote fetch cancelled, using local quote", "tried", len(failures)-1, "sources", len(p.sources))
	} else {
		p.logger.Warn("all quote sources failed, using local quote", "sources", len(p.sources))
	}

	err := errors.Join(append([]error{apierrors.ErrSourcesExhausted}, failures...)...)

	return FetchResult{
		Quote:    quote,
		Source:   models.SourceLocal,
		Fallback: true,
		Err:      err,
	}
}

// try fetches from src and applies the acceptance pattern.
// A panicking source is treated as a failed one.
func (p *Provider) try(ctx context.Context, src Source) (quote models.Quote, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("source panicked: %v", r)
		}
	}()

	quote, err = src.Fetch(ctx)
	if err != nil {
		return models.Quote{}, err
	}

	quote.Text = strings.TrimSpace(quote.Text)
	quote.Author = strings.TrimSpace(quote.Author)

	if quote.IsZero() {
		return models.Quote{}, apierrors.ErrNoContent
	}
	if !Accept(quote.Text) {
		return models.Quote{}, apierrors.NewValidationError(src.Name(), quote.Text)
	}

	return quote, nil
}
