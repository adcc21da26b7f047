package api

import (
	"context"
	"errors"
	"testing"

	apierrors "github.com/diogo/quoteweb/internal/errors"
	"github.com/diogo/quoteweb/internal/models"
)

func TestParseQuote(t *testing.T) {
	sources := models.DefaultSources()
	quotable, garden := sources[0], sources[2]

	tests := []struct {
		name       string
		spec       models.SourceSpec
		body       string
		want       models.Quote
		wantErr    bool
		wantParser bool
	}{
		{
			name: "content and author",
			spec: quotable,
			body: `{"_id":"x","content":"Stay hungry.","author":"Steve Jobs","tags":["famous"]}`,
			want: models.Quote{Text: "Stay hungry.", Author: "Steve Jobs"},
		},
		{
			name: "missing author is unknown",
			spec: quotable,
			body: `{"content":"Stay hungry."}`,
			want: models.Quote{Text: "Stay hungry."},
		},
		{
			name: "null author is unknown",
			spec: quotable,
			body: `{"content":"Stay hungry.","author":null}`,
			want: models.Quote{Text: "Stay hungry."},
		},
		{
			name: "quote garden object shape",
			spec: garden,
			body: `{"statusCode":200,"data":{"quoteText":"Be brave.","quoteAuthor":"Anon"}}`,
			want: models.Quote{Text: "Be brave.", Author: "Anon"},
		},
		{
			name: "quote garden array shape",
			spec: garden,
			body: `{"statusCode":200,"data":[{"quoteText":"Be kind.","quoteAuthor":"Someone"}]}`,
			want: models.Quote{Text: "Be kind.", Author: "Someone"},
		},
		{
			name: "text is trimmed",
			spec: quotable,
			body: `{"content":"  Padded.  ","author":" A "}`,
			want: models.Quote{Text: "Padded.", Author: "A"},
		},
		{
			name:       "malformed JSON",
			spec:       quotable,
			body:       `{"content":`,
			wantErr:    true,
			wantParser: true,
		},
		{
			name:       "wrong shape",
			spec:       quotable,
			body:       `{"data":{"quoteText":"x"}}`,
			wantErr:    true,
			wantParser: true,
		},
		{
			name:       "empty text",
			spec:       quotable,
			body:       `{"content":"   ","author":"A"}`,
			wantErr:    true,
			wantParser: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuote([]byte(tt.body), tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseQuote() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantParser && !errors.Is(err, apierrors.ErrInvalidResponse) {
				t.Errorf("expected ParseError, got %v", err)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseQuote() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLookupAlternatives(t *testing.T) {
	body := []byte(`{"a":"","b":{"c":"found"}}`)

	tests := []struct {
		paths  string
		want   string
		wantOK bool
	}{
		{"b.c", "found", true},
		{"a|b.c", "found", true},
		{"missing| b.c ", "found", true},
		{"missing", "", false},
		{"", "", false},
		{"|", "", false},
	}

	for _, tt := range tests {
		got, ok := lookup(body, tt.paths)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("lookup(%q) = (%q, %v), want (%q, %v)", tt.paths, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRemoteSourceFetch(t *testing.T) {
	spec := models.DefaultSources()[0]
	mock := NewMockHttpClient().Respond(spec.URL, 200, `{"content":"Go on.","author":"B"}`)
	src := NewRemoteSource(newMockClient(mock), spec)

	if src.Name() != models.SourceQuotable {
		t.Errorf("Name() = %s", src.Name())
	}
	if src.Spec().URL != spec.URL {
		t.Errorf("Spec().URL = %s", src.Spec().URL)
	}

	q, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if q.Text != "Go on." || q.Author != "B" {
		t.Errorf("Fetch() = %+v", q)
	}
	if mock.Calls(spec.URL) != 1 {
		t.Errorf("expected 1 call, got %d", mock.Calls(spec.URL))
	}
}

func TestRemoteSourceFetch_HTTPError(t *testing.T) {
	spec := models.DefaultSources()[1]
	mock := NewMockHttpClient().Respond(spec.URL, 503, "")
	src := NewRemoteSource(newMockClient(mock), spec)

	_, err := src.Fetch(context.Background())

	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 503 {
		t.Errorf("expected 503 APIError, got %v", err)
	}
}

func TestLocalSource(t *testing.T) {
	fallback := models.FallbackQuotes()

	for i := range fallback {
		src := NewLocalSource(func(n int) int { return i })
		q, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if q != fallback[i] {
			t.Errorf("Fetch() = %+v, want %+v", q, fallback[i])
		}
	}

	if NewLocalSource(nil).Name() != models.SourceLocal {
		t.Error("LocalSource should be named local")
	}
}
