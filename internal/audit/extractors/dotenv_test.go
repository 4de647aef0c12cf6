package extractors

import (
	"context"
	"testing"
)

func TestDotEnvExtractor(t *testing.T) {
	content := `# local development settings
DATABASE_URL=postgres://localhost:5432/dev
export SMTP_HOST=smtp.example.com
API_KEY=
PORT="3000"
`

	extractor := NewDotEnvExtractor()
	hits, err := extractor.Extract(context.Background(), ".env", []byte(content))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []struct {
		name string
		line int
		def  *string
	}{
		{"API_KEY", 4, nil},
		{"DATABASE_URL", 2, strPtr("postgres://localhost:5432/dev")},
		{"PORT", 5, strPtr("3000")},
		{"SMTP_HOST", 3, strPtr("smtp.example.com")},
	}

	if len(hits) != len(want) {
		t.Fatalf("got %d hits, want %d: %+v", len(hits), len(want), hits)
	}
	for i, w := range want {
		hit := hits[i]
		if hit.Name != w.name || hit.Line != w.line || hit.Language != "dotenv" {
			t.Errorf("hit %d = %+v, want %s line %d", i, hit, w.name, w.line)
		}
		switch {
		case w.def == nil && hit.Default != nil:
			t.Errorf("%s: default = %q, want none", w.name, *hit.Default)
		case w.def != nil && (hit.Default == nil || *hit.Default != *w.def):
			t.Errorf("%s: default = %v, want %q", w.name, hit.Default, *w.def)
		}
	}
}

func TestDotEnvExtractorCanHandle(t *testing.T) {
	extractor := NewDotEnvExtractor()
	for _, path := range []string{".env", "config/.env.production", ".env.example"} {
		if !extractor.CanHandle(path) {
			t.Errorf("CanHandle(%q) = false", path)
		}
	}
	if extractor.CanHandle("environment.py") {
		t.Error("CanHandle(environment.py) = true")
	}
}
