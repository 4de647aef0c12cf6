package extractors

import (
	"context"
	"testing"
)

func TestDockerComposeExtractor(t *testing.T) {
	content := `services:
  web:
    image: app:latest
    environment:
      PORT: "3000"
      DATABASE_URL: postgres://db:5432/app
      API_KEY:
  worker:
    image: app:latest
    environment:
      - QUEUE_NAME=jobs
      - REDIS_URL
`

	extractor := NewDockerComposeExtractor()
	hits, err := extractor.Extract(context.Background(), "docker-compose.yml", []byte(content))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	byName := make(map[string]*string)
	for _, hit := range hits {
		if hit.Language != "docker" {
			t.Errorf("%s: language = %q", hit.Name, hit.Language)
		}
		byName[hit.Name] = hit.Default
	}

	if len(byName) != 5 {
		t.Fatalf("got %d distinct names, want 5: %+v", len(byName), hits)
	}

	wantDefaults := map[string]*string{
		"PORT":         strPtr("3000"),
		"DATABASE_URL": strPtr("postgres://db:5432/app"),
		"API_KEY":      nil,
		"QUEUE_NAME":   strPtr("jobs"),
		"REDIS_URL":    nil,
	}
	for name, want := range wantDefaults {
		got, ok := byName[name]
		if !ok {
			t.Errorf("%s: missing", name)
			continue
		}
		switch {
		case want == nil && got != nil:
			t.Errorf("%s: default = %q, want none", name, *got)
		case want != nil && got == nil:
			t.Errorf("%s: default missing, want %q", name, *want)
		case want != nil && got != nil && *want != *got:
			t.Errorf("%s: default = %q, want %q", name, *got, *want)
		}
	}
}

func TestLenientComposeEnv(t *testing.T) {
	// A file the strict loader would reject still yields hits, with real
	// line numbers from the yaml nodes.
	content := `services:
  web:
    build: [this, is, not, valid, compose]
    environment:
      PORT: 3000
      SESSION_SECRET:
  worker:
    environment:
      - BATCH_SIZE=100
`

	hits := lenientComposeEnv("compose.yaml", []byte(content))
	if len(hits) != 3 {
		t.Fatalf("got %d hits, want 3: %+v", len(hits), hits)
	}

	if hits[0].Name != "PORT" || hits[0].Line != 5 {
		t.Errorf("first hit = %+v", hits[0])
	}
	if hits[0].Default == nil || *hits[0].Default != "3000" {
		t.Errorf("PORT default = %v", hits[0].Default)
	}
	if hits[1].Name != "SESSION_SECRET" || hits[1].Default != nil {
		t.Errorf("second hit = %+v", hits[1])
	}
	if hits[2].Name != "BATCH_SIZE" || hits[2].Line != 9 {
		t.Errorf("third hit = %+v", hits[2])
	}
	if hits[2].Default == nil || *hits[2].Default != "100" {
		t.Errorf("BATCH_SIZE default = %v", hits[2].Default)
	}
}

func TestLenientComposeEnvNotYaml(t *testing.T) {
	if hits := lenientComposeEnv("compose.yml", []byte("{{ not yaml")); hits != nil {
		t.Errorf("got %+v, want nil", hits)
	}
}
