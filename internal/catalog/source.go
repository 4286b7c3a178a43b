// AngelaMos | 2026
// source.go

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed seed/catalog.json
var embeddedSeed []byte

// Source produces the seed a Catalog is built from.
type Source interface {
	Load(ctx context.Context) (Seed, error)
	Name() string
}

// EmbeddedSource reads the seed compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(_ context.Context) (Seed, error) {
	dec := json.NewDecoder(bytes.NewReader(embeddedSeed))
	dec.DisallowUnknownFields()

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		return Seed{}, fmt.Errorf("decode embedded seed: %w", err)
	}
	return seed, nil
}

// FileSource reads a JSON or YAML seed file. JSON is parsed by the YAML
// parser since every JSON document is valid YAML.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(_ context.Context) (Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(s.Path), yaml.Parser()); err != nil {
		return Seed{}, fmt.Errorf("read seed file %s: %w", s.Path, err)
	}

	var seed Seed
	err := k.UnmarshalWithConf("", &seed, koanf.UnmarshalConf{Tag: "json"})
	if err != nil {
		return Seed{}, fmt.Errorf("decode seed file %s: %w", s.Path, err)
	}
	return seed, nil
}

// Load reads the seed from src, validates it and builds the catalog. With
// strict set any issue aborts the load. Otherwise issues are logged and
// lookups fall back to first-match order.
func Load(
	ctx context.Context,
	src Source,
	strict bool,
	logger *slog.Logger,
) (*Catalog, error) {
	seed, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	if err := Validate(seed); err != nil {
		var verr *ValidationError
		if strict || !errors.As(err, &verr) {
			return nil, fmt.Errorf("validate catalog from %s: %w", src.Name(), err)
		}
		for _, issue := range verr.Issues {
			logger.Warn("catalog issue",
				"source", src.Name(),
				"entity", issue.Entity,
				"id", issue.ID,
				"message", issue.Message,
			)
		}
	}

	cat := New(seed)
	counts := cat.Counts()
	logger.Info("catalog loaded",
		"source", src.Name(),
		"categories", counts.Categories,
		"services", counts.Services,
		"staff", counts.Staff,
		"add_ons", counts.AddOns,
		"memberships", counts.Memberships,
		"testimonials", counts.Testimonials,
	)

	return cat, nil
}
