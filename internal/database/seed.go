package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData maps collection names to the records they start with
type SeedData map[string][]Record

// LoadSeed reads seed data from a YAML file, or the embedded default when path is empty
func LoadSeed(path string) (SeedData, error) {
	if path == "" {
		return ParseSeed(defaultSeed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML seed document
func ParseSeed(data []byte) (SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for collection, records := range seed {
		for i, rec := range records {
			if rec == nil {
				return nil, fmt.Errorf("parse seed: %s[%d] is empty", collection, i)
			}
		}
	}
	return seed, nil
}

// Seed creates the records of every collection that is currently empty.
// Collections that already hold records are left alone. Returns the number of
// records created.
func Seed(ctx context.Context, store Store, data SeedData) (int, error) {
	collections := make([]string, 0, len(data))
	for name := range data {
		collections = append(collections, name)
	}
	slices.Sort(collections)

	created := 0
	for _, name := range collections {
		existing, err := store.Get(ctx, name)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", name, err)
		}
		if len(existing) > 0 {
			continue
		}

		for _, rec := range data[name] {
			if _, err := store.Create(ctx, name, rec); err != nil {
				return created, fmt.Errorf("seed %s: %w", name, err)
			}
			created++
		}
	}
	return created, nil
}
