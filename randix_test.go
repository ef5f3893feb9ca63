package randix

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/viant/randix/randvec"
)

func TestBuild_ReferenceScenario(t *testing.T) {
	cfg := Config{Dim: 10, NonZero: 4, MinCount: 0, Seed: 42}
	table, err := Build(context.Background(), []string{"the cat sat", "the dog sat", "the cat ran"}, nil, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	got, ok := table.Get("the")
	if !ok {
		t.Fatalf("Get(the) not found")
	}
	want := make([]int64, 10)
	for id := int64(0); id < 3; id++ {
		v, err := randvec.Generate(id, 42, randvec.Params{Dim: 10, NonZero: 4})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		v.AddTo(want, 1)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Get(the) = %v, want v0+v1+v2 = %v", got, want)
	}
}

func TestBuildFromReader(t *testing.T) {
	cfg := Config{Dim: 10, NonZero: 4, MinCount: 0, Seed: 42}
	fromSlice, err := Build(context.Background(), []string{"a b", "b c"}, nil, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	fromReader, err := BuildFromReader(context.Background(), strings.NewReader("a b\nb c\n"), nil, cfg)
	if err != nil {
		t.Fatalf("BuildFromReader failed: %v", err)
	}
	if !reflect.DeepEqual(fromReader.Tokens(), fromSlice.Tokens()) {
		t.Fatalf("reader Tokens() = %v, want %v", fromReader.Tokens(), fromSlice.Tokens())
	}
	for _, tok := range fromSlice.Tokens() {
		a, _ := fromSlice.Get(tok)
		b, _ := fromReader.Get(tok)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("embeddings for %q differ between slice and reader builds", tok)
		}
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cases := []Config{
		{Dim: 10, NonZero: 11, Seed: 1},
		{Dim: 0, NonZero: 1, Seed: 1},
		{Dim: 10, NonZero: 0, Seed: 1},
		{Dim: 10, NonZero: 2, MinCount: -1, Seed: 1},
	}
	for i, cfg := range cases {
		if _, err := Build(context.Background(), []string{"a"}, nil, cfg); err == nil {
			t.Fatalf("case %d: Build accepted invalid config %+v", i, cfg)
		}
	}
}

func TestBuild_StrictMode(t *testing.T) {
	cfg := Config{Dim: 10, NonZero: 2, Seed: 1, Strict: true}
	if _, err := Build(context.Background(), []string{"ok", "bad \xff"}, nil, cfg); err == nil {
		t.Fatalf("strict build accepted malformed context")
	}

	cfg.Strict = false
	table, err := Build(context.Background(), []string{"ok", "bad \xff"}, nil, cfg)
	if err != nil {
		t.Fatalf("lenient build failed: %v", err)
	}
	if _, ok := table.Frequency("ok"); !ok {
		t.Fatalf("lenient build dropped the valid context")
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("dim: 100\nnon_zero: 8\nseed: 7\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Dim != 100 || cfg.NonZero != 8 || cfg.Seed != 7 {
		t.Fatalf("LoadConfig = %+v, want dim 100, non_zero 8, seed 7", cfg)
	}
	// Omitted keys keep defaults.
	if cfg.MinCount != 9 {
		t.Fatalf("MinCount = %d, want default 9", cfg.MinCount)
	}
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig of empty input failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("empty config = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("dim: 10\nnon_zero: 20\n")); err == nil {
		t.Fatalf("LoadConfig accepted non_zero > dim")
	}
	if _, err := LoadConfig(strings.NewReader("no_such_key: 1\n")); err == nil {
		t.Fatalf("LoadConfig accepted unknown key")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dim != 300 || cfg.NonZero != 30 || cfg.MinCount != 9 {
		t.Fatalf("DefaultConfig = %+v, want dim 300, non_zero 30, min_count 9", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig does not validate: %v", err)
	}
}
