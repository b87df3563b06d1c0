package bftconfigs

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/bfvm"
	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/dscope"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, schema)),
	).Call(func(
		tapeSize TapeSize,
		maxDepth MaxDepth,
		maxSteps MaxSteps,
		target Target,
		parallel CheckParallel,
	) {
		if tapeSize != bfvm.DefaultTapeSize {
			t.Fatalf("got %v", tapeSize)
		}
		if maxDepth != bfir.DefaultMaxDepth {
			t.Fatalf("got %v", maxDepth)
		}
		if maxSteps != developmentMaxSteps {
			t.Fatalf("got %v", maxSteps)
		}
		if target != "go" {
			t.Fatalf("got %v", target)
		}
		if parallel < 1 {
			t.Fatalf("got %v", parallel)
		}
	})
}

func TestProductionSteps(t *testing.T) {
	dscope.New(
		modes.ForProduction(),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, schema)),
	).Call(func(
		maxSteps MaxSteps,
	) {
		if maxSteps != 0 {
			t.Fatalf("got %v", maxSteps)
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	loader := configs.NewLoaderFromInputs([]configs.Input{
		{
			Path: "bft.cue",
			Content: []byte(`
tape_size: 100
max_depth: 8
max_steps: 5000
target: "starlark"
check_parallel: 2
`),
		},
	}, schema)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(loader),
	).Call(func(
		tapeSize TapeSize,
		maxDepth MaxDepth,
		maxSteps MaxSteps,
		target Target,
		parallel CheckParallel,
	) {
		if tapeSize != 100 {
			t.Fatalf("got %v", tapeSize)
		}
		if maxDepth != 8 {
			t.Fatalf("got %v", maxDepth)
		}
		if maxSteps != 5000 {
			t.Fatalf("got %v", maxSteps)
		}
		if target != "starlark" {
			t.Fatalf("got %v", target)
		}
		if parallel != 2 {
			t.Fatalf("got %v", parallel)
		}
	})
}

func TestSchemaRejectsBadTarget(t *testing.T) {
	loader := configs.NewLoaderFromInputs([]configs.Input{
		{
			Path:    "bft.cue",
			Content: []byte(`target: "cobol"`),
		},
	}, schema)
	var target string
	if err := loader.AssignFirst("target", &target); err == nil {
		t.Fatal("should error")
	}
}

func TestCheckSources(t *testing.T) {
	loader := configs.NewLoaderFromInputs([]configs.Input{
		{
			Path:    "a/bft.cue",
			Content: []byte(`check_sources: ["hello.b", "clear.b"]`),
		},
		{
			Path:    "b/bft.cue",
			Content: []byte(`tape_size: 10`),
		},
		{
			Path:    "c/bft.cue",
			Content: []byte(`check_sources: ["-"]`),
		},
	}, schema)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(loader),
	).Call(func(
		sources CheckSources,
	) {
		if len(sources) != 3 || sources[0] != "hello.b" || sources[2] != "-" {
			t.Fatalf("got %v", sources)
		}
	})
}

func TestConfigsLoaderFindsWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bft.cue")
	if err := os.WriteFile(path, []byte("tape_size: 77\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
		tapeSize TapeSize,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(paths, path) {
			t.Fatalf("got %v", paths)
		}
		if tapeSize != 77 {
			t.Fatalf("got %v", tapeSize)
		}
	})
}

func TestConfigsLoaderLogsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bft.cue"), []byte(`target: "cobol"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		loader configs.Loader,
	) {
		if _, err := loader.Paths(); err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(buf.String(), "invalid config") {
			t.Fatalf("got %q", buf.String())
		}
	})
}
