package sources

import (
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bft/configs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "at.b")
	if err := os.WriteFile(path, []byte("++++++++[>++++++++<-]>."), 0644); err != nil {
		t.Fatal(err)
	}
	testScope(t).Call(func(
		load Load,
	) {
		source, err := load(t.Context(), path)
		if err != nil {
			t.Fatal(err)
		}
		if source.Name != path {
			t.Fatalf("got %v", source.Name)
		}
		if source.Content != "++++++++[>++++++++<-]>." {
			t.Fatalf("got %v", source.Content)
		}

		_, err = load(t.Context(), filepath.Join(t.TempDir(), "missing.b"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestLoadStdin(t *testing.T) {
	testScope(t).Fork(
		func() Stdin {
			return strings.NewReader("+.")
		},
	).Call(func(
		load Load,
	) {
		source, err := load(t.Context(), "-")
		if err != nil {
			t.Fatal(err)
		}
		if source.Name != "<stdin>" || source.Content != "+." {
			t.Fatalf("got %+v", source)
		}
	})
}

func TestLoadHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hello.b" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("+[-]."))
	}))
	defer server.Close()

	testScope(t).Call(func(
		load Load,
	) {
		source, err := load(t.Context(), server.URL+"/hello.b")
		if err != nil {
			t.Fatal(err)
		}
		if source.Content != "+[-]." {
			t.Fatalf("got %v", source.Content)
		}

		_, err = load(t.Context(), server.URL+"/nope.b")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("got %v", err)
		}
	})
}
