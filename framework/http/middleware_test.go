package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gohttp "github.com/km-arc/go-locator/framework/http"
	"github.com/km-arc/go-locator/framework/locator"
)

func TestScopePerRequest_AttachesScope(t *testing.T) {
	var seen *locator.Scope
	handler := gohttp.ScopePerRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := locator.ScopeFrom(r.Context())
		if !ok {
			t.Fatal("request context should carry a scope")
		}
		seen = s
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if seen == nil {
		t.Fatal("handler did not run")
	}
}

func TestScopePerRequest_FreshScopeEachRequest(t *testing.T) {
	l := locator.New()
	_ = l.RegisterConstructor("app.Counter", func(...any) (any, error) {
		return &counter{}, nil
	})
	capability := locator.Capability{Key: "app.Counter", Kind: locator.KindConcrete}

	var instances []any
	handler := gohttp.ScopePerRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first, err := l.Make(r.Context(), capability)
		if err != nil {
			t.Fatalf("Make: %v", err)
		}
		second, err := l.Make(r.Context(), capability)
		if err != nil {
			t.Fatalf("second Make: %v", err)
		}
		if first != second {
			t.Error("within one request, Make should hit the request scope")
		}
		instances = append(instances, first)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if len(instances) != 2 {
		t.Fatalf("got %d requests, want 2", len(instances))
	}
	if instances[0] == instances[1] {
		t.Error("each request must get its own scope and its own instance")
	}
}

type counter struct{ n int }
