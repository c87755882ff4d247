package media

import (
	"context"
	"testing"
)

func TestResolverStaticFallback(t *testing.T) {
	r, err := NewResolver("", "", "", "", "arts/")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	if r.IsPresigning() {
		t.Error("resolver without credentials should not presign")
	}

	url, err := r.ResolveURL(context.Background(), "sun flare.css")
	if err != nil {
		t.Fatalf("ResolveURL() error = %v", err)
	}
	if url != "arts/sun%20flare.css" {
		t.Errorf("ResolveURL() = %q", url)
	}
}

func TestResolverRequiresSomeSource(t *testing.T) {
	if _, err := NewResolver("", "", "", "", ""); err == nil {
		t.Error("NewResolver() with nothing configured should fail")
	}
}

func TestObjectExistsWithoutBucket(t *testing.T) {
	r, err := NewResolver("", "", "", "", "arts/")
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}

	exists, err := r.ObjectExists(context.Background(), "sun.css")
	if err != nil {
		t.Fatalf("ObjectExists() error = %v", err)
	}
	if exists {
		t.Error("resolver without a bucket cannot vouch for objects")
	}
}
