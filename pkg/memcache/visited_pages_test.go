package mem

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"/requests/user", "/requests/user"},
		{"/requests/6f1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9", "/requests/:id"},
		{"/requests/6F1B2C3D-4E5F-6071-8293-A4B5C6D7E8F9/edit", "/requests/:id/edit"},
		{"/requests/not-a-uuid", "/requests/not-a-uuid"},
		{"/", "/"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizePath(tc.in); got != tc.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVisitReportsFirstVisit(t *testing.T) {
	s := NewVisitedPages()

	if !s.Visit("u1", "/requests/user") {
		t.Error("first visit should report true")
	}
	if s.Visit("u1", "/requests/user") {
		t.Error("repeat visit should report false")
	}
	if !s.Visit("u2", "/requests/user") {
		t.Error("another user's first visit should report true")
	}

	// Two detail pages normalize to the same key.
	if !s.Visit("u1", "/requests/6f1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9") {
		t.Error("first detail page should report true")
	}
	if s.Visit("u1", "/requests/0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9") {
		t.Error("second detail page should normalize to the same entry")
	}
}

func TestVisitedPreservesInsertionOrder(t *testing.T) {
	s := NewVisitedPages()
	s.Visit("u1", "/requests/user")
	s.Visit("u1", "/requests/to-approve")
	s.Visit("u1", "/requests/user")
	s.Visit("u1", "/destinations")

	want := []string{"/requests/user", "/requests/to-approve", "/destinations"}
	if diff := cmp.Diff(want, s.Visited("u1")); diff != "" {
		t.Errorf("visited order mismatch (-want +got):\n%s", diff)
	}

	if got := s.Visited("unknown"); len(got) != 0 {
		t.Errorf("unknown user = %v, want empty", got)
	}
}

func TestVisitConcurrent(t *testing.T) {
	s := NewVisitedPages()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Visit("u1", "/requests/user")
				s.Visited("u1")
			}
		}()
	}
	wg.Wait()

	if got := s.Visited("u1"); len(got) != 1 {
		t.Errorf("visited = %v, want a single entry", got)
	}
}
