package store

import (
	"testing"

	"github.com/nijaru/yt-comments/models"
)

func TestPutGetDelete(t *testing.T) {
	s := New()

	if _, ok := s.Get("session-1"); ok {
		t.Fatal("expected no report for new session")
	}

	first := &models.Report{VideoID: "first"}
	s.Put("session-1", first)

	got, ok := s.Get("session-1")
	if !ok || got.VideoID != "first" {
		t.Fatalf("expected first report, got %+v (ok=%v)", got, ok)
	}

	// A new run replaces the session's report wholesale.
	second := &models.Report{VideoID: "second"}
	s.Put("session-1", second)

	got, ok = s.Get("session-1")
	if !ok || got.VideoID != "second" {
		t.Fatalf("expected second report, got %+v (ok=%v)", got, ok)
	}

	s.Delete("session-1")
	if _, ok := s.Get("session-1"); ok {
		t.Fatal("expected report to be deleted")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s := New()
	s.Put("a", &models.Report{VideoID: "video-a"})
	s.Put("b", &models.Report{VideoID: "video-b"})

	a, _ := s.Get("a")
	b, _ := s.Get("b")

	if a.VideoID != "video-a" || b.VideoID != "video-b" {
		t.Errorf("sessions interfered: a=%+v b=%+v", a, b)
	}
}
