package sensor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileSource_MissingFileReadsAbsent(t *testing.T) {
	f := NewFileSource(filepath.Join(t.TempDir(), "motion"))

	absent, err := f.MotionAbsent(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("MotionAbsent failed: %v", err)
	}
	if !absent {
		t.Error("missing file should read as motion absent")
	}
}

func TestFileSource_ReadsSample(t *testing.T) {
	tests := []struct {
		content    string
		wantAbsent bool
	}{
		{"1", false},
		{"1\n", false},
		{"0", true},
		{"0\n", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "motion")
		if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}

		f := NewFileSource(path)
		absent, err := f.MotionAbsent(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("MotionAbsent(%q) failed: %v", tt.content, err)
		}
		if absent != tt.wantAbsent {
			t.Errorf("MotionAbsent with content %q = %v, want %v", tt.content, absent, tt.wantAbsent)
		}
	}
}

func TestFileSource_StaleFileReadsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motion")
	if err := os.WriteFile(path, []byte("1"), 0644); err != nil {
		t.Fatal(err)
	}

	f := NewFileSource(path)

	// A query far in the future sees the file as stale.
	absent, err := f.MotionAbsent(context.Background(), time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("MotionAbsent failed: %v", err)
	}
	if !absent {
		t.Error("stale file should read as motion absent")
	}
}
