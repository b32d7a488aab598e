package fsread

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ignore")
	want := []byte("*.log\n!keep.log\n")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatal(err)
	}

	data, release, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	defer release()
	if !bytes.Equal(data, want) {
		t.Errorf("ReadFile(%q) = %q, want %q", path, data, want)
	}
}

func TestReadFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	data, release, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	defer release()
	if len(data) != 0 {
		t.Errorf("ReadFile(empty) = %q, want empty", data)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileReusesPooledBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	data1, release1, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data1) != "hello" {
		t.Fatalf("got %q", data1)
	}
	release1()

	data2, release2, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	defer release2()
	if string(data2) != "hello" {
		t.Fatalf("got %q", data2)
	}
}
