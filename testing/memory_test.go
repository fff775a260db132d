package testing

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/cpcf/scaffold/write"
)

func TestMemoryFSServesFiles(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.WriteFile("templates/a.template.txt", []byte("A"))
	mfs.WriteFile("templates/sub/b.template.txt", []byte("B"))

	var walked []string
	err := fs.WalkDir(mfs, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			walked = append(walked, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir failed: %v", err)
	}
	if len(walked) != 2 || walked[0] != "templates/a.template.txt" || walked[1] != "templates/sub/b.template.txt" {
		t.Errorf("walked = %v", walked)
	}

	content, err := fs.ReadFile(mfs, "templates/sub/b.template.txt")
	if err != nil || string(content) != "B" {
		t.Errorf("ReadFile = %q, %v", content, err)
	}

	if _, err := fs.Stat(mfs, "templates/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryFSWriter(t *testing.T) {
	mfs := NewMemoryFS()

	if err := mfs.Write("out/x/file.txt", []byte("one"), write.WriteOptions{}); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected missing parent error without CreateDirs, got %v", err)
	}

	if err := mfs.Write("out/x/file.txt", []byte("one"), write.DefaultOptions()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	exists, err := mfs.Exists("out/x/file.txt")
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v", exists, err)
	}

	if err := mfs.Write("out/x/file.txt", []byte("two"), write.DefaultOptions()); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected fs.ErrExist, got %v", err)
	}

	content, err := mfs.ReadFile("out/x/file.txt")
	if err != nil || string(content) != "one" {
		t.Fatalf("ReadFile = %q, %v", content, err)
	}

	if err := mfs.Write("out/x/file.txt", []byte("two"), write.WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	content, _ = mfs.ReadFile("out/x/file.txt")
	if string(content) != "two" {
		t.Errorf("content after overwrite = %q", content)
	}
}

func TestMemoryFSFailOn(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.WriteFile("t/bad.template.txt", []byte("x"))
	boom := errors.New("boom")
	mfs.FailOn("t/bad.template.txt", boom)
	mfs.FailOn("out/file.txt", boom)

	if _, err := fs.ReadFile(mfs, "t/bad.template.txt"); !errors.Is(err, boom) {
		t.Errorf("expected read failure, got %v", err)
	}
	if err := mfs.Write("out/file.txt", nil, write.DefaultOptions()); !errors.Is(err, boom) {
		t.Errorf("expected write failure, got %v", err)
	}
}

func TestMemoryFSFiles(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.WriteFile("b/2.txt", nil)
	mfs.WriteFile("a/1.txt", nil)

	got := mfs.Files()
	if len(got) != 2 || got[0] != "a/1.txt" || got[1] != "b/2.txt" {
		t.Errorf("Files() = %v", got)
	}
}
