package scanner

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cw "github.com/dhamidi/beanscan/internal/classwriter"
)

func classBytes(name string) []byte {
	return (&cw.Class{Access: cw.AccPublic, Name: name, Super: "java/lang/Object"}).Bytes()
}

func writeZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	pkg := filepath.Join(dir, "com", "example")
	if err := os.MkdirAll(pkg, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "Pet.class"), classBytes("com/example/Pet"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "Broken.class"), []byte("not a class"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pkg, "README.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(nil)
	if err := s.Scan(dir); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if s.Index().Lookup("com.example.Pet") == nil {
		t.Error("com.example.Pet not indexed")
	}
	if s.Files() != 1 {
		t.Errorf("Files() = %d, want 1", s.Files())
	}
	if len(s.Errors()) != 1 {
		t.Errorf("Errors() = %v, want one parse failure", s.Errors())
	}
}

func TestScanNestedJar(t *testing.T) {
	inner := writeZip(t, map[string][]byte{
		"com/lib/Dep.class": classBytes("com/lib/Dep"),
	})
	outer := writeZip(t, map[string][]byte{
		"BOOT-INF/classes/com/app/Main.class": classBytes("com/app/Main"),
		"BOOT-INF/lib/dep.jar":                inner,
		"META-INF/MANIFEST.MF":                []byte("Manifest-Version: 1.0\n"),
		"module-info.class":                   []byte("skipped"),
	})
	path := filepath.Join(t.TempDir(), "app.jar")
	if err := os.WriteFile(path, outer, 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadIndex(path)
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	for _, name := range []string{"com.app.Main", "com.lib.Dep"} {
		if idx.Lookup(name) == nil {
			t.Errorf("%s not indexed", name)
		}
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
}

func TestLoadIndexMissingPath(t *testing.T) {
	if _, err := LoadIndex(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadIndex() of a missing path succeeded")
	}
}
