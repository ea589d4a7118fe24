package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateRelPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "Cargo.toml", false},
		{"nested file", "src/main.rs", false},
		{"dot dir", ".cargo/config.toml", false},
		{"cleaned inner traversal", "src/../build.rs", false},
		{"empty", "", true},
		{"current dir", ".", true},
		{"absolute", "/etc/passwd", true},
		{"parent", "..", true},
		{"escape", "../outside.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestRealFS_Exists(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	t.Run("existing file", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "exists.txt")
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		exists, err := fs.Exists(testFile)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing file")
		}
	})

	t.Run("non-existing file", func(t *testing.T) {
		exists, err := fs.Exists(filepath.Join(tmpDir, "does-not-exist.txt"))
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if exists {
			t.Error("Exists should return false for non-existing file")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		exists, err := fs.Exists(tmpDir)
		if err != nil {
			t.Errorf("Exists returned error: %v", err)
		}
		if !exists {
			t.Error("Exists should return true for existing directory")
		}
	})
}

func TestRealFS_WriteFile(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()

	t.Run("creates parents", func(t *testing.T) {
		path := filepath.Join(tmpDir, ".cargo", "config.toml")
		if err := fs.WriteFile(path, []byte("[build]\n"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if string(got) != "[build]\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("overwrites", func(t *testing.T) {
		path := filepath.Join(tmpDir, "build.rs")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatalf("failed to create initial file: %v", err)
		}
		if err := fs.WriteFile(path, []byte("new"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".embassy-init-tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestRealFS_AppendFile(t *testing.T) {
	fs := NewRealFS()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Cargo.toml")

	if err := fs.AppendFile(path, []byte("x")); err == nil {
		t.Error("AppendFile should fail when the file does not exist")
	}

	if err := os.WriteFile(path, []byte("[package]\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := fs.AppendFile(path, []byte("\n[features]\n")); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}
	got, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "[package]\n\n[features]\n" {
		t.Errorf("content = %q", got)
	}
}

func TestMemFS(t *testing.T) {
	fs := NewMemFS()

	if err := fs.WriteFile("/proj/src/main.rs", []byte("fn main() {}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	for _, dir := range []string{"/proj", "/proj/src"} {
		info, err := fs.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%q) = %v, %v; want directory", dir, info, err)
		}
	}

	if err := fs.AppendFile("/proj/src/main.rs", []byte("\n")); err != nil {
		t.Fatalf("AppendFile failed: %v", err)
	}
	got, _ := fs.ReadFile("/proj/src/main.rs")
	if string(got) != "fn main() {}\n" {
		t.Errorf("content = %q", got)
	}

	if err := fs.AppendFile("/proj/missing", nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("AppendFile(missing) error = %v, want ErrNotExist", err)
	}

	boom := errors.New("disk full")
	fs.FailWrite["/proj/build.rs"] = boom
	if err := fs.WriteFile("/proj/build.rs", nil, 0644); !errors.Is(err, boom) {
		t.Errorf("WriteFile error = %v, want injected failure", err)
	}
	if ok, _ := fs.Exists("/proj/build.rs"); ok {
		t.Error("failed write must not create the file")
	}

	if files := fs.Files(); len(files) != 1 || files[0] != "/proj/src/main.rs" {
		t.Errorf("Files() = %v", files)
	}
}

// Generated files live in directories no operation creates (.cargo, .vscode,
// src); both implementations create them on write.
func TestFS_WriteCreatesParents(t *testing.T) {
	tmpDir := t.TempDir()
	impls := map[string]struct {
		fs   FS
		root string
	}{
		"real": {NewRealFS(), tmpDir},
		"mem":  {NewMemFS(), "/proj"},
	}

	for name, impl := range impls {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(impl.root, ".vscode", "launch.json")
			if err := impl.fs.WriteFile(path, []byte("{}\n"), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			info, err := impl.fs.Stat(filepath.Dir(path))
			if err != nil || !info.IsDir() {
				t.Errorf("Stat(.vscode) = %v, %v; want directory", info, err)
			}
		})
	}
}
