package library

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to testdata/scripts.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	abs, err := filepath.Abs(filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "scripts"))
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestScan_AllFiles(t *testing.T) {
	files, err := Scan(Config{RootDir: testdataDir(t)})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	got := relPaths(files)
	want := []string{"README.md", "demo/launch.txt", "keynote.txt"}
	if len(got) != len(want) {
		t.Fatalf("Scan() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("Path %q is not absolute", f.Path)
		}
		if f.Size <= 0 {
			t.Errorf("Size for %s = %d, want > 0", f.RelPath, f.Size)
		}
		if f.ModTime.IsZero() {
			t.Errorf("ModTime for %s is zero", f.RelPath)
		}
	}
}

func TestScan_IncludeMatchesBaseName(t *testing.T) {
	files, err := Scan(Config{RootDir: testdataDir(t), Include: []string{"*.txt"}})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if got := relPaths(files); len(got) != 2 || got[0] != "demo/launch.txt" || got[1] != "keynote.txt" {
		t.Errorf("Scan(*.txt) = %v", got)
	}
}

func TestScan_DoubleStarInclude(t *testing.T) {
	files, err := Scan(Config{RootDir: testdataDir(t), Include: []string{"demo/**/*.txt"}})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "demo/launch.txt" {
		t.Errorf("Scan(demo/**/*.txt) = %v", got)
	}
}

func TestScan_Exclude(t *testing.T) {
	files, err := Scan(Config{
		RootDir: testdataDir(t),
		Include: []string{"**/*.txt"},
		Exclude: []string{"demo/**"},
	})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "keynote.txt" {
		t.Errorf("Scan() with exclude = %v", got)
	}
}

func TestScan_SkipsBinaryAndLargeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "talk.txt"), []byte("Hello there."))
	writeFile(t, filepath.Join(dir, "image.txt"), []byte{'G', 'I', 'F', 0x00, 0x01})
	big := make([]byte, 200)
	for i := range big {
		big[i] = 'A'
	}
	writeFile(t, filepath.Join(dir, "big.txt"), big)

	files, err := Scan(Config{RootDir: dir, MaxFileSize: 100})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "talk.txt" {
		t.Errorf("Scan() = %v, want [talk.txt]", got)
	}
}

func TestScan_DefaultExcludeDirs(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{".git", "node_modules", ".prompter"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
		writeFile(t, filepath.Join(dir, sub, "notes.txt"), []byte("hidden"))
	}
	writeFile(t, filepath.Join(dir, "talk.txt"), []byte("visible"))

	files, err := Scan(Config{RootDir: dir})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "talk.txt" {
		t.Errorf("Scan() = %v, want [talk.txt]", got)
	}
}

func TestRead_ParsesScript(t *testing.T) {
	text, sc, err := Read(filepath.Join(testdataDir(t), "keynote.txt"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if text == "" {
		t.Fatal("Read() returned empty text")
	}
	if len(sc) != 3 {
		t.Errorf("slides = %d, want 3", len(sc))
	}
	if sc[0].Title != "Opening" {
		t.Errorf("first title = %q, want Opening", sc[0].Title)
	}
	if n := sc.TotalLines(); n != 7 {
		t.Errorf("TotalLines() = %d, want 7", n)
	}
}

func TestRead_ByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.txt")
	writeFile(t, path, []byte("\xef\xbb\xbf## Opening\r\nGood morning.\r\n"))

	_, sc, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(sc) != 1 || sc[0].Title != "Opening" {
		t.Fatalf("slides = %+v, want one slide titled Opening", sc)
	}
	if n := sc.TotalLines(); n != 1 {
		t.Errorf("TotalLines() = %d, want 1", n)
	}
}

func TestRead_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := Read(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("Read() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.txt")
	writeFile(t, bad, []byte{0xff, 0xfe, 'h', 'i'})
	if _, _, err := Read(bad); err == nil {
		t.Error("Read() of invalid UTF-8 should fail")
	}
}

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.txt", nil) {
		t.Error("empty include list should match everything")
	}
	if MatchesExclude("anything.txt", nil) {
		t.Error("empty exclude list should match nothing")
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
