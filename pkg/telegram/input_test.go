package telegram

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFromStringClassification(t *testing.T) {
	urls := []string{
		"http://example.com/a.png",
		"https://example.com/a.png",
		"https://",
	}
	for _, s := range urls {
		input := FromString(s)
		u, ok := input.(InputURL)
		if !ok {
			t.Errorf("FromString(%q) = %T, want InputURL", s, input)
			continue
		}
		if u.URL != s {
			t.Errorf("FromString(%q) kept URL %q", s, u.URL)
		}
	}

	ids := []string{
		"",
		"BQACAgIAAxkBAAIB",
		"not http://example.com",
		"HTTP://example.com", // prefix match is case-sensitive
		"ftp://example.com",
	}
	for _, s := range ids {
		input := FromString(s)
		id, ok := input.(InputFileID)
		if !ok {
			t.Errorf("FromString(%q) = %T, want InputFileID", s, input)
			continue
		}
		if id.ID != s {
			t.Errorf("FromString(%q) kept ID %q", s, id.ID)
		}
	}
}

func TestFromFileAttachName(t *testing.T) {
	input := FromFile("photos/2024/cat.png")
	p, ok := input.(InputPath)
	if !ok {
		t.Fatalf("FromFile = %T, want InputPath", input)
	}
	if p.AttachName != "file_photos_2024_cat.png" {
		t.Errorf("attach name = %q", p.AttachName)
	}
	if got := input.SendData(); got != "attach://file_photos_2024_cat.png" {
		t.Errorf("SendData = %q", got)
	}
}

func TestFromFileWithName(t *testing.T) {
	input := FromFileWithName("photos/cat.png", "cover")
	p, ok := input.(InputPath)
	if !ok {
		t.Fatalf("FromFileWithName = %T, want InputPath", input)
	}
	if p.AttachName != "cover" {
		t.Errorf("attach name = %q, want cover", p.AttachName)
	}
	if got := input.SendData(); got != "attach://cover" {
		t.Errorf("SendData = %q", got)
	}
}

func TestFromBytes(t *testing.T) {
	input := FromBytes([]byte("hello"), "greeting.txt")
	b, ok := input.(InputBytes)
	if !ok {
		t.Fatalf("FromBytes = %T, want InputBytes", input)
	}
	if b.AttachName != "bytes_greeting.txt" {
		t.Errorf("attach name = %q", b.AttachName)
	}
	if b.Filename != "greeting.txt" {
		t.Errorf("filename = %q", b.Filename)
	}
	if input.SendData() != "attach://bytes_greeting.txt" {
		t.Errorf("SendData = %q", input.SendData())
	}
}

func TestNeedsUpload(t *testing.T) {
	cases := []struct {
		input MediaInput
		want  bool
	}{
		{InputURL{URL: "https://example.com/a.png"}, false},
		{InputFileID{ID: "abc"}, false},
		{InputPath{Path: "a.png", AttachName: "file_a.png"}, true},
		{InputBytes{Data: []byte("x"), Filename: "a.png", AttachName: "bytes_a.png"}, true},
	}
	for _, tc := range cases {
		if got := tc.input.NeedsUpload(); got != tc.want {
			t.Errorf("%T.NeedsUpload() = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestAttachName(t *testing.T) {
	if name, ok := AttachName(InputPath{Path: "a", AttachName: "file_a"}); !ok || name != "file_a" {
		t.Errorf("AttachName(InputPath) = %q, %v", name, ok)
	}
	if name, ok := AttachName(InputBytes{AttachName: "bytes_a"}); !ok || name != "bytes_a" {
		t.Errorf("AttachName(InputBytes) = %q, %v", name, ok)
	}
	if _, ok := AttachName(InputURL{URL: "https://example.com"}); ok {
		t.Error("AttachName(InputURL) should be absent")
	}
	if _, ok := AttachName(InputFileID{ID: "abc"}); ok {
		t.Error("AttachName(InputFileID) should be absent")
	}
}

func TestUploadDataReferenceInputs(t *testing.T) {
	for _, input := range []MediaInput{
		InputURL{URL: "https://example.com/x"},
		InputFileID{ID: "y"},
	} {
		file, err := UploadData(input)
		if err != nil {
			t.Errorf("UploadData(%T) error: %v", input, err)
		}
		if file != nil {
			t.Errorf("UploadData(%T) = %+v, want nil", input, file)
		}
	}
}

func TestUploadDataFromBytes(t *testing.T) {
	data := []byte("%PDF-1.4 content")
	file, err := UploadData(FromBytes(data, "report.pdf"))
	if err != nil {
		t.Fatalf("UploadData error: %v", err)
	}
	if file.FieldName != "bytes_report.pdf" {
		t.Errorf("field name = %q", file.FieldName)
	}
	if file.Filename != "report.pdf" {
		t.Errorf("filename = %q", file.Filename)
	}
	if !bytes.Equal(file.Content, data) {
		t.Errorf("content = %q", file.Content)
	}
	if file.MIMEType != "application/pdf" {
		t.Errorf("mime = %q", file.MIMEType)
	}
}

func TestUploadDataFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.png")
	data := []byte{0x89, 'P', 'N', 'G'}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	file, err := UploadData(FromFile(path))
	if err != nil {
		t.Fatalf("UploadData error: %v", err)
	}
	if file.Filename != "cat.png" {
		t.Errorf("filename = %q", file.Filename)
	}
	if !bytes.Equal(file.Content, data) {
		t.Errorf("content = %v", file.Content)
	}
	if file.MIMEType != "image/png" {
		t.Errorf("mime = %q", file.MIMEType)
	}
}

func TestUploadDataMissingFile(t *testing.T) {
	_, err := UploadData(FromFile(filepath.Join(t.TempDir(), "missing.png")))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	input, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	b, ok := input.(InputBytes)
	if !ok {
		t.Fatalf("ReadFile = %T, want InputBytes", input)
	}
	if b.Filename != "notes.txt" {
		t.Errorf("filename = %q", b.Filename)
	}
	if string(b.Data) != "hello" {
		t.Errorf("data = %q", b.Data)
	}
	if b.AttachName != "bytes_notes.txt" {
		t.Errorf("attach name = %q", b.AttachName)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// Malformed paths (trailing slash, empty) fall back to the literal "file"
// instead of failing; downstream callers rely on the non-failing behavior.
func TestLastSegmentFallback(t *testing.T) {
	cases := map[string]string{
		"a/b/c.txt": "c.txt",
		"c.txt":     "c.txt",
		"a/b/":      "file",
		"":          "file",
		"/":         "file",
	}
	for path, want := range cases {
		if got := lastSegment(path); got != want {
			t.Errorf("lastSegment(%q) = %q, want %q", path, got, want)
		}
	}
}
