package telegram

import (
	"fmt"
	"os"
	"strings"
)

// MediaInput describes where the content of an outgoing file comes from:
// a public URL the Bot API fetches itself, the file_id of content already
// on Telegram's servers, a local file path, or in-memory bytes. Exactly one
// source per value; the type set is closed.
type MediaInput interface {
	// SendData returns the string placed in the request payload: the URL,
	// the file_id, or an "attach://<name>" reference to a multipart part.
	SendData() string
	// NeedsUpload reports whether the value must be carried as a part of a
	// multipart request body.
	NeedsUpload() bool

	mediaInput()
}

// InputURL references a file by a public URL; Telegram downloads it.
type InputURL struct {
	URL string
}

func (i InputURL) SendData() string { return i.URL }
func (InputURL) NeedsUpload() bool { return false }
func (InputURL) mediaInput() {}

// InputFileID references content already stored on Telegram's servers.
type InputFileID struct {
	ID string
}

func (i InputFileID) SendData() string { return i.ID }
func (InputFileID) NeedsUpload() bool { return false }
func (InputFileID) mediaInput() {}

// InputPath uploads a local file as a multipart part. AttachName is the
// part's field name and must be unique within one request; this package
// does not enforce uniqueness.
type InputPath struct {
	Path       string
	AttachName string
}

func (i InputPath) SendData() string { return "attach://" + i.AttachName }
func (InputPath) NeedsUpload() bool { return true }
func (InputPath) mediaInput() {}

// InputBytes uploads in-memory content as a multipart part. AttachName must
// be unique within one request, same as for InputPath.
type InputBytes struct {
	Data       []byte
	Filename   string
	AttachName string
}

func (i InputBytes) SendData() string { return "attach://" + i.AttachName }
func (InputBytes) NeedsUpload() bool { return true }
func (InputBytes) mediaInput() {}

// MultipartFile is one file part of a multipart request body. It is built on
// demand by UploadData and never cached. An empty MIMEType means unknown;
// the encoder falls back to application/octet-stream.
type MultipartFile struct {
	FieldName string
	Filename  string
	Content   []byte
	MIMEType  string
}

// FromString classifies a string reference: an "http://" or "https://"
// prefix makes it a URL, anything else is treated as a file_id. Only a
// leading prefix counts; no network or filesystem access happens here.
func FromString(value string) MediaInput {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return InputURL{URL: value}
	}
	return InputFileID{ID: value}
}

// FromFile references a local file, deriving a deterministic attach name
// from the path ("file_" prefix, path separators flattened to underscores).
func FromFile(path string) MediaInput {
	return InputPath{
		Path:       path,
		AttachName: "file_" + strings.ReplaceAll(path, "/", "_"),
	}
}

// FromFileWithName references a local file under a caller-chosen attach
// name. The name is not validated.
func FromFileWithName(path, attachName string) MediaInput {
	return InputPath{Path: path, AttachName: attachName}
}

// FromBytes wraps in-memory content, deriving the attach name from the
// filename with a "bytes_" prefix.
func FromBytes(data []byte, filename string) MediaInput {
	return InputBytes{
		Data:       data,
		Filename:   filename,
		AttachName: "bytes_" + filename,
	}
}

// ReadFile loads a file from disk into an InputBytes, naming it after the
// last path segment.
func ReadFile(path string) (MediaInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(data, lastSegment(path)), nil
}

// lastSegment returns the final path segment, or the literal "file" when
// the path has none (empty path, trailing slash). Callers depend on this
// never failing, so malformed paths get the fallback instead of an error.
func lastSegment(path string) string {
	segments := strings.Split(path, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "file"
	}
	return name
}

// AttachName returns the multipart field name of an input, which exists
// only for the upload variants.
func AttachName(input MediaInput) (string, bool) {
	switch v := input.(type) {
	case InputPath:
		return v.AttachName, true
	case InputBytes:
		return v.AttachName, true
	}
	return "", false
}

// UploadData materializes the multipart part for an input. URL and file_id
// inputs need no part and yield (nil, nil). Path-backed inputs read the
// whole file into memory; bytes-backed inputs never fail.
func UploadData(input MediaInput) (*MultipartFile, error) {
	switch v := input.(type) {
	case InputPath:
		data, err := os.ReadFile(v.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", v.Path, err)
		}
		filename := lastSegment(v.Path)
		mimeType, _ := DetectMIMEType(filename)
		return &MultipartFile{
			FieldName: v.AttachName,
			Filename:  filename,
			Content:   data,
			MIMEType:  mimeType,
		}, nil
	case InputBytes:
		mimeType, _ := DetectMIMEType(v.Filename)
		return &MultipartFile{
			FieldName: v.AttachName,
			Filename:  v.Filename,
			Content:   v.Data,
			MIMEType:  mimeType,
		}, nil
	}
	return nil, nil
}
