package intake

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Candidate is one file offered for upload.
type Candidate interface {
	Name() string
	ContentType() string
	Size() int64
	Open(ctx context.Context) (io.ReadCloser, error)
}

type fileCandidate struct {
	path        string
	contentType string
	size        int64
}

// FileCandidate describes a local file. The MIME type is derived from the
// extension; files without a known extension are sniffed.
func FileCandidate(path string) (Candidate, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadFailed, path)
	}

	ct := typeByExtension(path)
	if ct == "" {
		ct, err = sniffFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
	}

	return &fileCandidate{path: path, contentType: ct, size: fi.Size()}, nil
}

func (f *fileCandidate) Name() string        { return filepath.Base(f.path) }
func (f *fileCandidate) ContentType() string { return f.contentType }
func (f *fileCandidate) Size() int64         { return f.size }

func (f *fileCandidate) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.path)
}

// typeByExtension returns the bare media type for name's extension, or "".
func typeByExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return mediaType(mime.TypeByExtension(strings.ToLower(ext)))
}

// mediaType strips parameters such as "; charset=utf-8".
func mediaType(ct string) string {
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.TrimSpace(strings.ToLower(ct))
	}
	return mt
}

func sniffFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return mediaType(http.DetectContentType(head[:n])), nil
}
