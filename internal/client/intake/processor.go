package intake

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/faceforward/internal/logging"
)

type Processor struct {
	log logging.Logger
}

func NewProcessor(log logging.Logger) *Processor {
	return &Processor{log: log}
}

// Process validates every candidate, then normalizes the first accepted one.
// When nothing is accepted the error of the last rejected candidate is
// returned.
func (p *Processor) Process(ctx context.Context, candidates []Candidate) (*Image, error) {
	if len(candidates) == 0 {
		return nil, ErrNoFiles
	}

	var (
		accepted Candidate
		lastErr  error
	)
	for _, c := range candidates {
		if err := Validate(c); err != nil {
			p.log.Warn(ctx, "file rejected", "name", c.Name(), "type", c.ContentType(), "size", c.Size(), "error", err)
			lastErr = err
			continue
		}
		if accepted == nil {
			accepted = c
		}
	}
	if accepted == nil {
		return nil, lastErr
	}

	data, err := readAll(ctx, accepted)
	if err != nil {
		return nil, err
	}

	img, err := Normalize(bytes.NewReader(data), accepted.Name())
	if err != nil {
		return nil, err
	}

	p.log.Info(ctx, "image normalized", "source", accepted.Name(), "name", img.Name, "bytes", len(img.Data))
	return img, nil
}

// readAll reads at most MaxFileSize bytes; a candidate whose stream turns out
// bigger than it declared is rejected as too large.
func readAll(ctx context.Context, c Candidate) ([]byte, error) {
	rc, err := c.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
