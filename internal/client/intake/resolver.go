package intake

import (
	"context"

	"github.com/dmitrijs2005/faceforward/internal/logging"
)

// Resolver turns command-line arguments into candidates. Arguments of the
// form s3://bucket/key are read from S3, anything else from disk.
type Resolver struct {
	newS3 func(ctx context.Context) (S3API, error)
	s3    S3API
	log   logging.Logger
}

// NewResolver returns a Resolver that creates its S3 client on first use.
func NewResolver(newS3 func(ctx context.Context) (S3API, error), log logging.Logger) *Resolver {
	return &Resolver{newS3: newS3, log: log}
}

// Resolve skips arguments that cannot be opened, logging each one. The error
// of the last skipped argument is returned only when nothing resolved.
func (r *Resolver) Resolve(ctx context.Context, args []string) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(args))
	var lastErr error
	for _, arg := range args {
		c, err := r.resolveOne(ctx, arg)
		if err != nil {
			r.log.Warn(ctx, "file rejected", "name", arg, "error", err)
			lastErr = err
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return candidates, nil
}

func (r *Resolver) resolveOne(ctx context.Context, arg string) (Candidate, error) {
	bucket, key, ok := ParseS3URI(arg)
	if !ok {
		return FileCandidate(arg)
	}

	if r.s3 == nil {
		api, err := r.newS3(ctx)
		if err != nil {
			return nil, err
		}
		r.s3 = api
	}
	return S3Candidate(ctx, r.s3, bucket, key)
}
