package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
)

// ReadFile reads the config file at path. Failures are loader-level errors:
// ErrCodeNotFound when the file does not exist, ErrCodeResourceExhausted when
// it is larger than maxSize (<= 0 disables the check) and ErrCodeUnavailable
// for any other read failure.
func ReadFile(ctx context.Context, path string, maxSize int) ([]byte, error) {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodeNotFound,
				"config file not found", err, map[string]any{"path": path})
		}
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeUnavailable,
			"failed to open config file", err, map[string]any{"path": path})
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close config file", slog.String("path", path), slog.String("error", cerr.Error()))
		}
	}()

	var r io.Reader = f
	if maxSize > 0 {
		r = io.LimitReader(f, int64(maxSize)+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeUnavailable,
			"failed to read config file", err, map[string]any{"path": path})
	}

	if maxSize > 0 && len(data) > maxSize {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeResourceExhausted,
			"config file exceeds maximum size",
			fmt.Errorf("more than %d bytes", maxSize),
			map[string]any{"path": path, "limit": maxSize})
	}

	slog.Debug("read config file", slog.String("path", path), slog.Int("bytes", len(data)))

	return data, nil
}

// Load reads the file at path and parses it with opts.
func Load(ctx context.Context, path string, opts ...Option) (*Store, error) {
	o := newParseOptions(opts)

	data, err := ReadFile(ctx, path, o.maxBufferSize)
	if err != nil {
		return nil, err
	}

	store, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return store, nil
}
