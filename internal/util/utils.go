package util

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// Input is an opened line source for the command line front end
type Input struct {
	io.Reader
	closers []func() error
}

func (in *Input) Close() error {
	var firstErr error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenInput opens path for reading, "-" meaning stdin. When progress is set
// and the size of the input is known, reads are reported on a progress bar
// written to stderr.
func OpenInput(path string, progress bool) (*Input, error) {
	if path == "-" {
		return &Input{Reader: os.Stdin}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	in := &Input{Reader: f, closers: []func() error{f.Close}}

	if !progress {
		return in, nil
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return in, nil
	}

	bar := pb.Full.Start64(info.Size())
	in.Reader = bar.NewProxyReader(f)
	in.closers = append(in.closers, func() error {
		bar.Finish()
		return nil
	})
	return in, nil
}

func Ptr[T any](v T) *T { return &v }
