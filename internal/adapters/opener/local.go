package opener

import (
	"context"
	"io"
	"os"

	"dkv2_import/internal/ports"
)

type LocalOpener struct{}

func NewLocalOpener() *LocalOpener { return &LocalOpener{} }

func (l *LocalOpener) Open(ctx context.Context, filePath string) (io.ReadCloser, ports.Meta, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, ports.Meta{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ports.Meta{}, err
	}
	return f, ports.Meta{Source: "file", Size: st.Size()}, nil
}
