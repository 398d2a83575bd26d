package export

import (
	"context"
	"log/slog"
)

// Summary reports what one export run produced.
type Summary struct {
	Entries    int
	AudioItems int
	Files      int
	Written    []string
}

// Run collects the dataset and writes it into dir.
func (s *Service) Run(ctx context.Context, opts Options, dir string) (*Summary, error) {
	s.log.InfoContext(ctx, "export started",
		slog.String("bucket", s.bucket),
		slog.String("prefix", opts.Prefix),
		slog.Bool("signed", opts.Signed),
	)

	ds, err := s.Collect(ctx, opts)
	if err != nil {
		return nil, err
	}

	written, err := WriteFiles(ds, dir)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "export done", slog.String("dir", dir), slog.Int("files", len(written)))

	return &Summary{
		Entries:    len(ds.Entries),
		AudioItems: len(ds.AudioItems),
		Files:      len(ds.Files),
		Written:    written,
	}, nil
}
