package ports

import (
	"context"
	"errors"
	"io"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
)

// TableReader defines the secondary port that parses an export file into a raw table.
type TableReader interface {
	Read(ctx context.Context, r io.Reader) (*domain.Table, error)
}

// Download is a remote export file held in memory.
type Download struct {
	// Filename is the name used to pick a reader, e.g. "shipments.xlsx".
	Filename string
	// Body is the file content.
	Body []byte
}

// ErrDestinationNotAllowed is returned by a RemoteFetcher for URLs it refuses to contact.
var ErrDestinationNotAllowed = errors.New("remote destination not allowed")

// RemoteFetcher defines the secondary port that downloads an export by URL.
type RemoteFetcher interface {
	Fetch(ctx context.Context, url string) (*Download, error)
}
