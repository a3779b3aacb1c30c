package ports

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"adlibraryscraper/internal/core/domain"
)

// ScrapeResult holds the dataset of a finished run.
// RawItems keeps the exact API response, Ads the normalised records in dataset order.
type ScrapeResult struct {
	RawItems []byte
	Ads      []domain.AdRecord
}

// Scraper defines the contract for the remote ad-library actor.
type Scraper interface {
	// SubmitSearch starts the actor for the query and blocks until the run finishes.
	SubmitSearch(ctx context.Context, query domain.SearchQuery) (*domain.ActorRun, error)

	// FetchAds retrieves the items of the run's dataset.
	FetchAds(ctx context.Context, datasetID string) (*ScrapeResult, error)
}

// Downloader defines the contract for downloading media assets.
type Downloader interface {
	// Download fetches the asset at the given URL.
	// Returns a ReadCloser that the caller must close.
	Download(ctx context.Context, assetURL string) (io.ReadCloser, error)
}

// Storage defines the contract for persisting run artifacts.
type Storage interface {
	// InitRun creates the run directory structure.
	InitRun(ctx context.Context, runKey string) error

	// SaveAsset streams a media file into the kind's sub-directory and returns its path.
	SaveAsset(ctx context.Context, runKey string, kind domain.MediaKind, name string, reader io.Reader) (string, error)

	// SaveFile writes a file at the root of the run directory and returns its path.
	SaveFile(ctx context.Context, runKey string, name string, data []byte) (string, error)

	// GetRunPath returns the filesystem path for a given run key.
	GetRunPath(runKey string) string
}

// ReportWriter serialises report rows.
type ReportWriter interface {
	WriteReport(w io.Writer, rows []domain.ReportRow) error
}
