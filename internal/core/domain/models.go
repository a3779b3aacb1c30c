package domain

import (
	"fmt"
	"time"
)

// Unavailable is written in place of a local path when an asset was not saved.
const Unavailable = "N/A"

// SearchQuery describes one ad-library search for a competitor.
type SearchQuery struct {
	Competitor  string `json:"competitor"`
	CountryCode string `json:"country_code"` // two-letter, upper case
	MaxItems    int    `json:"max_items"`
	UseProxy    bool   `json:"use_proxy"`
}

// ActorRun is the descriptor of a finished remote actor run.
type ActorRun struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	DatasetID string `json:"defaultDatasetId"`
}

// AdRecord is one scraped ad with every optional field already defaulted.
type AdRecord struct {
	ID          string
	Text        string
	Advertiser  string
	StartDate   string
	ImageURL    string // first image only, "" when absent
	VideoURL    string // first video only, "" when absent
	SnapshotURL string
	ImageCount  int
	VideoCount  int
}

// PlaceholderID returns the identifier used for a record without one.
func PlaceholderID(index int) string {
	return fmt.Sprintf("unknown_%d", index)
}

// MediaKind selects where an asset is stored and which extension it gets.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Dir is the run sub-directory for the kind.
func (k MediaKind) Dir() string {
	if k == MediaVideo {
		return "videos"
	}
	return "images"
}

// Ext is the file extension, dot included.
func (k MediaKind) Ext() string {
	if k == MediaVideo {
		return ".mp4"
	}
	return ".jpg"
}

// DownloadOutcome is either a local path or unavailable. The zero value is unavailable.
type DownloadOutcome struct {
	Path string
}

// Saved builds a successful outcome.
func Saved(path string) DownloadOutcome {
	return DownloadOutcome{Path: path}
}

func (o DownloadOutcome) Ok() bool {
	return o.Path != ""
}

// String returns the path or the Unavailable marker.
func (o DownloadOutcome) String() string {
	if o.Path == "" {
		return Unavailable
	}
	return o.Path
}

// ReportRow is one line of the summary report.
type ReportRow struct {
	AdID        string
	Text        string
	Advertiser  string
	StartDate   string
	Image       DownloadOutcome
	Video       DownloadOutcome
	OriginalURL string
}

// NewReportRow builds the row for an ad and its two download outcomes.
func NewReportRow(ad AdRecord, image, video DownloadOutcome) ReportRow {
	return ReportRow{
		AdID:        ad.ID,
		Text:        ad.Text,
		Advertiser:  ad.Advertiser,
		StartDate:   ad.StartDate,
		Image:       image,
		Video:       video,
		OriginalURL: ad.SnapshotURL,
	}
}

// Job represents a single scraping run.
type Job struct {
	ID        string      `json:"job_id"`
	Query     SearchQuery `json:"query"`
	CreatedAt time.Time   `json:"created_at"`
}

// JobResult holds the outcome of a completed job.
type JobResult struct {
	Job          Job
	Run          *ActorRun
	RunPath      string
	ReportPath   string
	AdCount      int
	ImagesSaved  int
	VideosSaved  int
	NoAds        bool
	Success      bool
	ErrorMessage string
	CompletedAt  time.Time
}
