package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := PlaceholderID(i)
		assert.False(t, seen[id], "duplicate placeholder %s", id)
		seen[id] = true
		assert.Equal(t, id, PlaceholderID(i))
	}
	assert.Equal(t, "unknown_3", PlaceholderID(3))
}

func TestDownloadOutcome(t *testing.T) {
	var zero DownloadOutcome
	assert.False(t, zero.Ok())
	assert.Equal(t, Unavailable, zero.String())

	saved := Saved("media/x/images/1.jpg")
	assert.True(t, saved.Ok())
	assert.Equal(t, "media/x/images/1.jpg", saved.String())
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, "images", MediaImage.Dir())
	assert.Equal(t, ".jpg", MediaImage.Ext())
	assert.Equal(t, "videos", MediaVideo.Dir())
	assert.Equal(t, ".mp4", MediaVideo.Ext())
}

func TestNewReportRow(t *testing.T) {
	ad := AdRecord{
		ID:          "42",
		Text:        "Sell more",
		Advertiser:  "Shopify",
		StartDate:   "2024-01-02",
		SnapshotURL: "https://example.com/ad/42",
	}
	row := NewReportRow(ad, Saved("a.jpg"), DownloadOutcome{})

	assert.Equal(t, "42", row.AdID)
	assert.Equal(t, "Sell more", row.Text)
	assert.Equal(t, "Shopify", row.Advertiser)
	assert.Equal(t, "2024-01-02", row.StartDate)
	assert.Equal(t, "a.jpg", row.Image.String())
	assert.Equal(t, Unavailable, row.Video.String())
	assert.Equal(t, "https://example.com/ad/42", row.OriginalURL)
}
