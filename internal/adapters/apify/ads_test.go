package apify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlibraryscraper/internal/core/domain"
)

func TestDecodeAds(t *testing.T) {
	raw := []byte(`[
	  {
	    "id": "111",
	    "adBody": "Start your business",
	    "pageName": "Shopify",
	    "startDate": 1700000000,
	    "images": [{"originalImageUrl": "https://cdn/1.jpg"}, {"originalImageUrl": "https://cdn/2.jpg"}],
	    "videos": [{"videoUrl": "https://cdn/1.mp4"}],
	    "adSnapshotUrl": "https://www.facebook.com/ads/library/?id=111"
	  },
	  {
	    "adArchiveID": 222,
	    "images": [{"resizedImageUrl": "https://cdn/r.jpg"}, {"originalImageUrl": "https://cdn/3.jpg"}]
	  },
	  {
	    "id": null,
	    "pageName": null,
	    "videos": []
	  },
	  {}
	]`)

	ads, err := DecodeAds(raw)
	require.NoError(t, err)
	require.Len(t, ads, 4)

	assert.Equal(t, domain.AdRecord{
		ID:          "111",
		Text:        "Start your business",
		Advertiser:  "Shopify",
		StartDate:   "1700000000",
		ImageURL:    "https://cdn/1.jpg",
		VideoURL:    "https://cdn/1.mp4",
		SnapshotURL: "https://www.facebook.com/ads/library/?id=111",
		ImageCount:  2,
		VideoCount:  1,
	}, ads[0])

	// archive id fallback; a first image without a URL means no image
	assert.Equal(t, "222", ads[1].ID)
	assert.Equal(t, "", ads[1].ImageURL)
	assert.Equal(t, 2, ads[1].ImageCount)

	assert.Equal(t, "unknown_2", ads[2].ID)
	assert.Equal(t, "", ads[2].Advertiser)
	assert.Equal(t, "", ads[2].VideoURL)

	assert.Equal(t, "unknown_3", ads[3].ID)
	assert.Equal(t, "", ads[3].Text)
}

func TestDecodeAdsEmpty(t *testing.T) {
	ads, err := DecodeAds([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestDecodeAdsNotArray(t *testing.T) {
	_, err := DecodeAds([]byte(`{"error": "nope"}`))
	assert.Error(t, err)
}

func TestFlexStringIgnoresObjects(t *testing.T) {
	ads, err := DecodeAds([]byte(`[{"id": "1", "startDate": {"seconds": 5}, "adBody": true}]`))
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "", ads[0].StartDate)
	assert.Equal(t, "true", ads[0].Text)
}
