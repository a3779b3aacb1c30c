package apify

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"adlibraryscraper/internal/core/domain"
)

// flexString accepts a JSON string, number or bool. null and absent decode to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*f = flexString(data)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		// objects and arrays carry nothing we can put in a cell
		*f = ""
		return nil
	}
	*f = flexString(data)
	return nil
}

type rawImage struct {
	OriginalImageURL flexString `json:"originalImageUrl"`
}

type rawVideo struct {
	VideoURL flexString `json:"videoUrl"`
}

type rawAd struct {
	ID            flexString `json:"id"`
	AdArchiveID   flexString `json:"adArchiveID"`
	AdBody        flexString `json:"adBody"`
	PageName      flexString `json:"pageName"`
	StartDate     flexString `json:"startDate"`
	Images        []rawImage `json:"images"`
	Videos        []rawVideo `json:"videos"`
	AdSnapshotURL flexString `json:"adSnapshotUrl"`
}

// DecodeAds parses a dataset items response into records, in dataset order.
// Every optional field is defaulted here so callers never check for absence.
func DecodeAds(raw []byte) ([]domain.AdRecord, error) {
	var items []rawAd
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "dataset items are not a JSON array of objects")
	}

	ads := make([]domain.AdRecord, 0, len(items))
	for i, item := range items {
		ads = append(ads, item.toDomain(i))
	}
	return ads, nil
}

func (r rawAd) toDomain(index int) domain.AdRecord {
	id := string(r.ID)
	if id == "" {
		id = string(r.AdArchiveID)
	}
	if id == "" {
		id = domain.PlaceholderID(index)
	}

	ad := domain.AdRecord{
		ID:          id,
		Text:        string(r.AdBody),
		Advertiser:  string(r.PageName),
		StartDate:   string(r.StartDate),
		SnapshotURL: string(r.AdSnapshotURL),
		ImageCount:  len(r.Images),
		VideoCount:  len(r.Videos),
	}
	// Only the first entry is considered; a first entry without a URL means no download.
	if len(r.Images) > 0 {
		ad.ImageURL = string(r.Images[0].OriginalImageURL)
	}
	if len(r.Videos) > 0 {
		ad.VideoURL = string(r.Videos[0].VideoURL)
	}
	return ad
}
