package report

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"adlibraryscraper/internal/core/domain"
)

// Columns is the fixed header of the summary report.
var Columns = []string{"Ad ID", "Text", "Advertiser", "Start Date", "Local Image", "Local Video", "Original URL"}

// csvRow field order is the column order.
type csvRow struct {
	AdID        string `csv:"Ad ID"`
	Text        string `csv:"Text"`
	Advertiser  string `csv:"Advertiser"`
	StartDate   string `csv:"Start Date"`
	LocalImage  string `csv:"Local Image"`
	LocalVideo  string `csv:"Local Video"`
	OriginalURL string `csv:"Original URL"`
}

// CSVWriter implements ports.ReportWriter.
type CSVWriter struct{}

func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// WriteReport writes the header and one line per row, in row order.
func (CSVWriter) WriteReport(w io.Writer, rows []domain.ReportRow) error {
	out := make([]*csvRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &csvRow{
			AdID:        row.AdID,
			Text:        row.Text,
			Advertiser:  row.Advertiser,
			StartDate:   row.StartDate,
			LocalImage:  row.Image.String(),
			LocalVideo:  row.Video.String(),
			OriginalURL: row.OriginalURL,
		})
	}

	if len(out) == 0 {
		return errors.Wrap(writeHeader(w), "write report header")
	}
	return errors.Wrap(gocsv.Marshal(out, w), "write report")
}

func writeHeader(w io.Writer) error {
	csvw := gocsv.DefaultCSVWriter(w)
	if err := csvw.Write(Columns); err != nil {
		return err
	}
	csvw.Flush()
	return csvw.Error()
}
