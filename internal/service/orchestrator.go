package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"adlibraryscraper/internal/core/domain"
	"adlibraryscraper/internal/core/ports"
)

const (
	reportFile     = "summary_report.csv"
	rawDatasetFile = "dataset_raw.json"
)

// Options tunes an Orchestrator. The zero value downloads sequentially.
type Options struct {
	// Workers is the number of parallel asset downloads; values below 2 keep
	// downloads strictly sequential in record order.
	Workers        int
	SaveRawDataset bool
	// Now defaults to time.Now; the run folder is dated with it.
	Now func() time.Time
}

// Orchestrator coordinates the scrape, the media downloads and the report.
type Orchestrator struct {
	scraper    ports.Scraper
	downloader ports.Downloader
	storage    ports.Storage
	reports    ports.ReportWriter
	logger     logrus.FieldLogger
	opts       Options
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	scraper ports.Scraper,
	downloader ports.Downloader,
	storage ports.Storage,
	reports ports.ReportWriter,
	logger logrus.FieldLogger,
	opts Options,
) *Orchestrator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Orchestrator{
		scraper:    scraper,
		downloader: downloader,
		storage:    storage,
		reports:    reports,
		logger:     logger,
		opts:       opts,
	}
}

// RunKey names the run folder: <competitor>_<YYYY-MM-DD>.
func RunKey(competitor string, day time.Time) string {
	return fmt.Sprintf("%s_%s", competitor, day.Format("2006-01-02"))
}

// RunJob executes a complete scrape for query. Any returned error is fatal for
// the run; failures of single downloads are logged and reported as unavailable.
// An empty dataset is not an error: the result has NoAds set and nothing is written.
func (o *Orchestrator) RunJob(ctx context.Context, query domain.SearchQuery) (*domain.JobResult, error) {
	job := domain.Job{
		ID:        uuid.New().String(),
		Query:     query,
		CreatedAt: o.opts.Now().UTC(),
	}
	result := &domain.JobResult{Job: job}
	log := o.logger.WithField("job_id", job.ID)

	log.WithFields(logrus.Fields{
		"competitor": query.Competitor,
		"country":    query.CountryCode,
		"max_ads":    query.MaxItems,
	}).Info("starting scrape")

	run, err := o.scraper.SubmitSearch(ctx, query)
	if err != nil {
		return o.fail(log, result, err, "failed to run scraper")
	}
	result.Run = run
	log.WithField("dataset_id", run.DatasetID).Info("scrape complete, fetching results")

	scraped, err := o.scraper.FetchAds(ctx, run.DatasetID)
	if err != nil {
		return o.fail(log, result, err, "failed to fetch results")
	}

	if len(scraped.Ads) == 0 {
		log.Warn("no ads found, check the competitor name or the API limits")
		result.NoAds = true
		result.Success = true
		result.CompletedAt = o.opts.Now().UTC()
		return result, nil
	}
	result.AdCount = len(scraped.Ads)

	runKey := RunKey(query.Competitor, o.opts.Now())
	if err := o.storage.InitRun(ctx, runKey); err != nil {
		return o.fail(log, result, err, "failed to init run folder")
	}
	result.RunPath = o.storage.GetRunPath(runKey)

	if o.opts.SaveRawDataset {
		if _, err := o.storage.SaveFile(ctx, runKey, rawDatasetFile, scraped.RawItems); err != nil {
			return o.fail(log, result, err, "failed to save raw dataset")
		}
	}

	log.WithField("ads", len(scraped.Ads)).Info("downloading media")
	rows, err := o.buildRows(ctx, log, runKey, scraped.Ads)
	if err != nil {
		return o.fail(log, result, err, "media download interrupted")
	}

	for _, row := range rows {
		if row.Image.Ok() {
			result.ImagesSaved++
		}
		if row.Video.Ok() {
			result.VideosSaved++
		}
	}

	var buf bytes.Buffer
	if err := o.reports.WriteReport(&buf, rows); err != nil {
		return o.fail(log, result, err, "failed to render report")
	}
	reportPath, err := o.storage.SaveFile(ctx, runKey, reportFile, buf.Bytes())
	if err != nil {
		return o.fail(log, result, err, "failed to save report")
	}
	result.ReportPath = reportPath

	result.Success = true
	result.CompletedAt = o.opts.Now().UTC()

	log.WithField("path", result.RunPath).Info("files saved")
	log.WithField("path", result.ReportPath).Info("summary CSV created")
	return result, nil
}

func (o *Orchestrator) fail(log logrus.FieldLogger, result *domain.JobResult, err error, msg string) (*domain.JobResult, error) {
	err = errors.Wrap(err, msg)
	result.ErrorMessage = err.Error()
	log.WithError(err).Error("job failed")
	return result, err
}

// buildRows returns one row per ad in input order. Only context cancellation
// stops it early.
func (o *Orchestrator) buildRows(ctx context.Context, log logrus.FieldLogger, runKey string, ads []domain.AdRecord) ([]domain.ReportRow, error) {
	rows := make([]domain.ReportRow, len(ads))

	if o.opts.Workers < 2 {
		for i, ad := range ads {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rows[i] = o.processAd(ctx, log, runKey, ad)
		}
		return rows, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Workers)
	for i, ad := range ads {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = o.processAd(gctx, log, runKey, ad)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (o *Orchestrator) processAd(ctx context.Context, log logrus.FieldLogger, runKey string, ad domain.AdRecord) domain.ReportRow {
	image := o.fetchAsset(ctx, log, runKey, domain.MediaImage, ad.ID, ad.ImageURL)
	video := o.fetchAsset(ctx, log, runKey, domain.MediaVideo, ad.ID, ad.VideoURL)
	if ad.ImageCount > 1 || ad.VideoCount > 1 {
		log.WithFields(logrus.Fields{
			"ad_id":  ad.ID,
			"images": ad.ImageCount,
			"videos": ad.VideoCount,
		}).Debug("only the first image and video are downloaded")
	}
	return domain.NewReportRow(ad, image, video)
}

// fetchAsset never fails the run: every error ends as an unavailable outcome.
func (o *Orchestrator) fetchAsset(ctx context.Context, log logrus.FieldLogger, runKey string, kind domain.MediaKind, adID, assetURL string) domain.DownloadOutcome {
	if assetURL == "" {
		return domain.DownloadOutcome{}
	}
	entry := log.WithFields(logrus.Fields{"ad_id": adID, "kind": kind, "url": assetURL})

	body, err := o.downloader.Download(ctx, assetURL)
	if err != nil {
		entry.WithError(err).Warn("failed to download asset")
		return domain.DownloadOutcome{}
	}
	defer body.Close()

	path, err := o.storage.SaveAsset(ctx, runKey, kind, adID+kind.Ext(), body)
	if err != nil {
		entry.WithError(err).Warn("failed to save asset")
		return domain.DownloadOutcome{}
	}
	entry.WithField("path", path).Debug("asset saved")
	return domain.Saved(path)
}
