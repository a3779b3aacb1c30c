package apify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"adlibraryscraper/internal/config"
	"adlibraryscraper/internal/core/domain"
	"adlibraryscraper/internal/core/ports"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrActorRunFailed    = errors.New("actor run did not succeed")
	ErrUnexpectedStatus  = errors.New("unexpected status from Apify")
	ErrMissingDatasetRef = errors.New("actor run has no default dataset")
)

const (
	adLibraryURL = "https://www.facebook.com/ads/library/"

	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
	statusAborted   = "ABORTED"
	statusTimedOut  = "TIMED-OUT"
)

// ApifyScraper implements ports.Scraper using the Apify REST API.
type ApifyScraper struct {
	apiToken     string
	baseURL      string
	actorID      string
	pollInterval time.Duration
	client       *http.Client
	logger       logrus.FieldLogger
}

// NewApifyScraper creates a new ApifyScraper from the Apify section of cfg.
func NewApifyScraper(cfg config.Apify, logger logrus.FieldLogger) (*ApifyScraper, error) {
	if cfg.APIToken == "" {
		return nil, config.ErrMissingAPIToken
	}
	return &ApifyScraper{
		apiToken:     cfg.APIToken,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		actorID:      cfg.ActorID,
		pollInterval: cfg.PollInterval,
		// Per request only; the actor run itself is awaited without a deadline.
		client: &http.Client{Timeout: 5 * time.Minute},
		logger: logger,
	}, nil
}

type startURL struct {
	URL string `json:"url"`
}

type proxyConfiguration struct {
	UseApifyProxy bool `json:"useApifyProxy"`
}

type actorInput struct {
	StartURLs          []startURL         `json:"startUrls"`
	MaxItems           int                `json:"maxItems"`
	ProxyConfiguration proxyConfiguration `json:"proxyConfiguration"`
}

type runEnvelope struct {
	Data domain.ActorRun `json:"data"`
}

// SubmitSearch runs the ad-library actor for query and waits for it to finish.
func (s *ApifyScraper) SubmitSearch(ctx context.Context, query domain.SearchQuery) (*domain.ActorRun, error) {
	input := buildInput(query)

	run, err := s.startActorRun(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start actor run")
	}
	s.logger.WithFields(logrus.Fields{"run_id": run.ID, "actor": s.actorID}).Info("actor run started")

	run, err = s.waitForRun(ctx, run.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to wait for actor run")
	}
	if run.DatasetID == "" {
		return nil, errors.Wrapf(ErrMissingDatasetRef, "run %s", run.ID)
	}
	return run, nil
}

// FetchAds returns the dataset items of a finished run.
func (s *ApifyScraper) FetchAds(ctx context.Context, datasetID string) (*ports.ScrapeResult, error) {
	raw, err := s.getDatasetItems(ctx, datasetID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch dataset %s", datasetID)
	}

	ads, err := DecodeAds(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode dataset %s", datasetID)
	}

	return &ports.ScrapeResult{RawItems: raw, Ads: ads}, nil
}

// SearchURL is the ad-library page the actor is pointed at.
func SearchURL(query domain.SearchQuery) string {
	return adLibraryURL + "?active_status=all&ad_type=all" +
		"&country=" + url.QueryEscape(query.CountryCode) +
		"&q=" + url.QueryEscape(query.Competitor) +
		"&search_type=keyword_unordered&media_type=all"
}

func buildInput(query domain.SearchQuery) actorInput {
	return actorInput{
		StartURLs:          []startURL{{URL: SearchURL(query)}},
		MaxItems:           query.MaxItems,
		ProxyConfiguration: proxyConfiguration{UseApifyProxy: query.UseProxy},
	}
}

// actorPath turns "user/actor" into the "user~actor" form the API expects.
func actorPath(actorID string) string {
	return url.PathEscape(strings.Replace(actorID, "/", "~", 1))
}

func (s *ApifyScraper) startActorRun(ctx context.Context, input actorInput) (*domain.ActorRun, error) {
	endpoint := fmt.Sprintf("%s/acts/%s/runs", s.baseURL, actorPath(s.actorID))

	body, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "encode actor input")
	}

	req, err := s.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, unexpectedStatus(resp)
	}

	var envelope runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "decode run")
	}
	return &envelope.Data, nil
}

func (s *ApifyScraper) waitForRun(ctx context.Context, runID string) (*domain.ActorRun, error) {
	statusURL := fmt.Sprintf("%s/actor-runs/%s", s.baseURL, url.PathEscape(runID))

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.pollInterval):
		}

		run, err := s.getRun(ctx, statusURL)
		if err != nil {
			return nil, err
		}

		switch run.Status {
		case statusSucceeded:
			return run, nil
		case statusFailed, statusAborted, statusTimedOut:
			return nil, errors.Wrapf(ErrActorRunFailed, "run %s finished with status %s", runID, run.Status)
		}
		s.logger.WithFields(logrus.Fields{"run_id": runID, "status": run.Status}).Debug("actor run still in progress")
	}
}

func (s *ApifyScraper) getRun(ctx context.Context, statusURL string) (*domain.ActorRun, error) {
	req, err := s.newRequest(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var envelope runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "decode run status")
	}
	return &envelope.Data, nil
}

func (s *ApifyScraper) getDatasetItems(ctx context.Context, datasetID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/datasets/%s/items?clean=true&format=json", s.baseURL, url.PathEscape(datasetID))

	req, err := s.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	return io.ReadAll(resp.Body)
}

func (s *ApifyScraper) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	return req, nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return errors.Wrapf(ErrUnexpectedStatus, "%s %s: status %d, body: %s",
		resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
}
