package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"adlibraryscraper/internal/adapters/apify"
	"adlibraryscraper/internal/adapters/downloader"
	"adlibraryscraper/internal/adapters/localstorage"
	"adlibraryscraper/internal/adapters/report"
	"adlibraryscraper/internal/config"
	"adlibraryscraper/internal/core/domain"
	"adlibraryscraper/internal/logging"
	"adlibraryscraper/internal/scheduler"
	"adlibraryscraper/internal/service"
)

func main() {
	flags := pflag.NewFlagSet("adlibrary-cli", pflag.ExitOnError)
	config.RegisterFlags(flags)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: adlibrary-cli [flags]")
		fmt.Fprintln(os.Stderr, "\nDownloads ad creatives for a competitor from the ad library and writes summary_report.csv.")
		fmt.Fprintln(os.Stderr, "APIFY_API_TOKEN must be set in the environment or in .env.")
		fmt.Fprintln(os.Stderr, "\nExample:")
		fmt.Fprintln(os.Stderr, "  adlibrary-cli --competitor Shopify --country US --max-ads 10")
		fmt.Fprintln(os.Stderr)
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logger := logging.New(cfg.App.LogLevel, os.Stdout)

	scraper, err := apify.NewApifyScraper(cfg.Apify, logger.WithField("component", "apify"))
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize scraper")
	}

	orchestrator := service.NewOrchestrator(
		scraper,
		downloader.NewHTTPDownloader(cfg.Download.Timeout),
		localstorage.NewLocalStorage(cfg.App.MediaDir),
		report.NewCSVWriter(),
		logger,
		service.Options{
			Workers:        cfg.Download.Workers,
			SaveRawDataset: cfg.App.SaveRawDataset,
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn("received interrupt signal, cancelling")
		cancel()
	}()

	runOnce := func(ctx context.Context) error {
		result, err := orchestrator.RunJob(ctx, cfg.Query())
		if err != nil {
			return err
		}
		printSummary(result)
		return nil
	}

	if cfg.Schedule.Cron != "" {
		runner := scheduler.NewCronRunner(cfg.Schedule.Cron, logger.WithField("component", "scheduler"))
		if err := runner.Run(ctx, runOnce); err != nil {
			logger.WithError(err).Fatal("scheduler failed")
		}
		return
	}

	if err := runOnce(ctx); err != nil {
		logger.WithError(err).Error("job failed")
		os.Exit(1)
	}
}

func printSummary(result *domain.JobResult) {
	fmt.Println("\n=== Job Summary ===")
	fmt.Printf("Job ID:       %s\n", result.Job.ID)
	fmt.Printf("Competitor:   %s (%s)\n", result.Job.Query.Competitor, result.Job.Query.CountryCode)
	if result.NoAds {
		fmt.Println("Ads:          0 (no ads found, check your competitor name or API limits)")
		return
	}
	fmt.Printf("Ads:          %d\n", result.AdCount)
	fmt.Printf("Images:       %d\n", result.ImagesSaved)
	fmt.Printf("Videos:       %d\n", result.VideosSaved)
	fmt.Printf("Files:        %s\n", result.RunPath)
	fmt.Printf("Report:       %s\n", result.ReportPath)
	fmt.Printf("Completed At: %s\n", result.CompletedAt.Format("2006-01-02 15:04:05 UTC"))
}
