package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mcdexio/blockdeque/channel"
	cerrors "github.com/mcdexio/blockdeque/common/errors"
	"github.com/mcdexio/blockdeque/common/logging"
	"github.com/mcdexio/blockdeque/window"
)

// Config holds the service flags.
type Config struct {
	WindowSize  int           `arg:"--window,env:WINDOW_SIZE" default:"16" help:"samples per rolling window"`
	Count       int           `arg:"--count,env:SAMPLE_COUNT" default:"1000" help:"samples to produce, 0 for unbounded"`
	Seed        int64         `arg:"--seed,env:SAMPLE_SEED" default:"1" help:"rng seed of the price walk"`
	Interval    time.Duration `arg:"--interval,env:SAMPLE_INTERVAL" default:"10ms" help:"delay between samples"`
	Start       string        `arg:"--start,env:SAMPLE_START" default:"100" help:"starting price of the walk"`
	ReportEvery int           `arg:"--report-every,env:REPORT_EVERY" default:"100" help:"log stats every n samples"`
}

func main() {
	name := "window"
	// Initialize logger.
	logging.Initialize(name)
	defer logging.Finalize()

	logger := logging.NewLoggerTag(name)

	// Setup panic handler.
	cerrors.Initialize(logger)
	defer cerrors.Catch()

	args := new(Config)
	arg.MustParse(args)
	logger.Info("%s service started.", name)
	logger.Info("using config %+v", *args)

	start, err := window.ParseSample(args.Start)
	if err != nil {
		logger.Critical("bad starting price %q: %s", args.Start, err)
	}

	backgroundCtx, stop := context.WithCancel(context.Background())
	go WaitExitSignal(stop, logger)
	group, ctx := errgroup.WithContext(backgroundCtx)

	samples := channel.NewUnlimited[decimal.Decimal]()

	group.Go(func() error {
		return producePrices(ctx, samples, start, args)
	})
	group.Go(func() error {
		return reportStats(ctx, logger, samples, args)
	})

	if err := group.Wait(); err != nil {
		logger.Critical("service stopped: %s", err)
	}
}

// producePrices walks a random price and feeds it into out, closing it
// once Count samples were produced.
func producePrices(ctx context.Context, out *channel.Unlimited[decimal.Decimal],
	start decimal.Decimal, cfg *Config) error {
	defer out.Close()
	rng := rand.New(rand.NewSource(cfg.Seed))
	price := start
	for produced := 0; cfg.Count == 0 || produced < cfg.Count; produced++ {
		// Steps are cents in [-1.00, +1.00].
		price = price.Add(decimal.New(int64(rng.Intn(201)-100), -2))
		select {
		case out.In() <- price:
		case <-ctx.Done():
			return nil
		}
		select {
		case <-time.After(cfg.Interval):
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// reportStats drains the sample channel into a rolling window and logs
// stats every ReportEvery samples.
func reportStats(ctx context.Context, logger logging.Logger,
	samples *channel.Unlimited[decimal.Decimal], cfg *Config) error {
	stats := window.NewStats(cfg.WindowSize)
	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-samples.Done():
			// Push whatever was still buffered when the producer closed.
			for _, v := range samples.Dump() {
				stats.Push(v)
				seen++
			}
			report(logger, stats, seen)
			return nil
		case v := <-samples.Out():
			stats.Push(v)
			seen++
			if seen%cfg.ReportEvery == 0 {
				report(logger, stats, seen)
			}
		}
	}
}

func report(logger logging.Logger, stats *window.Stats, seen int) {
	if stats.Count() == 0 {
		logger.Info("no samples seen")
		return
	}
	logger.Info("samples=%d window=%d min=%s max=%s mean=%s",
		seen, stats.Count(), stats.Min(), stats.Max(), stats.Mean())
}

func WaitExitSignal(ctxStop context.CancelFunc, logger logging.Logger) {
	var exitSignal = make(chan os.Signal, 1)
	signal.Notify(exitSignal, syscall.SIGTERM)
	signal.Notify(exitSignal, syscall.SIGINT)

	sig := <-exitSignal
	logger.Info("caught sig: %+v, Stopping...\n", sig)
	ctxStop()
}
