package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	"golang.org/x/sync/errgroup"

	cerrors "github.com/mcdexio/blockdeque/common/errors"
	"github.com/mcdexio/blockdeque/common/logging"
	"github.com/mcdexio/blockdeque/deque"
)

// Config holds the soak flags.
type Config struct {
	Ops    int   `arg:"--ops,env:SOAK_OPS" default:"200000" help:"operations to run"`
	Cells  int   `arg:"--cells,env:SOAK_CELLS" default:"16" help:"cells per deque block"`
	Seed   int64 `arg:"--seed,env:SOAK_SEED" default:"1" help:"rng seed"`
	Report int   `arg:"--report,env:SOAK_REPORT" default:"5000" help:"verify and log every n ops"`
}

func main() {
	name := "soak"
	// Initialize logger.
	logging.Initialize(name)
	defer logging.Finalize()

	logger := logging.NewLoggerTag(name)

	// Setup panic handler.
	cerrors.Initialize(logger)
	defer cerrors.Catch()

	args := new(Config)
	arg.MustParse(args)
	logger.Info("%s started.", name)
	logger.Info("using config %+v", *args)

	backgroundCtx, stop := context.WithCancel(context.Background())
	go WaitExitSignal(stop, logger)
	group, ctx := errgroup.WithContext(backgroundCtx)

	group.Go(func() error {
		return runSoak(ctx, logger, args)
	})

	if err := group.Wait(); err != nil {
		logger.Critical("soak failed: %s", err)
	}
}

// runSoak drives a deque and a slice model through the same random op
// sequence and stops at the first divergence.
func runSoak(ctx context.Context, logger logging.Logger, cfg *Config) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	d := deque.New(deque.WithCellsPerBlock[int64](cfg.Cells))
	model := make([]int64, 0, 1024)
	var next int64

	for op := 0; op < cfg.Ops; op++ {
		if op&0x3ff == 0 {
			select {
			case <-ctx.Done():
				logger.Info("stopped early after %d ops", op)
				return nil
			default:
			}
		}

		// A full wipe, rarely, to cover the clear-then-reuse path.
		if rng.Intn(10000) == 0 {
			d.Clear()
			model = model[:0]
		}

		switch rng.Intn(8) {
		case 0, 1:
			next++
			d.PushBack(next)
			model = append(model, next)
		case 2, 3:
			next++
			d.PushFront(next)
			model = append([]int64{next}, model...)
		case 4:
			if len(model) == 0 {
				continue
			}
			got, want := d.PopBack(), model[len(model)-1]
			model = model[:len(model)-1]
			if got != want {
				return fmt.Errorf("op %d: PopBack got %d, want %d", op, got, want)
			}
		case 5:
			if len(model) == 0 {
				continue
			}
			got, want := d.PopFront(), model[0]
			model = model[1:]
			if got != want {
				return fmt.Errorf("op %d: PopFront got %d, want %d", op, got, want)
			}
		case 6:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			if got := d.At(i); got != model[i] {
				return fmt.Errorf("op %d: At(%d) got %d, want %d", op, i, got, model[i])
			}
		case 7:
			if len(model) == 0 {
				continue
			}
			next++
			i := rng.Intn(len(model))
			d.Set(i, next)
			model[i] = next
		}

		if op%cfg.Report == cfg.Report-1 {
			if err := verify(op, d, model); err != nil {
				return err
			}
			logger.Info("op %d: size %d verified", op, d.Len())
		}
	}

	if err := verify(cfg.Ops, d, model); err != nil {
		return err
	}
	logger.Info("soak finished: %d ops, final size %d", cfg.Ops, d.Len())
	return nil
}

// verify walks the deque, its clone and the model in lockstep.
func verify(op int, d *deque.Deque[int64], model []int64) error {
	if d.Len() != len(model) {
		return fmt.Errorf("op %d: size %d, want %d", op, d.Len(), len(model))
	}
	clone := d.Clone()
	i := 0
	for it := d.Begin(); it.Valid(); it.Next() {
		if got := it.Value(); got != model[i] {
			return fmt.Errorf("op %d: index %d got %d, want %d", op, i, got, model[i])
		}
		if got := clone.At(i); got != model[i] {
			return fmt.Errorf("op %d: clone index %d got %d, want %d", op, i, got, model[i])
		}
		i++
	}
	if i != len(model) {
		return fmt.Errorf("op %d: iterator stopped at %d, want %d", op, i, len(model))
	}
	return nil
}

func WaitExitSignal(ctxStop context.CancelFunc, logger logging.Logger) {
	var exitSignal = make(chan os.Signal, 1)
	signal.Notify(exitSignal, syscall.SIGTERM)
	signal.Notify(exitSignal, syscall.SIGINT)

	sig := <-exitSignal
	logger.Info("caught sig: %+v, Stopping...\n", sig)
	ctxStop()
}
