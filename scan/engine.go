package scan

import (
	"context"
	"errors"

	lf "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rulescan/rules"
	"rulescan/sink"
)

var (
	// ErrNoServiceName rejects a run with an empty search target
	// before any line is scanned or written.
	ErrNoServiceName = errors.New("no service name provided")

	// ErrNoWorkers rejects a run with a non-positive worker count.
	ErrNoWorkers = errors.New("worker count must be positive")
)

// Run partitions the loaded rule file across workers goroutines, scans
// every chunk for the target service name and forwards matches to out.
// It returns the total number of matching lines.
//
// A failed worker is logged and dropped from the total; it never stops
// the sibling workers. Cancelling ctx stops dispatch of further chunks,
// in-flight chunks may still finish.
func Run(ctx context.Context, log *lf.Entry, file *rules.File, target string, workers int, out sink.Sink) (int, error) {
	if target == "" {
		return 0, ErrNoServiceName
	}
	if workers < 1 {
		return 0, ErrNoWorkers
	}

	log.Info("Starting search for service '", target, "' in file '", file.Path, "' with ", workers, " workers...")

	chunks := Split(file.Lines, workers)
	scanner := NewScanner(target)

	// One goroutine per non-empty chunk. Chunk count equals the worker
	// count, so this is also the concurrency bound.
	var g errgroup.Group
	results := make(chan int, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Lines) == 0 {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		log.Debug("Dispatching chunk at line ", chunk.Start, " with ", len(chunk.Lines), " lines")
		chunk := chunk
		g.Go(func() error {
			matched, err := scanner.Scan(ctx, chunk, out)
			if err != nil {
				if cerr := ctx.Err(); cerr != nil {
					return cerr
				}
				log.Error("Chunk at line ", chunk.Start, " failed: ", err)
				return nil
			}
			results <- matched
			return nil
		})
	}

	err := g.Wait()
	close(results)

	total := 0
	for matched := range results {
		total += matched
	}

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return total, err
	}

	log.Info("Total matches ", total, " for the service name ", target)
	return total, nil
}
