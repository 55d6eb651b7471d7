package batch

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/executor"
	"github.com/casewise/compliance-agent/internal/models"
)

// Result pairs an evaluated record with the input line it came from.
type Result struct {
	Record     models.EvaluationRecord
	LineNumber int
	Error      error
}

type Processor struct {
	executor *executor.Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(exec *executor.Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor: exec,
		workers:  workers,
		logger:   logger,
	}
}

// Process evaluates records concurrently with a fixed worker pool. The
// pipeline itself is pure, so workers share nothing and need no locking.
func (p *Processor) Process(ctx context.Context, records []InputRecord) []Result {
	jobs := make(chan InputRecord)
	results := make(chan Result, len(records))

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				results <- p.evaluate(ctx, record)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			select {
			case jobs <- record:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]Result, 0, len(records))
	for result := range results {
		out = append(out, result)
	}
	return out
}

func (p *Processor) evaluate(ctx context.Context, record InputRecord) Result {
	if record.Error != nil {
		return Result{LineNumber: record.LineNumber, Error: record.Error}
	}

	evaluated, err := p.executor.Execute(ctx, record.Request)
	if err != nil {
		p.logger.Error().Err(err).Int("line", record.LineNumber).Msg("evaluation failed")
		return Result{LineNumber: record.LineNumber, Error: err}
	}

	return Result{Record: evaluated, LineNumber: record.LineNumber}
}
