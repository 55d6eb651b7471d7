// Package batch runs the evaluation pipeline over JSONL files: a reader that
// streams evaluation requests line by line, a worker pool that evaluates
// them, and a writer that emits records or a summary.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/casewise/compliance-agent/internal/models"
)

// InputRecord is one parsed line of the input file. Error is set when the
// line is not valid JSON; the line number is 1-based and counts blank lines.
type InputRecord struct {
	Request    models.EvaluationRequest
	LineNumber int
	Error      error
}

type Reader struct {
	input  io.Reader
	logger *zerolog.Logger
}

func NewReader(input io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		input:  input,
		logger: logger,
	}
}

// ReadAll streams records from the input until EOF or context cancellation.
// Blank lines are skipped; malformed lines are emitted with Error set so the
// caller decides whether to continue.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	out := make(chan InputRecord)

	go func() {
		defer close(out)

		scanner := bufio.NewScanner(r.input)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}
			if err := json.Unmarshal([]byte(line), &record.Request); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
				r.logger.Warn().Err(err).Int("line", lineNumber).Msg("skipping malformed input line")
			}

			select {
			case out <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed reading input")
		}
	}()

	return out
}
