// Package verification verifies that the segmentation result does not depend
// on the scheduling of the tracer workers.
package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snesgodisasm/internal/options"
	"github.com/retroenv/snesgodisasm/internal/program"
)

// ErrMismatch is returned when the reference run produced a different result.
var ErrMismatch = errors.New("result differs from single worker reference")

// Runner runs the segmentation with the given tracer options.
type Runner func(ctx context.Context, tracerOpts options.Tracer) (*program.Result, error)

// Verify runs the segmentation again with a single worker and compares the
// reference with the result. Truncated results are not compared as the
// budget can be exhausted at different nodes.
func Verify(ctx context.Context, logger *log.Logger, run Runner, tracerOpts options.Tracer,
	result *program.Result) error {

	if result.Report.Truncated {
		logger.Warn("Skipping verification of truncated result",
			log.String("reason", result.Report.TruncationReason))
		return nil
	}

	referenceOpts := tracerOpts
	referenceOpts.Workers = 1
	reference, err := run(ctx, referenceOpts)
	if err != nil {
		return fmt.Errorf("running reference segmentation: %w", err)
	}

	if diff := cmp.Diff(reference, result); diff != "" {
		logger.Error("Result differs from reference", log.String("diff", diff))
		return fmt.Errorf("%w:\n%s", ErrMismatch, diff)
	}

	logger.Info("Verification successful", log.Int("workers", tracerOpts.Workers))
	return nil
}
