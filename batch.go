package scenerender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrBatchFailed is returned by Batch when at least one item failed.
var ErrBatchFailed = errors.New("scenerender: batch had failures")

// BatchItem is one conversion of a Batch.
type BatchItem struct {
	// Input is the scene file to read. It is ignored when Data is set.
	Input string
	Data  []byte
	// Output is the file to write; "-" is not accepted here.
	Output  string
	Options RenderOptions
}

// BatchResult is the outcome of one item.
type BatchResult struct {
	Item BatchItem
	Err  error
}

// Batch converts items one after another. A failing item is recorded in
// its result and does not stop the remaining items. The error wraps
// ErrBatchFailed when any item failed, or is the context error when ctx
// ended the batch early; items not attempted carry that error too.
func (r *Renderer) Batch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	log := r.logger()
	results := make([]BatchResult, len(items))
	failed := 0
	for i, item := range items {
		results[i].Item = item
		if err := ctx.Err(); err != nil {
			for j := i; j < len(items); j++ {
				results[j] = BatchResult{Item: items[j], Err: err}
			}
			return results, err
		}
		if err := r.convert(ctx, item); err != nil {
			results[i].Err = err
			failed++
			log.Warn("batch item failed", slog.String("input", item.Input), slog.Any("error", err))
			continue
		}
		log.Debug("batch item done", slog.String("input", item.Input), slog.String("output", item.Output))
	}
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(items))
	}
	return results, nil
}

func (r *Renderer) convert(ctx context.Context, item BatchItem) error {
	data := item.Data
	if data == nil {
		b, err := os.ReadFile(item.Input)
		if err != nil {
			return fmt.Errorf("scenerender: read %s: %w", item.Input, err)
		}
		data = b
	}
	return r.ExportToFile(ctx, item.Output, data, item.Options)
}
