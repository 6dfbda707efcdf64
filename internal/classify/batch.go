package classify

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ClassifyAll classifies songs and returns results in input order. With
// workers <= 1 the songs are processed sequentially on the calling goroutine.
func (c *Classifier) ClassifyAll(ctx context.Context, songs []Song, workers int) ([]Result, error) {
	results := make([]Result, len(songs))
	if len(songs) == 0 {
		return results, nil
	}

	if workers <= 1 {
		for i, song := range songs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = c.Classify(song)
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, song := range songs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = c.Classify(song)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
