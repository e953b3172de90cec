package dataset

import (
	"context"

	"github.com/listenupapp/filmography/internal/watcher"
)

// Follow invalidates the cache for every event on events until ctx is done
// or the channel closes. The next Get then reloads the file.
func (c *Cache) Follow(ctx context.Context, events <-chan watcher.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			c.logger.Info("dataset file changed",
				"path", event.Path,
				"change", event.Type.String(),
			)
			if event.Type == watcher.EventRemoved {
				// Keep serving the current copy until a new file appears.
				continue
			}
			c.Invalidate()
		}
	}
}
