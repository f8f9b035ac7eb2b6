package tui

// URLQueue collects tracking URLs handed out by the search panel during an
// Update so the model can open them from a command instead of inline.
type URLQueue struct {
	urls []string
}

func (q *URLQueue) OpenExternal(url string) {
	q.urls = append(q.urls, url)
}

// Drain returns the queued URLs and empties the queue.
func (q *URLQueue) Drain() []string {
	if q == nil || len(q.urls) == 0 {
		return nil
	}
	out := q.urls
	q.urls = nil
	return out
}
