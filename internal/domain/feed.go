package domain

// Status is the fetch-cycle state shared by the feed and detail pipelines.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// FeedState is the full observable state of one feed. Items keep arrival
// order within a page; earlier pages always precede later ones.
type FeedState struct {
	Items        []MediaItem `json:"items"`
	Category     string      `json:"category"`
	Kind         MediaKind   `json:"kind"`
	Page         int         `json:"page"`
	Status       Status      `json:"status"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

// Clone returns a snapshot with its own items slice.
func (s FeedState) Clone() FeedState {
	out := s
	if s.Items != nil {
		out.Items = make([]MediaItem, len(s.Items))
		copy(out.Items, s.Items)
	}
	return out
}
