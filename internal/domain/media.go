package domain

// MediaKind tells an image apart from a video clip.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// MediaItem is one gallery entry. Immutable once constructed.
type MediaItem struct {
	URL      string    `json:"url"`
	Category string    `json:"category"`
	Kind     MediaKind `json:"kind"`
}
