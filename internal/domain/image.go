package domain

// MaxHistoryImageLen is the largest encoded image payload kept on a
// history snapshot. Larger payloads are dropped from the snapshot so
// the history document stays small.
const MaxHistoryImageLen = 500000

// ImageMeta describes an uploaded image payload when it could be
// decoded. Width/height/format stay zero-valued for undecodable data.
type ImageMeta struct {
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Format  string `json:"format,omitempty"`
	ByteLen int    `json:"byte_len"`
}
