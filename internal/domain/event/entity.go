package event

import (
	"hash/fnv"
	"time"
)

// Palette for calendar rendering. A color is chosen once at creation and
// stays stable for the life of the record.
var Palette = []string{
	"#7C3AED", // violet
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#06B6D4", // cyan
}

// Event is one service order on the unit calendar.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	OrderNumber string    `json:"order_number"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ColorFor deterministically maps a record id into the palette, so the same
// record always renders the same color across re-creations and tests.
func ColorFor(id string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return Palette[h.Sum32()%uint32(len(Palette))]
}
