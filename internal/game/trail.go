package game

// trailCell is one bitmap cell; set marks ownership.
type trailCell struct {
	colour Colour
	set    bool
}

// TrailBitmap is the authoritative occupancy grid, one cell per pixel.
// Cells only ever go from empty to owned within a round.
type TrailBitmap struct {
	width, height int
	cells         []trailCell
	count         int
}

func NewTrailBitmap(width, height int) *TrailBitmap {
	return &TrailBitmap{
		width:  width,
		height: height,
		cells:  make([]trailCell, width*height),
	}
}

func (b *TrailBitmap) Width() int  { return b.width }
func (b *TrailBitmap) Height() int { return b.height }

// Count returns the number of owned cells.
func (b *TrailBitmap) Count() int { return b.count }

func (b *TrailBitmap) idx(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

// Reset empties every cell.
func (b *TrailBitmap) Reset() {
	clear(b.cells)
	b.count = 0
}

// SetIfEmpty claims the cell for c unless it is already owned or out of
// range. It reports whether the cell changed.
func (b *TrailBitmap) SetIfEmpty(x, y int, c Colour) bool {
	i, ok := b.idx(x, y)
	if !ok || b.cells[i].set {
		return false
	}
	b.cells[i] = trailCell{colour: c, set: true}
	b.count++
	return true
}

// Get returns the owner of a cell.
func (b *TrailBitmap) Get(x, y int) (Colour, bool) {
	i, ok := b.idx(x, y)
	if !ok {
		return Colour{}, false
	}
	c := b.cells[i]
	return c.colour, c.set
}

// Occupied reports whether any colour owns the cell. Ownership never
// matters for collisions: every trail is lethal, including one's own.
func (b *TrailBitmap) Occupied(x, y int) bool {
	_, set := b.Get(x, y)
	return set
}

// QueuedPixel is a trail pixel waiting to become collidable.
type QueuedPixel struct {
	Pixel  Pixel
	Colour Colour
	Frame  uint64
}

// TrailQueue delays trail pixels by a fixed number of frames before they
// reach the bitmap. Entries must be enqueued in non-decreasing frame order.
type TrailQueue struct {
	delay   uint64
	entries []QueuedPixel
	head    int
}

func NewTrailQueue(delay uint64) *TrailQueue {
	return &TrailQueue{delay: delay}
}

func (q *TrailQueue) Delay() uint64 { return q.delay }
func (q *TrailQueue) Len() int      { return len(q.entries) - q.head }

// Front returns the oldest entry.
func (q *TrailQueue) Front() (QueuedPixel, bool) {
	if q.Len() == 0 {
		return QueuedPixel{}, false
	}
	return q.entries[q.head], true
}

func (q *TrailQueue) Enqueue(p Pixel, c Colour, frame uint64) {
	q.entries = append(q.entries, QueuedPixel{Pixel: p, Colour: c, Frame: frame})
}

// Promote moves every entry with frame+delay <= current into bm, oldest
// first, and returns how many moved. Scanning stops at the first entry that
// is too young since everything behind it is younger still.
func (q *TrailQueue) Promote(current uint64, bm *TrailBitmap) int {
	n := 0
	for q.head < len(q.entries) {
		e := q.entries[q.head]
		if e.Frame+q.delay > current {
			break
		}
		bm.SetIfEmpty(e.Pixel.X, e.Pixel.Y, e.Colour)
		q.head++
		n++
	}
	if q.head == len(q.entries) {
		q.entries = q.entries[:0]
		q.head = 0
	} else if q.head > len(q.entries)/2 {
		// Reclaim the drained prefix once it dominates the backing array.
		live := copy(q.entries, q.entries[q.head:])
		q.entries = q.entries[:live]
		q.head = 0
	}
	return n
}

// Reset drops every pending entry.
func (q *TrailQueue) Reset() {
	q.entries = q.entries[:0]
	q.head = 0
}
