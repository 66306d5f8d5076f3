package tui

import (
	"math/rand"
)

// position is a media placement offset from the viewport origin, in cells.
type position struct {
	Top  int
	Left int
}

// scatterField hands out random placements for the "scattered photograph"
// layout. Positions are cached per item per epoch so a re-render without a
// real epoch change (resize, remount, explicit re-roll) never jitters.
type scatterField struct {
	rng       *rand.Rand
	insetFrac float64
	epoch     int
	cache     map[string]scatterEntry
}

type scatterEntry struct {
	epoch int
	pos   position
}

func newScatterField(seed int64, insetPct float64) *scatterField {
	return &scatterField{
		rng:       rand.New(rand.NewSource(seed)),
		insetFrac: insetPct / 100,
		cache:     map[string]scatterEntry{},
	}
}

// Reroll starts a new epoch: the next PositionFor per item draws fresh.
func (f *scatterField) Reroll() { f.epoch++ }

func (f *scatterField) Epoch() int { return f.epoch }

// PositionFor returns the stable position of itemID for the current epoch,
// drawing one if the item has none yet. heightFrac is the media height as a
// fraction of the viewport height; aspect is width/height.
func (f *scatterField) PositionFor(itemID string, viewportW, viewportH int, heightFrac, aspect float64) position {
	if e, ok := f.cache[itemID]; ok && e.epoch == f.epoch {
		return e.pos
	}
	pos := computePosition(f.rng, viewportW, viewportH, heightFrac, aspect, f.insetFrac)
	f.cache[itemID] = scatterEntry{epoch: f.epoch, pos: pos}
	return pos
}

// computePosition samples a placement keeping the media's full bounding box
// inside the safe zone (an insetFrac-per-side inset of the viewport). When
// the safe zone is smaller than the media box the available range clamps to
// zero, pinning the box to the safe zone origin.
func computePosition(rng *rand.Rand, viewportW, viewportH int, heightFrac, aspect, insetFrac float64) position {
	mediaH := float64(viewportH) * heightFrac
	mediaW := mediaH * aspect

	insetX := float64(viewportW) * insetFrac
	insetY := float64(viewportH) * insetFrac

	rangeW := float64(viewportW) - 2*insetX - mediaW
	if rangeW < 0 {
		rangeW = 0
	}
	rangeH := float64(viewportH) - 2*insetY - mediaH
	if rangeH < 0 {
		rangeH = 0
	}

	return position{
		Top:  int(insetY + rng.Float64()*rangeH),
		Left: int(insetX + rng.Float64()*rangeW),
	}
}

// mediaBox returns the cell dimensions used for a scattered media frame.
func mediaBox(viewportH int, heightFrac, aspect float64) (w, h int) {
	fh := float64(viewportH) * heightFrac
	if fh < 3 {
		fh = 3
	}
	// Terminal cells are roughly twice as tall as wide.
	fw := fh * aspect * 2
	return int(fw), int(fh)
}
