package weapons

import (
	"fmt"

	"hunterdb/core/dataset"
	"hunterdb/core/loader"
)

// SharpnessReader converts raw kire table rows into weapon sharpness
// profiles, applying the handicraft modifier of each weapon.
type SharpnessReader struct {
	rows map[int]loader.SharpnessRecord
}

// NewSharpnessReader wraps a loaded kire table.
func NewSharpnessReader(rows map[int]loader.SharpnessRecord) *SharpnessReader {
	return &SharpnessReader{rows: rows}
}

// For returns the sharpness profile of a melee weapon record.
func (r *SharpnessReader) For(record loader.WeaponRecord) (*dataset.Sharpness, error) {
	row, ok := r.rows[record.KireID]
	if !ok {
		return nil, fmt.Errorf("weapons: no sharpness row %d", record.KireID)
	}

	modifier := -250 + record.Handicraft*50
	maxed := modifier == 0
	if !maxed {
		// Stored profiles describe the handicraft+5 bar.
		modifier += 50
	}

	// The table lists cumulative end positions; convert to pool sizes.
	s := &dataset.Sharpness{
		Maxed:  maxed,
		Red:    row.Red,
		Orange: row.Orange - row.Red,
		Yellow: row.Yellow - row.Orange,
		Green:  row.Green - row.Yellow,
		Blue:   row.Blue - row.Green,
		White:  row.White - row.Blue,
		Purple: row.Purple - row.White,
	}
	s.Reduce(-modifier)
	return s, nil
}
