package armor

import (
	"fmt"
	"sort"

	"hunterdb/core/datamap"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"

	"go.uber.org/zap"
)

// Piece is one armor piece that passed the inclusion filter.
type Piece struct {
	Record loader.ArmorRecord
	Name   datamap.Localized
	Recipe loader.RecipeRecord
	Part   gamecfg.ArmorPart
}

// Rank returns the rank of the piece. Variant 0 is low rank; every other
// variant (alpha, beta, gamma) is high rank.
// TODO: master-rank variants are not modeled yet; they will land here as a
// third tier once the variant values are known.
func (p *Piece) Rank() string {
	if p.Record.Variant == 0 {
		return gamecfg.RankLow
	}
	return gamecfg.RankHigh
}

// Set is an assembled armor set.
type Set struct {
	SetID  int
	Name   datamap.Localized
	Pieces []*Piece

	// Order is the minimum sort order among members.
	Order int

	byPart map[gamecfg.ArmorPart]*Piece
}

// Rank returns the rank shared by the set's members.
func (s *Set) Rank() string {
	return s.Pieces[0].Rank()
}

// Part returns the member piece for a part, or nil.
func (s *Set) Part(part gamecfg.ArmorPart) *Piece {
	return s.byPart[part]
}

// AssembleSeries filters, groups, and orders the flat armor records into
// sets. A record is kept only if its resolved name is non-empty, it belongs
// to a set, its type field designates ordinary armor, its gender and sort
// order are nonzero, and a crafting recipe exists for its id.
func AssembleSeries(cfg gamecfg.Config, src *loader.ArmorSource, log *zap.Logger) ([]*Set, error) {
	bySetID := make(map[int]*Set)
	var setOrder []int

	for _, record := range src.Records {
		name := src.Names[record.NameIndex]

		if name.En() == "" {
			continue
		}
		if record.SetID == 0 { // charms share the table but carry no set
			continue
		}
		if record.Type != 0 { // type 0 is regular armor
			continue
		}
		if record.Gender == 0 || record.Order == 0 {
			continue
		}
		recipe, ok := src.Craft[record.ID]
		if !ok {
			continue
		}

		if record.EquipSlot < 0 || record.EquipSlot >= len(cfg.EquipSlotParts) {
			return nil, fmt.Errorf("armor: record %d has unexpected equip slot %d",
				record.ID, record.EquipSlot)
		}

		piece := &Piece{
			Record: record,
			Name:   name,
			Recipe: recipe,
			Part:   cfg.EquipSlotParts[record.EquipSlot],
		}

		set, ok := bySetID[record.SetID]
		if !ok {
			set = &Set{
				SetID:  record.SetID,
				Name:   src.SetNames[record.SetID],
				byPart: make(map[gamecfg.ArmorPart]*Piece),
			}
			bySetID[record.SetID] = set
			setOrder = append(setOrder, record.SetID)
		}
		set.Pieces = append(set.Pieces, piece)
		set.byPart[piece.Part] = piece
	}

	sets := make([]*Set, 0, len(setOrder))
	for _, setID := range setOrder {
		set := bySetID[setID]
		set.Order = set.Pieces[0].Record.Order
		for _, piece := range set.Pieces {
			if piece.Record.Order < set.Order {
				set.Order = piece.Record.Order
			}
		}
		sets = append(sets, set)
	}

	sort.SliceStable(sets, func(i, j int) bool {
		if sets[i].Rank() != sets[j].Rank() {
			return gamecfg.RankOrder(sets[i].Rank()) < gamecfg.RankOrder(sets[j].Rank())
		}
		return sets[i].Order < sets[j].Order
	})

	if log != nil {
		log.Debug("assembled armor series", zap.Int("sets", len(sets)))
	}
	return sets, nil
}
