package riichi

import (
	"slices"
	"sort"
)

// DecompGroup 和牌拆解中的一个面子或将
type DecompGroup struct {
	Kind   EGroupType
	Tile   Tile // 顺子为最小牌
	Melded bool // 来自副露
}

func (g DecompGroup) Concealed() bool {
	return !g.Melded || g.Kind == GroupTypeAnKon
}

func (g DecompGroup) IsTriplet() bool {
	switch g.Kind {
	case GroupTypePon, GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return true
	}
	return false
}

func (g DecompGroup) IsKon() bool {
	switch g.Kind {
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return true
	}
	return false
}

func (g DecompGroup) Tiles() []Tile {
	switch g.Kind {
	case GroupTypeChow:
		c, p := g.Tile.Info()
		return []Tile{MakeTile(c, p), MakeTile(c, p+1), MakeTile(c, p+2)}
	case GroupTypePon:
		return makeTiles(g.Tile, 3)
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return makeTiles(g.Tile, 4)
	case GroupTypePair:
		return makeTiles(g.Tile, 2)
	default:
		return nil
	}
}

// Decomposition 一种完整的和牌拆解
type Decomposition struct {
	Style  EHandStyle
	Groups []DecompGroup
}

func (d *Decomposition) Pair() (Tile, bool) {
	for _, g := range d.Groups {
		if g.Kind == GroupTypePair {
			return g.Tile, true
		}
	}
	return TileNull, false
}

// AllTiles 拆解覆盖的全部牌(归一后)
func (d *Decomposition) AllTiles() []Tile {
	var res []Tile
	for _, g := range d.Groups {
		res = append(res, g.Tiles()...)
	}
	return res
}

// Decompose 枚举全部和牌拆解, tiles为含和牌的立牌, 无解返回nil
func Decompose(tiles []Tile, melds []Meld) []*Decomposition {
	if len(tiles)%3 != 2 || len(tiles)+3*len(melds) != 14 {
		return nil
	}

	counts := tileCounts(tiles)
	base := make([]DecompGroup, 0, len(melds))
	for _, m := range melds {
		base = append(base, DecompGroup{Kind: m.Kind, Tile: m.Tile.Normal(), Melded: true})
	}

	var res []*Decomposition
	s := &decompSearch{base: base, dead: make(map[string]struct{})}
	s.run(&counts, 0, false, nil, &res)

	if len(melds) == 0 {
		if d := decomposeSevenPairs(&counts); d != nil {
			res = append(res, d)
		}
		if d := decomposeThirteenOrphans(&counts); d != nil {
			res = append(res, d)
		}
	}
	return res
}

type decompSearch struct {
	base []DecompGroup
	dead map[string]struct{}
}

func (s *decompSearch) run(counts *[TileKindCount]int, idx int, hasPair bool, cur []DecompGroup, out *[]*Decomposition) {
	for idx < TileKindCount && counts[idx] == 0 {
		idx++
	}
	if idx == TileKindCount {
		if hasPair {
			*out = append(*out, s.build(cur))
		}
		return
	}

	key := countsKey(counts, hasPair)
	if _, ok := s.dead[key]; ok {
		return
	}
	found := len(*out)

	c := counts[idx]
	tile := TileFromIndex(idx)
	runOK := tile.IsSuit() && tile.Point() <= 6

	// 枚举该种牌的全部消耗方式: 至多一将+一刻, 其余组成顺子
	for usePair := 0; usePair <= 1; usePair++ {
		if usePair == 1 && (hasPair || c < 2) {
			continue
		}
		for useTrip := 0; useTrip <= 1; useTrip++ {
			runs := c - usePair*2 - useTrip*3
			if runs < 0 {
				continue
			}
			if runs > 0 && (!runOK || counts[idx+1] < runs || counts[idx+2] < runs) {
				continue
			}

			counts[idx] = 0
			if runs > 0 {
				counts[idx+1] -= runs
				counts[idx+2] -= runs
			}

			next := cur
			if usePair == 1 {
				next = append(next, DecompGroup{Kind: GroupTypePair, Tile: tile})
			}
			if useTrip == 1 {
				next = append(next, DecompGroup{Kind: GroupTypePon, Tile: tile})
			}
			for r := 0; r < runs; r++ {
				next = append(next, DecompGroup{Kind: GroupTypeChow, Tile: tile})
			}
			s.run(counts, idx+1, hasPair || usePair == 1, next, out)

			counts[idx] = c
			if runs > 0 {
				counts[idx+1] += runs
				counts[idx+2] += runs
			}
		}
	}

	if len(*out) == found {
		s.dead[key] = struct{}{}
	}
}

func (s *decompSearch) build(cur []DecompGroup) *Decomposition {
	groups := make([]DecompGroup, 0, len(s.base)+len(cur))
	groups = append(groups, s.base...)
	groups = append(groups, cur...)
	sortGroups(groups)
	return &Decomposition{Style: HandNormal, Groups: groups}
}

func sortGroups(groups []DecompGroup) {
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if (a.Kind == GroupTypePair) != (b.Kind == GroupTypePair) {
			return b.Kind == GroupTypePair // 将牌排最后
		}
		if a.Melded != b.Melded {
			return a.Melded
		}
		return a.Tile.Index() < b.Tile.Index()
	})
}

func countsKey(counts *[TileKindCount]int, hasPair bool) string {
	var buf [TileKindCount + 1]byte
	for i, c := range counts {
		buf[i] = byte(c)
	}
	if hasPair {
		buf[TileKindCount] = 1
	}
	return string(buf[:])
}

func decomposeSevenPairs(counts *[TileKindCount]int) *Decomposition {
	groups := make([]DecompGroup, 0, 7)
	for i, c := range counts {
		switch c {
		case 0:
		case 2:
			groups = append(groups, DecompGroup{Kind: GroupTypePair, Tile: TileFromIndex(i)})
		default:
			return nil
		}
	}
	if len(groups) != 7 {
		return nil
	}
	return &Decomposition{Style: HandSevenPairs, Groups: groups}
}

func decomposeThirteenOrphans(counts *[TileKindCount]int) *Decomposition {
	pairs := 0
	total := 0
	for _, t := range OrphanTiles {
		c := counts[t.Index()]
		if c == 0 {
			return nil
		}
		if c == 2 {
			pairs++
		}
		total += c
	}
	if pairs != 1 || total != 14 {
		return nil
	}
	return &Decomposition{Style: HandThirteenOrphans}
}

// IsThirteenWait 国士是否为十三面听(和牌前已有全部13种幺九)
func IsThirteenWait(tiles []Tile, winTile Tile) bool {
	before := slices.Clone(tiles)
	before, _ = removeTiles(before, winTile, 1)
	if len(before) != 13 {
		return false
	}
	counts := tileCounts(before)
	for _, t := range OrphanTiles {
		if counts[t.Index()] == 0 {
			return false
		}
	}
	return true
}
