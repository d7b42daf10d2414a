package riichi

// Meld 副露或暗杠
type Meld struct {
	Kind   EGroupType
	Tile   Tile  // 吃为顺子最小牌, 其余为成组的牌
	From   int32 // 被鸣牌的座位, 暗杠为SeatNull
	Called Tile  // 鸣到的那张牌, 暗杠为TileNull
	Reds   int32 // 组内赤牌数
}

func (m Meld) IsKon() bool {
	return m.Kind == GroupTypeZhiKon || m.Kind == GroupTypeAnKon || m.Kind == GroupTypeBuKon
}

func (m Meld) Concealed() bool {
	return m.Kind == GroupTypeAnKon
}

// Tiles 组内全部牌(归一后)
func (m Meld) Tiles() []Tile {
	switch m.Kind {
	case GroupTypeChow:
		c, p := m.Tile.Normal().Info()
		return []Tile{MakeTile(c, p), MakeTile(c, p+1), MakeTile(c, p+2)}
	case GroupTypePon:
		return makeTiles(m.Tile.Normal(), 3)
	case GroupTypeZhiKon, GroupTypeAnKon, GroupTypeBuKon:
		return makeTiles(m.Tile.Normal(), 4)
	default:
		return nil
	}
}

func meldTilesCount(melds []Meld) int {
	count := 0
	for _, m := range melds {
		count += len(m.Tiles())
	}
	return count
}

func countMeldReds(melds []Meld) int32 {
	var reds int32
	for _, m := range melds {
		reds += m.Reds
	}
	return reds
}
