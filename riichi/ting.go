package riichi

import "slices"

// WaitingTiles 13张形手牌的全部听牌, 未听返回空
func WaitingTiles(tiles []Tile, melds []Meld) []Tile {
	if len(tiles)%3 != 1 || len(tiles)+3*len(melds) != 13 {
		return nil
	}
	var res []Tile
	for i := 0; i < TileKindCount; i++ {
		t := TileFromIndex(i)
		if countTiles(tiles, t) == 4 {
			continue
		}
		full := append(slices.Clone(tiles), t)
		if len(Decompose(full, melds)) > 0 {
			res = append(res, t)
		}
	}
	return res
}

// CheckCall 14张形手牌的打牌->听牌表, 不听的打牌不入表
func CheckCall(tiles []Tile, melds []Meld) map[Tile][]Tile {
	callMap := make(map[Tile][]Tile)
	if len(tiles)%3 != 2 || len(tiles)+3*len(melds) != 14 {
		return callMap
	}
	for _, t := range distinctTiles(tiles) {
		rest, _ := removeTiles(tiles, t, 1)
		if waits := WaitingTiles(rest, melds); len(waits) > 0 {
			callMap[t] = waits
		}
	}
	return callMap
}

// waitKind 和牌在拆解中的听型
func waitKind(d *Decomposition, winTile Tile) EWaitKind {
	win := winTile.Normal()
	if d.Style != HandNormal {
		return WaitTanki
	}
	if pair, ok := d.Pair(); ok && pair == win {
		return WaitTanki
	}
	for _, g := range d.Groups {
		if g.Melded || g.Kind != GroupTypeChow {
			continue
		}
		tiles := g.Tiles()
		idx := slices.Index(tiles, win)
		if idx < 0 {
			continue
		}
		if idx == 1 {
			return WaitKanchan
		}
		if tiles[0].Point() == 0 || tiles[2].Point() == 8 {
			return WaitPenchan
		}
		return WaitRyanmen
	}
	for _, g := range d.Groups {
		if !g.Melded && g.Kind == GroupTypePon && g.Tile == win {
			return WaitShanpon
		}
	}
	return WaitTanki
}
