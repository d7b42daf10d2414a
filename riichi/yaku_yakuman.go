package riichi

import "slices"

// 绿一色的构成牌: 23468条加发
var greenTiles = map[Tile]struct{}{
	MakeTile(ColorBamboo, 1): {},
	MakeTile(ColorBamboo, 2): {},
	MakeTile(ColorBamboo, 3): {},
	MakeTile(ColorBamboo, 5): {},
	MakeTile(ColorBamboo, 7): {},
	TileFa:                   {},
}

func (ev *yakuEval) checkYakumans() ([]YakuResult, int32) {
	var results []YakuResult
	var units int32
	add := func(y EYaku, han int32) {
		results = append(results, YakuResult{Yaku: y, Han: han, Yakuman: true})
		units += han / 13
	}

	if ev.checkDaisangen() {
		add(YakuDaisangen, 13)
	}
	if ev.konCount() == 4 {
		add(YakuSuukantsu, 13)
	}
	if n := ev.concealedTripletCount(); n == 4 {
		if waitKind(ev.d, ev.ctx.WinTile) == WaitTanki {
			add(YakuSuuankouTanki, 26)
		} else {
			add(YakuSuuankou, 13)
		}
	}
	switch ev.windTripletCount() {
	case 3:
		if pair, ok := ev.d.Pair(); ok && pair.IsWind() {
			add(YakuShousuushi, 13)
		}
	case 4:
		add(YakuDaisuushi, 13)
	}
	if ev.checkAllOf(Tile.IsTerminal) {
		add(YakuChinroutou, 13)
	}
	if ev.checkAllOf(Tile.IsHonor) {
		add(YakuTsuuiisou, 13)
	}
	if ev.checkRyuuiisou() {
		add(YakuRyuuiisou, 13)
	}
	if y := ev.checkChuuren(); y != YakuNone {
		if y == YakuChuurenPure {
			add(y, 26)
		} else {
			add(y, 13)
		}
	}
	return results, units
}

func (ev *yakuEval) checkDaisangen() bool {
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsTriplet() && g.Tile.IsDragon() {
			count++
		}
	}
	return count == 3
}

func (ev *yakuEval) windTripletCount() int {
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsTriplet() && g.Tile.IsWind() {
			count++
		}
	}
	return count
}

func (ev *yakuEval) checkAllOf(pred func(Tile) bool) bool {
	for _, t := range ev.tiles {
		if !pred(t) {
			return false
		}
	}
	return true
}

func (ev *yakuEval) checkRyuuiisou() bool {
	for _, t := range ev.tiles {
		if _, ok := greenTiles[t]; !ok {
			return false
		}
	}
	return true
}

// checkChuuren 九莲宝灯, 纯正形为和牌前恰好1112345678999
func (ev *yakuEval) checkChuuren() EYaku {
	if !ev.ctx.Concealed || len(ev.h.Melds) > 0 {
		return YakuNone
	}
	color := ev.tiles[0].Color()
	var counts [9]int
	for _, t := range ev.tiles {
		if !t.IsSuit() || t.Color() != color {
			return YakuNone
		}
		counts[t.Point()]++
	}
	for p, c := range counts {
		need := 1
		if p == 0 || p == 8 {
			need = 3
		}
		if c < need {
			return YakuNone
		}
	}

	before := slices.Clone(ev.h.Tiles)
	before, _ = removeTiles(before, ev.ctx.WinTile, 1)
	var pure [9]int
	for _, t := range before {
		pure[t.Point()]++
	}
	isPure := true
	for p, c := range pure {
		need := 1
		if p == 0 || p == 8 {
			need = 3
		}
		if c != need {
			isPure = false
			break
		}
	}
	if isPure {
		return YakuChuurenPure
	}
	return YakuChuuren
}
