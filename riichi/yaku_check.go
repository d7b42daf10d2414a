package riichi

func (ev *yakuEval) checkOrdinary() []YakuResult {
	ctx := ev.ctx
	var results []YakuResult
	add := func(y EYaku, han int32) {
		results = append(results, YakuResult{Yaku: y, Han: han})
	}

	if ctx.Riichi {
		add(YakuRiichi, 1)
	}
	if ctx.TurnsAfterRiichi == 0 {
		add(YakuIppatsu, 1)
	}
	if ctx.SelfDraw && ctx.Concealed {
		add(YakuMenzenTsumo, 1)
	}
	if ctx.LastTile {
		if ctx.SelfDraw {
			add(YakuHaitei, 1)
		} else {
			add(YakuHoutei, 1)
		}
	}
	if ctx.Rinshan && ctx.SelfDraw {
		add(YakuRinshan, 1)
	}
	if ctx.Chankan {
		add(YakuChankan, 1)
	}
	if ev.checkTanyao() {
		add(YakuTanyao, 1)
	}
	if ev.checkPinfu() {
		add(YakuPinfu, 1)
	}
	switch ev.identicalChowPairs() {
	case 1:
		add(YakuIipeikou, 1)
	case 2:
		add(YakuIipeikou, 1)
		add(YakuRyanpeikou, 3)
	}
	if ev.tripletCount() == 4 {
		add(YakuToitoi, 2)
	}
	if ev.konCount() == 3 {
		add(YakuSankantsu, 2)
	}
	results = append(results, ev.checkYakuhai()...)
	if ev.checkSanshokuDoujun() {
		add(YakuSanshokuDoujun, 2)
	}
	if ev.checkIttsu() {
		add(YakuIttsu, 2)
	}
	if ev.concealedTripletCount() >= 3 {
		add(YakuSanankou, 2)
	}
	if suits, honors := ev.suitSpread(); len(suits) == 1 {
		if honors {
			add(YakuHonitsu, 3)
		} else {
			add(YakuChinitsu, 6)
		}
	}
	if ev.checkSanshokuDoukou() {
		add(YakuSanshokuDoukou, 2)
	}
	if ev.checkShousangen() {
		add(YakuShousangen, 2)
	}
	if ev.checkHonroutou() {
		add(YakuHonroutou, 2)
	}
	if kind := ev.checkChanta(); kind != YakuNone {
		var han int32
		switch {
		case kind == YakuJunchan && ctx.Concealed:
			han = ev.rule.JunchanClosedHan
		case kind == YakuJunchan:
			han = ev.rule.JunchanOpenHan
		case ctx.Concealed:
			han = ev.rule.ChantaClosedHan
		default:
			han = ev.rule.ChantaOpenHan
		}
		add(kind, han)
	}
	return results
}

func (ev *yakuEval) checkTanyao() bool {
	for _, t := range ev.tiles {
		if t.IsOrphan() {
			return false
		}
	}
	return true
}

// 平和: 门清四顺子, 将非役牌, 两面听(可配置)
func (ev *yakuEval) checkPinfu() bool {
	if !ev.ctx.Concealed {
		return false
	}
	chows := 0
	var pair Tile
	for _, g := range ev.d.Groups {
		switch g.Kind {
		case GroupTypeChow:
			chows++
		case GroupTypePair:
			pair = g.Tile
		default:
			return false
		}
	}
	if chows != 4 {
		return false
	}
	if pair.IsDragon() {
		return false
	}
	if pair.IsWind() {
		wind := pair.Point()
		if int32(wind) == ev.ctx.RoundWind || int32(wind) == ev.ctx.SeatWind() {
			return false
		}
	}
	if ev.rule.PinfuRequireRyanmen {
		return waitKind(ev.d, ev.ctx.WinTile) == WaitRyanmen
	}
	return true
}

// identicalChowPairs 门清时相同顺子的对数: 1一杯口 2二杯口
func (ev *yakuEval) identicalChowPairs() int {
	if !ev.ctx.Concealed {
		return 0
	}
	counts := make(map[Tile]int)
	for _, g := range ev.d.Groups {
		if g.Kind == GroupTypeChow {
			counts[g.Tile]++
		}
	}
	pairs := 0
	for _, c := range counts {
		pairs += c / 2
	}
	return pairs
}

func (ev *yakuEval) tripletCount() int {
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsTriplet() {
			count++
		}
	}
	return count
}

func (ev *yakuEval) konCount() int {
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsKon() {
			count++
		}
	}
	return count
}

// concealedTripletCount 荣和补成的刻子不算暗刻
func (ev *yakuEval) concealedTripletCount() int {
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsTriplet() && g.Concealed() {
			count++
		}
	}
	if !ev.ctx.SelfDraw && waitKind(ev.d, ev.ctx.WinTile) == WaitShanpon {
		count--
	}
	return count
}

func (ev *yakuEval) checkYakuhai() []YakuResult {
	var results []YakuResult
	for _, g := range ev.d.Groups {
		if !g.IsTriplet() {
			continue
		}
		switch g.Tile {
		case TileBai:
			results = append(results, YakuResult{Yaku: YakuHaku, Han: 1})
		case TileFa:
			results = append(results, YakuResult{Yaku: YakuHatsu, Han: 1})
		case TileZhong:
			results = append(results, YakuResult{Yaku: YakuChun, Han: 1})
		default:
			if !g.Tile.IsWind() {
				continue
			}
			wind := int32(g.Tile.Point())
			if wind == ev.ctx.RoundWind {
				results = append(results, YakuResult{Yaku: YakuRoundWind, Han: 1})
			}
			if wind == ev.ctx.SeatWind() {
				results = append(results, YakuResult{Yaku: YakuSeatWind, Han: 1})
			}
		}
	}
	return results
}

func (ev *yakuEval) checkSanshokuDoujun() bool {
	var starts [9][3]bool
	for _, g := range ev.d.Groups {
		if g.Kind == GroupTypeChow {
			starts[g.Tile.Point()][g.Tile.Color()] = true
		}
	}
	for _, s := range starts {
		if s[ColorCharacter] && s[ColorBamboo] && s[ColorDot] {
			return true
		}
	}
	return false
}

func (ev *yakuEval) checkSanshokuDoukou() bool {
	var points [9][3]bool
	for _, g := range ev.d.Groups {
		if g.IsTriplet() && g.Tile.IsSuit() {
			points[g.Tile.Point()][g.Tile.Color()] = true
		}
	}
	for _, p := range points {
		if p[ColorCharacter] && p[ColorBamboo] && p[ColorDot] {
			return true
		}
	}
	return false
}

func (ev *yakuEval) checkIttsu() bool {
	var starts [ColorEnd][3]bool
	for _, g := range ev.d.Groups {
		if g.Kind == GroupTypeChow && g.Tile.Point()%3 == 0 {
			starts[g.Tile.Color()][g.Tile.Point()/3] = true
		}
	}
	for c := ColorCharacter; c <= ColorDot; c++ {
		if starts[c][0] && starts[c][1] && starts[c][2] {
			return true
		}
	}
	return false
}

// suitSpread 所用数牌花色集合与是否含字牌
func (ev *yakuEval) suitSpread() (map[EColor]struct{}, bool) {
	suits := make(map[EColor]struct{})
	honors := false
	for _, t := range ev.tiles {
		if t.IsSuit() {
			suits[t.Color()] = struct{}{}
		} else {
			honors = true
		}
	}
	return suits, honors
}

func (ev *yakuEval) checkShousangen() bool {
	pair, ok := ev.d.Pair()
	if !ok || !pair.IsDragon() {
		return false
	}
	count := 0
	for _, g := range ev.d.Groups {
		if g.IsTriplet() && g.Tile.IsDragon() {
			count++
		}
	}
	return count == 2
}

func (ev *yakuEval) checkHonroutou() bool {
	for _, g := range ev.d.Groups {
		if g.Kind == GroupTypeChow {
			return false
		}
	}
	for _, t := range ev.tiles {
		if !t.IsOrphan() {
			return false
		}
	}
	return true
}

// checkChanta 全带幺九: 纯带返回Junchan, 含字牌返回Chanta, 否则None
func (ev *yakuEval) checkChanta() EYaku {
	chows := 0
	honors := 0
	for _, g := range ev.d.Groups {
		hasOrphan := false
		for _, t := range g.Tiles() {
			if t.IsOrphan() {
				hasOrphan = true
			}
			if t.IsHonor() {
				honors++
			}
		}
		if !hasOrphan {
			return YakuNone
		}
		if g.Kind == GroupTypeChow {
			chows++
		}
	}
	if chows == 0 {
		return YakuNone
	}
	if honors == 0 {
		return YakuJunchan
	}
	return YakuChanta
}
