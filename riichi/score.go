package riichi

// calcFu 算符, 已进位到10
func calcFu(h *HuData, r *HuResult) int32 {
	switch r.Decomp.Style {
	case HandSevenPairs:
		return 25
	case HandThirteenOrphans:
		return 0
	}

	for _, y := range r.Yakus {
		if y.Yaku == YakuPinfu {
			if h.Ctx.SelfDraw {
				return 20
			}
			return 30
		}
	}

	fu := int32(20)
	if h.Ctx.Concealed && !h.Ctx.SelfDraw {
		fu += 10
	}
	if h.Ctx.SelfDraw {
		fu += 2
	}

	ronTriplet := !h.Ctx.SelfDraw && r.Wait == WaitShanpon
	for _, g := range r.Decomp.Groups {
		if !g.IsTriplet() {
			continue
		}
		concealed := g.Concealed()
		if concealed && ronTriplet && !g.Melded && g.Tile == h.Ctx.WinTile.Normal() {
			// 荣和补成的刻子按明刻计
			concealed = false
			ronTriplet = false
		}
		base := int32(2)
		if g.IsKon() {
			base = 8
		}
		if concealed {
			base *= 2
		}
		if g.Tile.IsOrphan() {
			base *= 2
		}
		fu += base
	}

	if pair, ok := r.Decomp.Pair(); ok {
		if pair.IsDragon() {
			fu += 2
		}
		if pair.IsWind() {
			wind := int32(pair.Point())
			if wind == h.Ctx.RoundWind {
				fu += 2
			}
			if wind == h.Ctx.SeatWind() {
				fu += 2
			}
		}
	}

	switch r.Wait {
	case WaitTanki, WaitPenchan, WaitKanchan:
		fu += 2
	}

	return (fu + 9) / 10 * 10
}

// basePoints 基本点: 满贯2000封顶, 跳满3000, 倍满4000, 三倍满6000, 役满8000每倍
func basePoints(r *HuResult, rule *Rule) int32 {
	if r.Yakuman > 0 {
		return 2000 * r.Yakuman
	}
	han, fu := r.TotalHan(), r.Fu
	switch {
	case han >= 13:
		return 8000
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	case han >= 5 || (han == 4 && fu >= 40):
		return 2000
	}
	if rule.KiriageMangan && ((han == 4 && fu == 30) || (han == 3 && fu == 60)) {
		return 2000
	}
	base := fu << (2 + han)
	if base > 2000 {
		base = 2000
	}
	return base
}

func roundUp100(v int64) int64 {
	return (v + 99) / 100 * 100
}

// ScoreResult 一次和牌的分数变动
type ScoreResult struct {
	Seat    int32
	Base    int32
	Han     int32
	Fu      int32
	Yakuman int32
	Deltas  []int64 // 每座位净变动, 含本场与供托
}

// 分数计算器
type scorelator struct {
	rule   *Rule
	banker int32
}

func newScorelator(rule *Rule, banker int32) *scorelator {
	return &scorelator{rule: rule, banker: banker}
}

// calculate 自摸时payer为SeatNull; honba与sticks由调用方决定归属
func (s *scorelator) calculate(r *HuResult, seat, payer, honba, sticks int32) *ScoreResult {
	base := int64(basePoints(r, s.rule))
	res := &ScoreResult{
		Seat:    seat,
		Base:    int32(base),
		Han:     r.TotalHan(),
		Fu:      r.Fu,
		Yakuman: r.Yakuman,
		Deltas:  make([]int64, SeatCount),
	}

	if payer == SeatNull {
		honbaEach := int64(honba) * s.rule.HonbaUnit / 3
		for i := int32(0); i < SeatCount; i++ {
			if i == seat {
				continue
			}
			var pay int64
			if seat == s.banker || i == s.banker {
				pay = roundUp100(2 * base)
			} else {
				pay = roundUp100(base)
			}
			pay += honbaEach
			res.Deltas[i] -= pay
			res.Deltas[seat] += pay
		}
	} else {
		mult := int64(4)
		if seat == s.banker {
			mult = 6
		}
		pay := roundUp100(mult*base) + int64(honba)*s.rule.HonbaUnit
		res.Deltas[payer] -= pay
		res.Deltas[seat] += pay
	}

	res.Deltas[seat] += int64(sticks) * s.rule.RiichiBet
	return res
}

// notenPayments 不听罚符: 听牌人数1/2/3档
func (s *scorelator) notenPayments(tenpai []bool) []int64 {
	res := make([]int64, SeatCount)
	count := 0
	for _, t := range tenpai {
		if t {
			count++
		}
	}
	if count == 0 || count == int(SeatCount) {
		return res
	}

	total := s.rule.NotenBappuTotal
	gain := total / int64(count)
	loss := total / int64(int(SeatCount)-count)
	for i, t := range tenpai {
		if t {
			res[i] = gain
		} else {
			res[i] = -loss
		}
	}
	return res
}

// flowManganPayments 流局满贯, 每名成立者+3000其余各-1000
func (s *scorelator) flowManganPayments(players []int32) []int64 {
	res := make([]int64, SeatCount)
	for _, p := range players {
		for i := int32(0); i < SeatCount; i++ {
			if i == p {
				res[i] += 3000
			} else {
				res[i] -= 1000
			}
		}
	}
	return res
}
