package riichi

type EYaku int32

const (
	YakuNone EYaku = iota
	YakuRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuIipeikou
	YakuHaku
	YakuHatsu
	YakuChun
	YakuRoundWind
	YakuSeatWind
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuChiitoitsu
	YakuToitoi
	YakuSanankou
	YakuSankantsu
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChanta
	YakuJunchan
	YakuHonroutou
	YakuShousangen
	YakuHonitsu
	YakuChinitsu
	YakuRyanpeikou
	YakuRenhou
	// 役满
	YakuTenhou
	YakuChihou
	YakuRenhouYakuman
	YakuKokushi
	YakuKokushiJuusan
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShousuushi
	YakuDaisuushi
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuChuuren
	YakuChuurenPure
	YakuSuukantsu
)

var YakuNames = map[EYaku]string{
	YakuRiichi:         "riichi",
	YakuIppatsu:        "ippatsu",
	YakuMenzenTsumo:    "menzen tsumo",
	YakuPinfu:          "pinfu",
	YakuTanyao:         "tanyao",
	YakuIipeikou:       "iipeikou",
	YakuHaku:           "haku",
	YakuHatsu:          "hatsu",
	YakuChun:           "chun",
	YakuRoundWind:      "round wind",
	YakuSeatWind:       "seat wind",
	YakuHaitei:         "haitei raoyue",
	YakuHoutei:         "houtei raoyui",
	YakuRinshan:        "rinshan kaihou",
	YakuChankan:        "chankan",
	YakuChiitoitsu:     "chiitoitsu",
	YakuToitoi:         "toitoi",
	YakuSanankou:       "sanankou",
	YakuSankantsu:      "sankantsu",
	YakuSanshokuDoujun: "sanshoku doujun",
	YakuSanshokuDoukou: "sanshoku doukou",
	YakuIttsu:          "ittsu",
	YakuChanta:         "chanta",
	YakuJunchan:        "junchan",
	YakuHonroutou:      "honroutou",
	YakuShousangen:     "shousangen",
	YakuHonitsu:        "honitsu",
	YakuChinitsu:       "chinitsu",
	YakuRyanpeikou:     "ryanpeikou",
	YakuRenhou:         "renhou",
	YakuTenhou:         "tenhou",
	YakuChihou:         "chihou",
	YakuRenhouYakuman:  "renhou",
	YakuKokushi:        "kokushi musou",
	YakuKokushiJuusan:  "kokushi musou juusanmen",
	YakuSuuankou:       "suuankou",
	YakuSuuankouTanki:  "suuankou tanki",
	YakuDaisangen:      "daisangen",
	YakuShousuushi:     "shousuushi",
	YakuDaisuushi:      "daisuushi",
	YakuTsuuiisou:      "tsuuiisou",
	YakuChinroutou:     "chinroutou",
	YakuRyuuiisou:      "ryuuiisou",
	YakuChuuren:        "chuuren poutou",
	YakuChuurenPure:    "junsei chuuren poutou",
	YakuSuukantsu:      "suukantsu",
}

type YakuResult struct {
	Yaku    EYaku
	Han     int32
	Yakuman bool
}

// WinContext 和牌时的局面信息
type WinContext struct {
	Seat             int32
	Banker           int32
	RoundWind        int32
	SelfDraw         bool
	WinTile          Tile
	Concealed        bool
	Riichi           bool
	TurnsAfterRiichi int32 // -1未立直, 0为一发
	FirstTurn        bool  // 无人鸣牌的第一巡
	LastTile         bool  // 牌山已空
	Rinshan          bool
	Chankan          bool
	DoraCount        int32 // 宝牌/里宝/赤牌合计
	Rule             *Rule
}

func (c *WinContext) SeatWind() int32 {
	return SeatWind(c.Seat, c.Banker)
}

// HuData 一次和牌判定的输入
type HuData struct {
	Tiles []Tile // 立牌, 含和牌
	Melds []Meld
	Ctx   WinContext
}

// HuResult 和牌判定结果
type HuResult struct {
	Yakus   []YakuResult
	Han     int32 // 役翻合计, 不含宝牌
	Dora    int32
	Fu      int32
	Yakuman int32 // 役满倍数, 0为非役满
	Decomp  *Decomposition
	Wait    EWaitKind
}

// TotalHan 役翻与宝牌合计
func (r *HuResult) TotalHan() int32 {
	return r.Han + r.Dora
}

// CheckHu 判定和牌并选出得点最高的拆解, 无役或不成牌型返回false
func (h *HuData) CheckHu() (*HuResult, bool) {
	if h.Ctx.Rule == nil {
		h.Ctx.Rule = NewRule()
	}
	decomps := Decompose(h.Tiles, h.Melds)
	if len(decomps) == 0 {
		return nil, false
	}

	var best *HuResult
	for _, d := range decomps {
		ev := newYakuEval(h, d)
		yakus, units := ev.check()
		if len(yakus) == 0 {
			continue
		}
		r := &HuResult{
			Yakus:   yakus,
			Dora:    h.Ctx.DoraCount,
			Yakuman: units,
			Decomp:  d,
			Wait:    waitKind(d, h.Ctx.WinTile),
		}
		for _, y := range yakus {
			if !y.Yakuman {
				r.Han += y.Han
			}
		}
		r.Fu = calcFu(h, r)
		if betterResult(r, best) {
			best = r
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func betterResult(a, b *HuResult) bool {
	if b == nil {
		return true
	}
	if a.Yakuman != b.Yakuman {
		return a.Yakuman > b.Yakuman
	}
	if a.Han != b.Han {
		return a.Han > b.Han
	}
	return a.Fu > b.Fu
}

type yakuEval struct {
	h     *HuData
	d     *Decomposition
	ctx   *WinContext
	rule  *Rule
	tiles []Tile // 全部牌, 归一
}

func newYakuEval(h *HuData, d *Decomposition) *yakuEval {
	ev := &yakuEval{h: h, d: d, ctx: &h.Ctx, rule: h.Ctx.Rule}
	for _, t := range h.Tiles {
		ev.tiles = append(ev.tiles, t.Normal())
	}
	for _, m := range h.Melds {
		ev.tiles = append(ev.tiles, m.Tiles()...)
	}
	return ev
}

// check 返回该拆解下的役种与役满倍数
func (ev *yakuEval) check() ([]YakuResult, int32) {
	ctx := ev.ctx

	// 天和地和人和优先, 单独成立
	if ctx.SelfDraw && ctx.FirstTurn && ctx.Concealed {
		if ctx.Seat == ctx.Banker {
			return []YakuResult{{YakuTenhou, 13, true}}, 1
		}
		return []YakuResult{{YakuChihou, 13, true}}, 1
	}
	if !ctx.SelfDraw && ctx.FirstTurn && ctx.Concealed && ctx.Seat != ctx.Banker {
		switch ev.rule.RenhouPolicy {
		case RenhouYakuman:
			return []YakuResult{{YakuRenhouYakuman, 13, true}}, 1
		case RenhouTwoHan:
			return []YakuResult{{YakuRenhou, 2, false}}, 0
		}
	}

	switch ev.d.Style {
	case HandThirteenOrphans:
		result := YakuResult{YakuKokushi, 13, true}
		units := int32(1)
		if IsThirteenWait(ev.h.Tiles, ctx.WinTile) {
			result = YakuResult{YakuKokushiJuusan, 26, true}
			units = 2
		}
		results := []YakuResult{result}
		if ctx.Riichi {
			results = append([]YakuResult{{YakuRiichi, 1, false}}, results...)
		}
		return results, units
	case HandSevenPairs:
		results := []YakuResult{{YakuChiitoitsu, 2, false}}
		if ctx.Riichi {
			results = append([]YakuResult{{YakuRiichi, 1, false}}, results...)
		}
		return results, 0
	}

	if yakumans, units := ev.checkYakumans(); len(yakumans) > 0 {
		if ctx.Riichi {
			yakumans = append([]YakuResult{{YakuRiichi, 1, false}}, yakumans...)
		}
		return yakumans, units
	}

	results := ev.checkOrdinary()
	return filterConflicts(results), 0
}

func filterConflicts(results []YakuResult) []YakuResult {
	set := make(map[EYaku]struct{}, len(results))
	for _, r := range results {
		set[r.Yaku] = struct{}{}
	}
	has := func(ys ...EYaku) bool {
		for _, y := range ys {
			if _, ok := set[y]; ok {
				return true
			}
		}
		return false
	}

	filtered := make([]YakuResult, 0, len(results))
	for _, r := range results {
		drop := false
		switch r.Yaku {
		case YakuToitoi:
			drop = has(YakuSanshokuDoujun, YakuIttsu, YakuIipeikou, YakuRyanpeikou, YakuPinfu)
		case YakuPinfu:
			drop = has(YakuHaku, YakuHatsu, YakuChun, YakuRoundWind, YakuSeatWind,
				YakuToitoi, YakuIipeikou, YakuRyanpeikou)
		case YakuTanyao:
			drop = has(YakuIttsu, YakuJunchan, YakuChanta, YakuHonroutou)
		case YakuIipeikou:
			drop = has(YakuRyanpeikou)
		}
		if !drop {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
