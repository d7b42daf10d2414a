package riichi

import "slices"

// pendingKan 补杠成立前的抢杠窗口
type pendingKan struct {
	seat int32
	tile Tile
}

// Play 一局牌的过程数据
type Play struct {
	game      *Game
	rule      *Rule
	dealer    *Dealer
	banker    int32
	curSeat   int32
	curTile   Tile
	playData  []*PlayData
	history   []Action
	huResults map[int32]*HuResult

	kanCount   int32
	kanBySeat  []int32
	calledAny  bool
	rinshan    bool // 当前摸牌来自岭上
	pendingKan *pendingKan
}

func NewPlay(game *Game, dealer *Dealer) *Play {
	p := &Play{
		game:      game,
		rule:      game.rule,
		dealer:    dealer,
		banker:    game.banker,
		curSeat:   game.banker,
		curTile:   TileNull,
		playData:  make([]*PlayData, SeatCount),
		history:   make([]Action, 0),
		huResults: make(map[int32]*HuResult),
		kanBySeat: make([]int32, SeatCount),
	}
	for i := range p.playData {
		p.playData[i] = NewPlayData(p, int32(i))
	}
	return p
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetHistory() []Action {
	return p.history
}

func (p *Play) Deal() {
	for i := int32(0); i < SeatCount; i++ {
		p.playData[i].handTiles = p.dealer.Deal(TileCountInitNormal)
		sortTiles(p.playData[i].handTiles)
	}
	tile := p.dealer.DrawTile()
	p.playData[p.banker].PutHandTile(tile)
	p.playData[p.banker].refreshCallMap()
	p.curTile = tile
	p.curSeat = p.banker
}

// Draw 当前座位摸牌, 牌山摸完返回TileNull
func (p *Play) Draw() Tile {
	var tile Tile
	if p.rinshan {
		tile = p.dealer.DrawRinshan()
	} else {
		tile = p.dealer.DrawTile()
	}
	if tile == TileNull {
		return TileNull
	}
	pd := p.playData[p.curSeat]
	pd.PutHandTile(tile)
	pd.refreshCallMap()
	pd.tempFuriten = false
	p.curTile = tile
	p.addHistory(p.curSeat, p.curSeat, OperateNone, tile, TileNull)
	return tile
}

// SelfOperates 摸牌后本家可用操作
func (p *Play) SelfOperates() *Operates {
	opt := NewOperates(OperateDiscard)
	pd := p.playData[p.curSeat]

	if result, ok := p.checkHu(p.curSeat, true, false, p.curTile); ok {
		p.huResults[p.curSeat] = result
		opt.AddOperate(OperateHu)
	}
	if p.canKanNow() && len(pd.selfKonTiles()) > 0 {
		opt.AddOperate(OperateKon)
	}
	if p.canTing() {
		opt.AddOperate(OperateRiichi)
	}
	if p.canAbort() {
		opt.AddOperate(OperateAbort)
	}
	return opt
}

// canKanNow 还有岭上牌且牌山未空
func (p *Play) canKanNow() bool {
	return p.kanCount < 4 && p.dealer.GetRestCount() > 0
}

func (p *Play) canTing() bool {
	pd := p.playData[p.curSeat]
	if pd.ting || !pd.IsMenQin() {
		return false
	}
	if p.dealer.GetRestCount() < 4 {
		return false
	}
	if p.game.GetScore(p.curSeat) < p.rule.RiichiBet {
		return false
	}
	return len(pd.callDataMap) > 0
}

// canAbort 九种九牌: 无人鸣牌的第一巡且幺九牌9种以上
func (p *Play) canAbort() bool {
	pd := p.playData[p.curSeat]
	if p.calledAny || len(pd.outTiles) > 0 || len(pd.handTiles) != TileCountInitBanker {
		return false
	}
	kinds := make(map[Tile]struct{})
	for _, t := range pd.handTiles {
		if t.IsOrphan() {
			kinds[t.Normal()] = struct{}{}
		}
	}
	return len(kinds) >= 9
}

func (p *Play) Discard(tile Tile) bool {
	pd := p.playData[p.curSeat]
	drawn := pd.handTiles[len(pd.handTiles)-1]
	if tile == TileNull {
		tile = drawn
	}
	// 立直后只允许摸切
	if pd.ting && tile != drawn {
		return false
	}
	if !pd.Discard(tile) {
		return false
	}
	// 立直宣言后的再次打牌结束一发
	if pd.ting {
		pd.ippatsu = false
	}
	p.addHistory(p.curSeat, p.curSeat, OperateDiscard, tile, TileNull)
	p.curTile = tile
	p.rinshan = false
	return true
}

// Ting 立直宣言并打出宣言牌
func (p *Play) Ting(tile Tile) bool {
	pd := p.playData[p.curSeat]
	if !p.canTing() || !pd.canTing(tile) {
		return false
	}
	if !pd.Discard(tile) {
		return false
	}
	pd.ting = true
	pd.ippatsu = true
	p.game.onRiichiDeclared(p.curSeat)
	p.addHistory(p.curSeat, p.curSeat, OperateRiichi, tile, TileNull)
	p.curTile = tile
	p.rinshan = false
	return true
}

// WaitOperates 针对当前出牌各家的响应, 仅含有牌可抢的座位
func (p *Play) WaitOperates() map[int32]*Operates {
	res := make(map[int32]*Operates)
	houtei := p.dealer.GetRestCount() == 0
	for seat := GetNextSeat(p.curSeat, 1, SeatCount); seat != p.curSeat; seat = GetNextSeat(seat, 1, SeatCount) {
		opt := NewOperates(OperatePass)
		pd := p.playData[seat]

		if result, ok := p.checkHu(seat, false, false, p.curTile); ok && !pd.isFuriten() {
			p.huResults[seat] = result
			opt.AddOperate(OperateHu)
		}
		if !houtei && !pd.ting {
			if pd.canPon(p.curTile) {
				opt.AddOperate(OperatePon)
			}
			if p.canKanNow() && pd.canKon(p.curTile, KonTypeZhi) {
				opt.AddOperate(OperateKon)
			}
			if seat == GetNextSeat(p.curSeat, 1, SeatCount) && pd.canChow(p.curTile) {
				opt.AddOperate(OperateChow)
			}
		}
		if !opt.Empty() {
			res[seat] = opt
		}
	}
	return res
}

// ChankanOperates 补杠时可抢杠的座位
func (p *Play) ChankanOperates(kanSeat int32, tile Tile) map[int32]*Operates {
	res := make(map[int32]*Operates)
	for seat := GetNextSeat(kanSeat, 1, SeatCount); seat != kanSeat; seat = GetNextSeat(seat, 1, SeatCount) {
		pd := p.playData[seat]
		if result, ok := p.checkHu(seat, false, true, tile); ok && !pd.isFuriten() {
			p.huResults[seat] = result
			res[seat] = NewOperates(OperatePass, OperateHu)
		}
	}
	return res
}

// checkHu 判定某家能否和出目标牌
func (p *Play) checkHu(seat int32, selfDraw, chankan bool, winTile Tile) (*HuResult, bool) {
	pd := p.playData[seat]
	tiles := slices.Clone(pd.handTiles)
	if !selfDraw {
		tiles = append(tiles, winTile)
	}
	data := &HuData{
		Tiles: tiles,
		Melds: pd.melds,
		Ctx:   p.winContext(seat, selfDraw, chankan, winTile),
	}
	return data.CheckHu()
}

func (p *Play) winContext(seat int32, selfDraw, chankan bool, winTile Tile) WinContext {
	pd := p.playData[seat]
	turns := int32(-1)
	if pd.ting {
		turns = 1
		if pd.ippatsu {
			turns = 0
		}
	}
	return WinContext{
		Seat:             seat,
		Banker:           p.banker,
		RoundWind:        p.game.roundWind,
		SelfDraw:         selfDraw,
		WinTile:          winTile,
		Concealed:        pd.IsMenQin(),
		Riichi:           pd.ting,
		TurnsAfterRiichi: turns,
		FirstTurn:        !p.calledAny && len(pd.outTiles) == 0,
		LastTile:         p.dealer.GetRestCount() == 0 && !p.rinshan,
		Rinshan:          p.rinshan && selfDraw,
		Chankan:          chankan,
		DoraCount:        p.countDora(seat, selfDraw, winTile),
		Rule:             p.rule,
	}
}

// countDora 表宝加赤牌, 立直另计里宝
func (p *Play) countDora(seat int32, selfDraw bool, winTile Tile) int32 {
	pd := p.playData[seat]
	tiles := slices.Clone(pd.handTiles)
	if !selfDraw {
		tiles = append(tiles, winTile)
	}
	for _, m := range pd.melds {
		tiles = append(tiles, m.Tiles()...)
	}

	var count int32
	for _, ind := range p.dealer.DoraIndicators() {
		count += int32(countTiles(tiles, DoraFromIndicator(ind)))
	}
	if pd.ting && p.rule.UraDoraEnabled {
		for _, ind := range p.dealer.UraIndicators() {
			count += int32(countTiles(tiles, DoraFromIndicator(ind)))
		}
	}
	count += pd.countRedsAll()
	if !selfDraw && winTile.IsRed() {
		count++
	}
	return count
}

func (p *Play) Chow(seat int32, leftTile Tile) bool {
	pd := p.playData[seat]
	if !pd.chow(p.curTile, leftTile, p.curSeat) {
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.afterClaim(seat, OperateChow, leftTile)
	return true
}

func (p *Play) Pon(seat int32) bool {
	pd := p.playData[seat]
	if !pd.pon(p.curTile, p.curSeat) {
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.afterClaim(seat, OperatePon, TileNull)
	return true
}

// ZhiKon 明杠别家打出的牌, 随后摸岭上
func (p *Play) ZhiKon(seat int32) bool {
	pd := p.playData[seat]
	if !pd.kon(p.curTile, p.curSeat, KonTypeZhi) {
		return false
	}
	p.playData[p.curSeat].RemoveOutTile()
	p.afterClaim(seat, OperateKon, TileNull)
	p.completeKan(seat)
	return true
}

// AnKon 本家暗杠, 补杠走TryBuKon开抢杠窗口
func (p *Play) AnKon(tile Tile) bool {
	pd := p.playData[p.curSeat]
	if !pd.kon(tile, p.curSeat, KonTypeAn) {
		return false
	}
	pd.refreshCallMap()
	p.addHistory(p.curSeat, p.curSeat, OperateKon, tile, TileNull)
	p.clearIppatsu()
	p.calledAny = true
	p.completeKan(p.curSeat)
	return true
}

// TryBuKon 发起补杠, 返回可抢杠的响应表, 空表时杠已完成
func (p *Play) TryBuKon(tile Tile) (map[int32]*Operates, bool) {
	pd := p.playData[p.curSeat]
	if !pd.canKon(tile, KonTypeBu) {
		log.Error("player cannot bu kon")
		return nil, false
	}
	p.pendingKan = &pendingKan{seat: p.curSeat, tile: tile}
	claims := p.ChankanOperates(p.curSeat, tile)
	if len(claims) > 0 {
		return claims, true
	}
	p.CompleteBuKon()
	return nil, true
}

// CompleteBuKon 抢杠全过后落杠
func (p *Play) CompleteBuKon() bool {
	kan := p.pendingKan
	if kan == nil {
		return false
	}
	p.pendingKan = nil
	pd := p.playData[kan.seat]
	if !pd.kon(kan.tile, kan.seat, KonTypeBu) {
		return false
	}
	pd.refreshCallMap()
	p.addHistory(kan.seat, kan.seat, OperateKon, kan.tile, TileNull)
	p.clearIppatsu()
	p.calledAny = true
	p.completeKan(kan.seat)
	return true
}

// PendingKan 抢杠窗口中的补杠
func (p *Play) PendingKan() (int32, Tile, bool) {
	if p.pendingKan == nil {
		return SeatNull, TileNull, false
	}
	return p.pendingKan.seat, p.pendingKan.tile, true
}

func (p *Play) AbandonPendingKan() {
	p.pendingKan = nil
}

func (p *Play) completeKan(seat int32) {
	p.kanCount++
	p.kanBySeat[seat]++
	p.dealer.RevealDora()
	p.curSeat = seat
	p.rinshan = true
}

func (p *Play) afterClaim(seat int32, operate int32, extra Tile) {
	p.addHistory(seat, p.curSeat, operate, p.curTile, extra)
	p.clearIppatsu()
	p.calledAny = true
	p.curSeat = seat
}

func (p *Play) clearIppatsu() {
	for _, pd := range p.playData {
		pd.ippatsu = false
	}
}

// PassHu 有和不和, 记同巡或立直永久振听
func (p *Play) PassHu(seat int32) {
	p.playData[seat].passHu()
}

func (p *Play) NextTurn() {
	p.curSeat = GetNextSeat(p.curSeat, 1, SeatCount)
}

// CheckAbort 出牌无人响应后的流局判定
func (p *Play) CheckAbort() ERyuukyoku {
	if p.checkSuufon() {
		return RyuukyokuSuufon
	}
	if p.checkSuucha() {
		return RyuukyokuSuucha
	}
	if p.kanCount >= 4 && !p.singleSeatKans() {
		return RyuukyokuSuukantsu
	}
	if p.dealer.GetRestCount() == 0 {
		return RyuukyokuExhaustive
	}
	return RyuukyokuNone
}

// checkSuufon 首巡无鸣牌且四家打出同一种牌
func (p *Play) checkSuufon() bool {
	if p.calledAny {
		return false
	}
	var first Tile
	for i := int32(0); i < SeatCount; i++ {
		out := p.playData[i].outTiles
		if len(out) != 1 {
			return false
		}
		if i == 0 {
			first = out[0].Normal()
		} else if out[0].Normal() != first {
			return false
		}
	}
	return true
}

func (p *Play) checkSuucha() bool {
	for _, pd := range p.playData {
		if !pd.ting {
			return false
		}
	}
	return true
}

func (p *Play) singleSeatKans() bool {
	for _, c := range p.kanBySeat {
		if c == p.kanCount {
			return true
		}
	}
	return false
}

// TenpaiSeats 流局时各家是否听牌
func (p *Play) TenpaiSeats() []bool {
	res := make([]bool, SeatCount)
	for i, pd := range p.playData {
		res[i] = len(pd.waits()) > 0
	}
	return res
}

// FlowManganSeats 流局满贯: 门清听牌且所听全为幺九
func (p *Play) FlowManganSeats() []int32 {
	var res []int32
	for i, pd := range p.playData {
		if !pd.IsMenQin() {
			continue
		}
		waits := pd.waits()
		if len(waits) == 0 {
			continue
		}
		all := true
		for _, w := range waits {
			if !w.IsOrphan() {
				all = false
				break
			}
		}
		if all {
			res = append(res, int32(i))
		}
	}
	return res
}

func (p *Play) HuResult(seat int32) *HuResult {
	return p.huResults[seat]
}

func (p *Play) addHistory(seat, from, operate int32, tile, extra Tile) {
	p.history = append(p.history, Action{
		Seat:    seat,
		From:    from,
		Operate: operate,
		Tile:    tile,
		Extra:   extra,
	})
}
