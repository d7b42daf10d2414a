package riichi

import (
	"fmt"
	"slices"
)

// WallSupplier 提供一副洗好的牌山
type WallSupplier interface {
	Wall(rule *Rule) []Tile
}

type randomWallSupplier struct{}

func (randomWallSupplier) Wall(rule *Rule) []Tile {
	return NewWall(rule)
}

func NewRandomWallSupplier() WallSupplier {
	return randomWallSupplier{}
}

// HandResult 一局结束后的结算快照
type HandResult struct {
	Ryuukyoku  ERyuukyoku     // RyuukyokuNone为和牌
	Scores     []*ScoreResult // 各和牌者的分数变动
	Tenpai     []bool         // 荒牌流局时的听牌状态
	FlowMangan []int32
}

// Game 一场对局: 局序/本场/供托/积分
type Game struct {
	rule      *Rule
	supplier  WallSupplier
	play      *Play
	curState  IState
	nextState IState
	phase     EPhase

	scores       []int64
	banker       int32
	roundWind    int32
	roundNumber  int32 // 本风圈内第几局, 1起
	honba        int32
	riichiSticks int32
	lastHand     *HandResult
}

func NewGame(rule *Rule, supplier WallSupplier) *Game {
	if rule == nil {
		rule = NewRule()
	}
	if supplier == nil {
		supplier = randomWallSupplier{}
	}
	g := &Game{
		rule:        rule,
		supplier:    supplier,
		phase:       PhaseInit,
		scores:      make([]int64, SeatCount),
		banker:      0,
		roundWind:   WindEast,
		roundNumber: 1,
	}
	for i := range g.scores {
		g.scores[i] = rule.InitScore
	}
	return g
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) Phase() EPhase {
	return g.phase
}

func (g *Game) GetBanker() int32 {
	return g.banker
}

func (g *Game) RoundWind() int32 {
	return g.roundWind
}

func (g *Game) RoundNumber() int32 {
	return g.roundNumber
}

func (g *Game) Honba() int32 {
	return g.honba
}

func (g *Game) RiichiSticks() int32 {
	return g.riichiSticks
}

func (g *Game) GetScore(seat int32) int64 {
	return g.scores[seat]
}

func (g *Game) Scores() []int64 {
	return slices.Clone(g.scores)
}

func (g *Game) LastHand() *HandResult {
	return g.lastHand
}

// Start 开始对局并发首局牌
func (g *Game) Start() error {
	if g.phase != PhaseInit {
		return fmt.Errorf("%w: game already started", ErrIllegalAction)
	}
	return g.startHand()
}

// NextHand 上一局结算后开下一局
func (g *Game) NextHand() error {
	if g.phase != PhaseWinning && g.phase != PhaseRyuukyoku {
		return fmt.Errorf("%w: hand not settled", ErrIllegalAction)
	}
	return g.startHand()
}

func (g *Game) startHand() error {
	g.phase = PhaseDealing
	dealer, err := NewDealer(g.supplier.Wall(g.rule))
	if err != nil {
		return err
	}
	g.play = NewPlay(g, dealer)
	g.play.Deal()
	g.phase = PhasePlaying
	g.SetNextState(newStateDiscard(g, false))
	g.enterNextState()
	return nil
}

// OnPlayerAction 外部输入一个玩家动作
func (g *Game) OnPlayerAction(seat int32, act *Action) error {
	if g.phase != PhasePlaying {
		return fmt.Errorf("%w: phase %d", ErrIllegalAction, g.phase)
	}
	if seat < 0 || seat >= SeatCount || act == nil {
		return fmt.Errorf("%w: seat %d", ErrMalformedInput, seat)
	}
	if err := g.curState.OnPlayerAction(seat, act); err != nil {
		return err
	}
	g.enterNextState()
	return nil
}

// LegalOperates 某座位当前可用操作, 无则nil
func (g *Game) LegalOperates(seat int32) *Operates {
	if g.phase != PhasePlaying || g.curState == nil {
		return nil
	}
	return g.curState.OperatesFor(seat)
}

// PendingSeats 当前等待行动的座位
func (g *Game) PendingSeats() []int32 {
	if g.phase != PhasePlaying {
		return nil
	}
	if w, ok := g.curState.(*stateWait); ok {
		return w.PendingSeats()
	}
	return []int32{g.play.GetCurSeat()}
}

func (g *Game) SetNextState(s IState) {
	g.nextState = s
}

func (g *Game) enterNextState() {
	for g.nextState != nil && g.phase == PhasePlaying {
		g.curState = g.nextState
		g.nextState = nil
		g.curState.OnEnter()
	}
}

func (g *Game) onRiichiDeclared(seat int32) {
	g.scores[seat] -= g.rule.RiichiBet
	g.riichiSticks++
}

// afterDiscard 出牌后开响应窗口或直接走牌
func (g *Game) afterDiscard() {
	claims := g.play.WaitOperates()
	if len(claims) > 0 {
		g.SetNextState(newStateWait(g, claims, false))
		return
	}
	g.afterAllPass()
}

// afterAllPass 无人响应: 查流局后轮转
func (g *Game) afterAllPass() {
	if rk := g.play.CheckAbort(); rk != RyuukyokuNone {
		g.onRyuukyoku(rk)
		return
	}
	g.play.NextTurn()
	g.SetNextState(newStateDiscard(g, true))
}

func (g *Game) onZimo(seat int32) {
	result := g.play.HuResult(seat)
	if result == nil {
		log.Error("zimo without checked result")
		return
	}
	sc := newScorelator(g.rule, g.banker)
	score := sc.calculate(result, seat, SeatNull, g.honba, g.riichiSticks)
	g.applyDeltas(score.Deltas)
	g.riichiSticks = 0
	g.lastHand = &HandResult{Scores: []*ScoreResult{score}}
	g.phase = PhaseWinning
	g.finishHand(seat == g.banker, true)
}

func (g *Game) onRon(huSeats []int32) {
	payer := g.play.GetCurSeat()
	g.play.GetPlayData(payer).RemoveOutTile()
	g.settleRon(huSeats, payer)
}

// onChankan 抢杠: 被抢的牌从杠家手中转给和牌者
func (g *Game) onChankan(huSeats []int32) {
	payer, tile, ok := g.play.PendingKan()
	if !ok {
		log.Error("chankan without pending kan")
		return
	}
	g.play.AbandonPendingKan()
	pd := g.play.GetPlayData(payer)
	pd.handTiles, _ = removeTiles(pd.handTiles, tile, 1)
	g.settleRon(huSeats, payer)
}

func (g *Game) settleRon(huSeats []int32, payer int32) {
	sc := newScorelator(g.rule, g.banker)
	var scores []*ScoreResult
	dealerWon := false

	// 头跳: 供托与本场归离放铳者最近的和牌者
	first := true
	for seat := GetNextSeat(payer, 1, SeatCount); seat != payer; seat = GetNextSeat(seat, 1, SeatCount) {
		if !slices.Contains(huSeats, seat) {
			continue
		}
		honba, sticks := int32(0), int32(0)
		if first {
			honba, sticks = g.honba, g.riichiSticks
			first = false
		}
		score := sc.calculate(g.play.HuResult(seat), seat, payer, honba, sticks)
		g.applyDeltas(score.Deltas)
		scores = append(scores, score)
		if seat == g.banker {
			dealerWon = true
		}
	}

	g.riichiSticks = 0
	g.lastHand = &HandResult{Scores: scores}
	g.phase = PhaseWinning
	g.finishHand(dealerWon, true)
}

func (g *Game) onRyuukyoku(rk ERyuukyoku) {
	result := &HandResult{Ryuukyoku: rk}
	dealerKeeps := true
	if rk == RyuukyokuExhaustive {
		sc := newScorelator(g.rule, g.banker)
		result.Tenpai = g.play.TenpaiSeats()
		result.FlowMangan = g.play.FlowManganSeats()
		g.applyDeltas(sc.flowManganPayments(result.FlowMangan))
		g.applyDeltas(sc.notenPayments(result.Tenpai))
		dealerKeeps = result.Tenpai[g.banker]
	}
	g.lastHand = result
	g.phase = PhaseRyuukyoku
	g.finishHand(dealerKeeps, false)
}

func (g *Game) applyDeltas(deltas []int64) {
	for i, d := range deltas {
		g.scores[i] += d
	}
}

// finishHand 连庄/轮庄与终局判定
func (g *Game) finishHand(dealerKeeps, won bool) {
	lastScheduled := g.roundWind == g.rule.RoundWinds-1 && g.roundNumber == SeatCount

	if won && !dealerKeeps {
		g.honba = 0
	} else {
		g.honba++
	}
	if !dealerKeeps {
		g.banker = GetNextSeat(g.banker, 1, SeatCount)
		g.roundNumber++
		if g.roundNumber > SeatCount {
			g.roundNumber = 1
			g.roundWind++
		}
	}

	if g.checkGameEnd(dealerKeeps, lastScheduled) {
		g.endGame()
	}
}

func (g *Game) checkGameEnd(dealerKeeps, lastScheduled bool) bool {
	if g.rule.TobiEnabled {
		for _, s := range g.scores {
			if s < 0 {
				return true
			}
		}
	}
	// 终局庄家听牌或和牌且为首位时可以结束
	if dealerKeeps && lastScheduled && g.rule.AgariYame && g.isTop(g.banker) {
		return true
	}
	if g.roundWind >= g.rule.RoundWinds {
		if !g.rule.WestExtension {
			return true
		}
		// 入延长赛后有人到返点即终局
		for _, s := range g.scores {
			if s >= g.rule.ReturnScore {
				return true
			}
		}
		if g.roundWind > g.rule.RoundWinds {
			return true
		}
	}
	return false
}

func (g *Game) isTop(seat int32) bool {
	for i, s := range g.scores {
		if int32(i) != seat && s > g.scores[seat] {
			return false
		}
	}
	return true
}

// endGame 场上剩余供托归首位
func (g *Game) endGame() {
	if g.riichiSticks > 0 {
		top := int32(0)
		for i := int32(1); i < SeatCount; i++ {
			if g.scores[i] > g.scores[top] {
				top = i
			}
		}
		g.scores[top] += int64(g.riichiSticks) * g.rule.RiichiBet
		g.riichiSticks = 0
	}
	g.phase = PhaseEnded
}
