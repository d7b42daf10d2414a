package riichi

import "slices"

// TableView 某一座位视角下的牌桌信息, 不含他家手牌
type TableView struct {
	Seat           int32
	Banker         int32
	RoundWind      int32
	RoundNumber    int32
	Honba          int32
	RiichiSticks   int32
	Scores         []int64
	HandTiles      []Tile
	Melds          [][]Meld
	Discards       [][]Tile
	Ting           []bool
	CurSeat        int32
	CurTile        Tile
	RestCount      int32
	DoraIndicators []Tile
}

// Strategy 为一个座位选择动作, 返回nil视为过
type Strategy interface {
	ChooseAction(view *TableView, opts *Operates) *Action
}

// View 构造seat视角的牌桌快照
func (g *Game) View(seat int32) *TableView {
	if g.play == nil {
		return nil
	}
	view := &TableView{
		Seat:           seat,
		Banker:         g.banker,
		RoundWind:      g.roundWind,
		RoundNumber:    g.roundNumber,
		Honba:          g.honba,
		RiichiSticks:   g.riichiSticks,
		Scores:         g.Scores(),
		HandTiles:      g.play.GetPlayData(seat).GetHandTiles(),
		Melds:          make([][]Meld, SeatCount),
		Discards:       make([][]Tile, SeatCount),
		Ting:           make([]bool, SeatCount),
		CurSeat:        g.play.GetCurSeat(),
		CurTile:        g.play.GetCurTile(),
		RestCount:      g.play.dealer.GetRestCount(),
		DoraIndicators: g.play.dealer.DoraIndicators(),
	}
	for i := int32(0); i < SeatCount; i++ {
		pd := g.play.GetPlayData(i)
		view.Melds[i] = slices.Clone(pd.GetMelds())
		view.Discards[i] = pd.GetOutTiles()
		view.Ting[i] = pd.IsTing()
	}
	return view
}

// RunStrategies 以各座位的策略驱动一局直至结算
func (g *Game) RunStrategies(strategies []Strategy) error {
	for g.phase == PhasePlaying {
		acted := false
		for _, seat := range g.PendingSeats() {
			opts := g.LegalOperates(seat)
			if opts == nil {
				continue
			}
			act := strategies[seat].ChooseAction(g.View(seat), opts)
			if act == nil {
				act = &Action{Seat: seat, Operate: OperatePass}
			}
			if err := g.OnPlayerAction(seat, act); err != nil {
				return err
			}
			acted = true
			break
		}
		if !acted {
			break
		}
	}
	return nil
}
