package riichi

import "fmt"

// IState 牌局内的一个等待点, 由外部驱动输入
type IState interface {
	OnEnter()
	OnPlayerAction(seat int32, act *Action) error
	OperatesFor(seat int32) *Operates
}

// stateDiscard 本家行牌: 摸牌后等待打牌/自摸/杠/立直/九种九牌
type stateDiscard struct {
	game *Game
	draw bool // 进入时是否先摸牌
	opts *Operates
}

func newStateDiscard(game *Game, draw bool) *stateDiscard {
	return &stateDiscard{game: game, draw: draw}
}

func (s *stateDiscard) OnEnter() {
	p := s.game.play
	if s.draw {
		if tile := p.Draw(); tile == TileNull {
			s.game.onRyuukyoku(RyuukyokuExhaustive)
			return
		}
	}
	s.opts = p.SelfOperates()
}

func (s *stateDiscard) OperatesFor(seat int32) *Operates {
	if seat != s.game.play.GetCurSeat() {
		return nil
	}
	return s.opts
}

func (s *stateDiscard) OnPlayerAction(seat int32, act *Action) error {
	p := s.game.play
	if seat != p.GetCurSeat() {
		return fmt.Errorf("%w: seat %d not active", ErrIllegalAction, seat)
	}
	if !s.opts.HasOperate(act.Operate) {
		return fmt.Errorf("%w: operate %s", ErrIllegalAction, OperateNames[act.Operate])
	}

	switch act.Operate {
	case OperateDiscard:
		if !p.Discard(act.Tile) {
			return fmt.Errorf("%w: discard %v", ErrIllegalAction, act.Tile)
		}
		s.game.afterDiscard()
	case OperateRiichi:
		if !p.Ting(act.Tile) {
			return fmt.Errorf("%w: riichi with %v", ErrIllegalAction, act.Tile)
		}
		s.game.afterDiscard()
	case OperateHu:
		s.game.onZimo(seat)
	case OperateKon:
		return s.onKon(act.Tile)
	case OperateAbort:
		s.game.onRyuukyoku(RyuukyokuKyuushu)
	default:
		return fmt.Errorf("%w: operate %s", ErrIllegalAction, OperateNames[act.Operate])
	}
	return nil
}

func (s *stateDiscard) onKon(tile Tile) error {
	p := s.game.play
	pd := p.GetPlayData(p.GetCurSeat())
	switch {
	case pd.canKon(tile, KonTypeAn):
		if !p.AnKon(tile) {
			return fmt.Errorf("%w: ankan %v", ErrIllegalAction, tile)
		}
		s.game.SetNextState(newStateDiscard(s.game, true))
	case pd.canKon(tile, KonTypeBu):
		claims, ok := p.TryBuKon(tile)
		if !ok {
			return fmt.Errorf("%w: bukan %v", ErrIllegalAction, tile)
		}
		if len(claims) > 0 {
			s.game.SetNextState(newStateWait(s.game, claims, true))
		} else {
			s.game.SetNextState(newStateDiscard(s.game, true))
		}
	default:
		return fmt.Errorf("%w: kon %v", ErrIllegalAction, tile)
	}
	return nil
}

// stateWait 等待各家响应出牌或抢杠
type stateWait struct {
	game    *Game
	claims  map[int32]*Operates
	subs    map[int32]*Action
	chankan bool
}

func newStateWait(game *Game, claims map[int32]*Operates, chankan bool) *stateWait {
	return &stateWait{
		game:    game,
		claims:  claims,
		subs:    make(map[int32]*Action),
		chankan: chankan,
	}
}

func (s *stateWait) OnEnter() {}

func (s *stateWait) OperatesFor(seat int32) *Operates {
	if _, ok := s.subs[seat]; ok {
		return nil
	}
	return s.claims[seat]
}

// PendingSeats 尚未响应的座位
func (s *stateWait) PendingSeats() []int32 {
	var res []int32
	for seat := range s.claims {
		if _, ok := s.subs[seat]; !ok {
			res = append(res, seat)
		}
	}
	return res
}

func (s *stateWait) OnPlayerAction(seat int32, act *Action) error {
	opts, ok := s.claims[seat]
	if !ok {
		return fmt.Errorf("%w: seat %d has no claim", ErrIllegalAction, seat)
	}
	if _, ok := s.subs[seat]; ok {
		return fmt.Errorf("%w: seat %d already responded", ErrIllegalAction, seat)
	}
	if !opts.HasOperate(act.Operate) && act.Operate != OperatePass {
		return fmt.Errorf("%w: operate %s", ErrIllegalAction, OperateNames[act.Operate])
	}
	s.subs[seat] = act
	if len(s.subs) == len(s.claims) {
		s.resolve()
	}
	return nil
}

func (s *stateWait) resolve() {
	p := s.game.play

	var huSeats []int32
	best := OperateNone
	var bestSeat int32 = SeatNull
	var bestAct *Action
	for seat, act := range s.subs {
		if act.Operate == OperateHu {
			huSeats = append(huSeats, seat)
			continue
		}
		if s.claims[seat].HasOperate(OperateHu) {
			p.PassHu(seat)
		}
		if claimPriority(act.Operate) > claimPriority(best) {
			best, bestSeat, bestAct = act.Operate, seat, act
		}
	}

	if len(huSeats) > 0 {
		if len(huSeats) > s.game.rule.MaxRonWinners {
			s.game.onRyuukyoku(RyuukyokuSancha)
			return
		}
		if s.chankan {
			s.game.onChankan(huSeats)
		} else {
			s.game.onRon(huSeats)
		}
		return
	}

	if s.chankan {
		// 全员过, 补杠落定
		p.CompleteBuKon()
		s.game.SetNextState(newStateDiscard(s.game, true))
		return
	}

	switch best {
	case OperateKon:
		if p.ZhiKon(bestSeat) {
			s.game.SetNextState(newStateDiscard(s.game, true))
			return
		}
	case OperatePon:
		if p.Pon(bestSeat) {
			s.game.SetNextState(newStateDiscard(s.game, false))
			return
		}
	case OperateChow:
		if p.Chow(bestSeat, bestAct.Extra) {
			s.game.SetNextState(newStateDiscard(s.game, false))
			return
		}
	}

	s.game.afterAllPass()
}
