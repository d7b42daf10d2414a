package riichi

import "slices"

type PlayData struct {
	play        *Play
	seat        int32
	handTiles   []Tile
	outTiles    []Tile
	melds       []Meld
	callDataMap map[Tile][]Tile // 打牌->听牌(打牌前)
	callData    []Tile          // 打牌后的听牌
	ting        bool            // 已立直
	ippatsu     bool
	tempFuriten bool
	permFuriten bool
}

func NewPlayData(p *Play, seat int32) *PlayData {
	return &PlayData{
		play:        p,
		seat:        seat,
		handTiles:   make([]Tile, 0, TileCountInitBanker),
		outTiles:    make([]Tile, 0),
		melds:       make([]Meld, 0),
		callDataMap: make(map[Tile][]Tile),
		callData:    make([]Tile, 0),
	}
}

func (p *PlayData) GetSeat() int32 {
	return p.seat
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetOutTiles() []Tile {
	return p.outTiles
}

func (p *PlayData) GetMelds() []Meld {
	return p.melds
}

func (p *PlayData) IsTing() bool {
	return p.ting
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) PutOutTile(tile Tile) {
	p.outTiles = append(p.outTiles, tile)
}

func (p *PlayData) RemoveOutTile() {
	if len(p.outTiles) > 0 {
		p.outTiles = p.outTiles[:len(p.outTiles)-1]
	}
}

// Discard 打出一张手牌并刷新听牌
func (p *PlayData) Discard(tile Tile) bool {
	if slices.Contains(p.handTiles, tile) {
		p.handTiles = RemoveElements(p.handTiles, tile, 1)
	} else if containsTile(p.handTiles, tile) {
		p.handTiles, _ = removeTiles(p.handTiles, tile, 1)
	} else {
		return false
	}
	p.PutOutTile(tile)
	p.callData = slices.Clone(p.callDataMap[tile.Normal()])
	return true
}

// refreshCallMap 手牌14张形时计算打牌->听牌表
func (p *PlayData) refreshCallMap() {
	p.callDataMap = CheckCall(p.handTiles, p.melds)
}

func (p *PlayData) canTing(tile Tile) bool {
	_, ok := p.callDataMap[tile.Normal()]
	return ok
}

// waits 当前13张形手牌的听牌
func (p *PlayData) waits() []Tile {
	if p.ting {
		return p.callData
	}
	return WaitingTiles(p.handTiles, p.melds)
}

// isFuriten 振听: 听牌在自家牌河, 或同巡/立直振听
func (p *PlayData) isFuriten() bool {
	if p.permFuriten || p.tempFuriten {
		return true
	}
	for _, w := range p.waits() {
		if containsTile(p.outTiles, w) {
			return true
		}
	}
	return false
}

// passHu 放弃和牌机会, 立直下为永久振听
func (p *PlayData) passHu() {
	p.tempFuriten = true
	if p.ting {
		p.permFuriten = true
	}
}

func (p *PlayData) IsMenQin() bool {
	for _, m := range p.melds {
		if m.Kind != GroupTypeAnKon {
			return false
		}
	}
	return true
}

func (p *PlayData) canPon(tile Tile) bool {
	return countTiles(p.handTiles, tile) >= 2
}

func (p *PlayData) canChow(tile Tile) bool {
	if !tile.IsSuit() {
		return false
	}
	for left := tile.Point() - 2; left <= tile.Point(); left++ {
		if left < 0 || left > 6 {
			continue
		}
		if _, ok := p.tryChow(tile, MakeTile(tile.Color(), left)); ok {
			return true
		}
	}
	return false
}

// tryChow 返回组成顺子需要从手牌移除的两张
func (p *PlayData) tryChow(curTile, leftTile Tile) ([]Tile, bool) {
	color, point := leftTile.Normal().Info()
	if color != curTile.Color() || !curTile.IsSuit() {
		return nil, false
	}
	d := curTile.Point() - point
	if d < 0 || d > 2 || point > 6 {
		return nil, false
	}
	tiles := make([]Tile, 0, 2)
	for i := 0; i < 3; i++ {
		t := MakeTile(color, point+i)
		if point+i == curTile.Point() {
			continue
		}
		if !containsTile(p.handTiles, t) {
			return nil, false
		}
		tiles = append(tiles, t)
	}
	return tiles, true
}

func (p *PlayData) canKon(tile Tile, konType KonType) bool {
	count := countTiles(p.handTiles, tile)
	switch konType {
	case KonTypeZhi:
		return count == 3
	case KonTypeAn:
		if count != 4 {
			return false
		}
		if p.ting {
			return p.canKonAfterTing(tile)
		}
		return true
	case KonTypeBu:
		return count >= 1 && p.hasPon(tile)
	default:
		return false
	}
}

// canKonAfterTing 立直后暗杠仅限刚摸的牌且不改变听牌
func (p *PlayData) canKonAfterTing(tile Tile) bool {
	if len(p.handTiles) == 0 || p.handTiles[len(p.handTiles)-1].Normal() != tile.Normal() {
		return false
	}
	rest, _ := removeTiles(p.handTiles, tile, 4)
	melds := append(slices.Clone(p.melds), Meld{Kind: GroupTypeAnKon, Tile: tile.Normal(), From: SeatNull, Called: TileNull})
	return equalTileSets(WaitingTiles(rest, melds), p.callData)
}

// selfKonTiles 自家回合可杠的牌
func (p *PlayData) selfKonTiles() []Tile {
	var res []Tile
	for _, t := range distinctTiles(p.handTiles) {
		if p.canKon(t, KonTypeAn) || p.canKon(t, KonTypeBu) {
			res = append(res, t)
		}
	}
	return res
}

func (p *PlayData) hasPon(tile Tile) bool {
	for _, m := range p.melds {
		if m.Kind == GroupTypePon && m.Tile == tile.Normal() {
			return true
		}
	}
	return false
}

func (p *PlayData) chow(curTile, leftTile Tile, from int32) bool {
	tiles, ok := p.tryChow(curTile, leftTile)
	if !ok {
		log.Error("player cannot chow")
		return false
	}
	var reds int32
	for _, t := range tiles {
		var r int32
		p.handTiles, r = removeTiles(p.handTiles, t, 1)
		reds += r
	}
	if curTile.IsRed() {
		reds++
	}
	p.melds = append(p.melds, Meld{
		Kind:   GroupTypeChow,
		Tile:   leftTile.Normal(),
		From:   from,
		Called: curTile,
		Reds:   reds,
	})
	return true
}

func (p *PlayData) pon(tile Tile, from int32) bool {
	if !p.canPon(tile) {
		log.Error("player cannot pon")
		return false
	}
	var reds int32
	p.handTiles, reds = removeTiles(p.handTiles, tile, 2)
	if tile.IsRed() {
		reds++
	}
	p.melds = append(p.melds, Meld{
		Kind:   GroupTypePon,
		Tile:   tile.Normal(),
		From:   from,
		Called: tile,
		Reds:   reds,
	})
	return true
}

func (p *PlayData) kon(tile Tile, from int32, konType KonType) bool {
	if !p.canKon(tile, konType) {
		log.Error("player cannot kon")
		return false
	}
	switch konType {
	case KonTypeZhi:
		var reds int32
		p.handTiles, reds = removeTiles(p.handTiles, tile, 3)
		if tile.IsRed() {
			reds++
		}
		p.melds = append(p.melds, Meld{
			Kind:   GroupTypeZhiKon,
			Tile:   tile.Normal(),
			From:   from,
			Called: tile,
			Reds:   reds,
		})
	case KonTypeAn:
		var reds int32
		p.handTiles, reds = removeTiles(p.handTiles, tile, 4)
		p.melds = append(p.melds, Meld{
			Kind:   GroupTypeAnKon,
			Tile:   tile.Normal(),
			From:   SeatNull,
			Called: TileNull,
			Reds:   reds,
		})
	case KonTypeBu:
		var reds int32
		p.handTiles, reds = removeTiles(p.handTiles, tile, 1)
		for i, m := range p.melds {
			if m.Kind == GroupTypePon && m.Tile == tile.Normal() {
				p.melds[i].Kind = GroupTypeBuKon
				p.melds[i].Reds += reds
				break
			}
		}
	default:
		return false
	}
	return true
}

// countRedsAll 手牌与副露中的赤牌合计
func (p *PlayData) countRedsAll() int32 {
	return int32(countReds(p.handTiles)) + countMeldReds(p.melds)
}
