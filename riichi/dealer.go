package riichi

import (
	"fmt"
	"math/rand"
)

// NewWall 生成洗好的136张牌山
func NewWall(rule *Rule) []Tile {
	wall := make([]Tile, 0, TileCountWall)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			tile := MakeTile(c, p)
			for i := 0; i < 4; i++ {
				if rule.UseRedFives && c <= ColorDot && p == 4 && i == 0 {
					wall = append(wall, MakeRedTile(c, p))
					continue
				}
				wall = append(wall, tile)
			}
		}
	}
	rand.Shuffle(len(wall), func(i, j int) {
		wall[i], wall[j] = wall[j], wall[i]
	})
	return wall
}

// Dealer 牌山, 活牌122张加王牌14张
type Dealer struct {
	tiles     []Tile // 可摸区
	deadWall  []Tile // 0-3岭上 4-8宝牌指示 9-13里宝指示
	rinshan   int
	doraShown int
}

func NewDealer(wall []Tile) (*Dealer, error) {
	if len(wall) != TileCountWall {
		return nil, fmt.Errorf("%w: wall size %d", ErrMalformedInput, len(wall))
	}
	counts := tileCounts(wall)
	for i, c := range counts {
		if c != 4 {
			return nil, fmt.Errorf("%w: tile %v count %d", ErrMalformedInput, TileFromIndex(i), c)
		}
	}
	live := TileCountWall - TileCountDeadWall
	return &Dealer{
		tiles:     wall[:live],
		deadWall:  wall[live:],
		doraShown: 1,
	}, nil
}

func (d *Dealer) Deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, d.tiles[:count])
	d.tiles = d.tiles[count:]
	return tiles
}

// DrawTile 摸牌, 牌山摸完返回TileNull
func (d *Dealer) DrawTile() Tile {
	if len(d.tiles) == 0 {
		return TileNull
	}
	tile := d.tiles[0]
	d.tiles = d.tiles[1:]
	return tile
}

// DrawRinshan 开杠后摸岭上牌, 尾牌移入王牌补位
func (d *Dealer) DrawRinshan() Tile {
	if d.rinshan >= TileCountRinshan || len(d.tiles) == 0 {
		return TileNull
	}
	tile := d.deadWall[d.rinshan]
	d.rinshan++
	d.deadWall = append(d.deadWall, d.tiles[len(d.tiles)-1])
	d.tiles = d.tiles[:len(d.tiles)-1]
	return tile
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tiles))
}

// RevealDora 开杠时翻新指示牌
func (d *Dealer) RevealDora() {
	if d.doraShown < 5 {
		d.doraShown++
	}
}

func (d *Dealer) DoraIndicators() []Tile {
	return d.deadWall[TileCountRinshan : TileCountRinshan+d.doraShown]
}

func (d *Dealer) UraIndicators() []Tile {
	return d.deadWall[TileCountRinshan+5 : TileCountRinshan+5+d.doraShown]
}
