package riichi

import (
	"fmt"
	"strings"
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)    // 无效牌
	TileZhong Tile = MakeTile(ColorDragon, 0) // 中
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileBai   Tile = MakeTile(ColorDragon, 2) // 白
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
)

var WindTiles = [4]Tile{TileDong, TileNan, TileXi, TileBei}
var DragonTiles = [3]Tile{TileZhong, TileFa, TileBai}

// 幺九牌
var OrphanTiles = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	TileDong, TileNan, TileXi, TileBei,
	TileBai, TileFa, TileZhong,
}

const flagNormal = 0x1
const flagRed = 0x2 // 赤宝牌

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | flagNormal)
}

func MakeRedTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | flagNormal | flagRed)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsRed() bool {
	return t.IsValid() && t.Flag()&flagRed != 0
}

// Normal 去掉赤宝标记后的同名牌
func (t Tile) Normal() Tile {
	if !t.IsValid() {
		return t
	}
	return t &^ flagRed
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsWind() bool {
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsOrphan() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张牌
	return t.IsSuit() && !t.IsTerminal()
}

// Index 34种牌的序号
func (t Tile) Index() int {
	return SEQ_BEGIN_BY_COLOR[t.Color()] + t.Point()
}

func TileFromIndex(idx int) Tile {
	for c := ColorEnd - 1; c >= ColorBegin; c-- {
		if idx >= SEQ_BEGIN_BY_COLOR[c] {
			return MakeTile(c, idx-SEQ_BEGIN_BY_COLOR[c])
		}
	}
	return TileNull
}

// DoraFromIndicator 指示牌对应的宝牌
func DoraFromIndicator(ind Tile) Tile {
	c, p := ind.Normal().Info()
	if c == ColorDragon {
		// 白->发->中->白
		return MakeTile(c, (p+2)%3)
	}
	return MakeTile(c, (p+1)%PointCountByColor[c])
}

var colorBySuit = map[byte]EColor{'m': ColorCharacter, 's': ColorBamboo, 'p': ColorDot}
var suitByColor = [ColorEnd]byte{'m', 's', 'p', 'z', 'z'}

// 字牌序号: 1z东 2z南 3z西 4z北 5z白 6z发 7z中
var honorByDigit = [8]Tile{TileNull, TileDong, TileNan, TileXi, TileBei, TileBai, TileFa, TileZhong}
var digitByDragon = [3]byte{'7', '6', '5'}

func (t Tile) String() string {
	if !t.IsValid() {
		return "??"
	}
	c, p := t.Info()
	switch {
	case t.IsRed():
		return "0" + string(suitByColor[c])
	case c == ColorWind:
		return fmt.Sprintf("%dz", p+1)
	case c == ColorDragon:
		return string(digitByDragon[p]) + "z"
	default:
		return fmt.Sprintf("%d%c", p+1, suitByColor[c])
	}
}

func TilesString(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}

// ParseTile 解析单张牌, 如"5m" "3z", "0m"为赤五万
func ParseTile(s string) (Tile, error) {
	if len(s) != 2 {
		return TileNull, fmt.Errorf("%w: tile %q", ErrMalformedInput, s)
	}
	d, suit := s[0], s[1]
	if d < '0' || d > '9' {
		return TileNull, fmt.Errorf("%w: tile %q", ErrMalformedInput, s)
	}
	if suit == 'z' {
		if d < '1' || d > '7' {
			return TileNull, fmt.Errorf("%w: tile %q", ErrMalformedInput, s)
		}
		return honorByDigit[d-'0'], nil
	}
	color, ok := colorBySuit[suit]
	if !ok {
		return TileNull, fmt.Errorf("%w: tile %q", ErrMalformedInput, s)
	}
	if d == '0' {
		return MakeRedTile(color, 4), nil
	}
	return MakeTile(color, int(d-'1')), nil
}

// ParseTiles 解析牌谱串, 如"123m55z0p"
func ParseTiles(s string) ([]Tile, error) {
	var digits []byte
	var res []Tile
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			digits = append(digits, ch)
			continue
		}
		if len(digits) == 0 {
			return nil, fmt.Errorf("%w: tiles %q", ErrMalformedInput, s)
		}
		for _, d := range digits {
			t, err := ParseTile(string([]byte{d, ch}))
			if err != nil {
				return nil, err
			}
			res = append(res, t)
		}
		digits = digits[:0]
	}
	if len(digits) != 0 {
		return nil, fmt.Errorf("%w: tiles %q", ErrMalformedInput, s)
	}
	return res, nil
}

// MustTiles 仅用于测试与配置常量
func MustTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tile(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

func makeTiles(t Tile, count int) []Tile {
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
