package riichi

const (
	SeatNull  int32 = -1
	SeatCount int32 = 4
)

const (
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	TileCountWall       = 136
	TileCountDeadWall   = 14
	TileCountRinshan    = 4
	TileKindCount       = 34
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SEQ_BEGIN_BY_COLOR = [ColorEnd]int{0, 9, 18, 27, 31}

// 风位: 0东 1南 2西 3北
const (
	WindEast int32 = iota
	WindSouth
	WindWest
	WindNorth
)

type EHandStyle int

const (
	HandNone            EHandStyle = iota // 无特殊风格
	HandNormal                            // 普通手牌
	HandSevenPairs                        // 七对
	HandThirteenOrphans                   // 十三幺
)

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi
	KonTypeAn
	KonTypeBu
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
	GroupTypePair
)

// 听牌型
type EWaitKind int

const (
	WaitRyanmen EWaitKind = iota
	WaitKanchan
	WaitPenchan
	WaitTanki
	WaitShanpon
)

type EPhase int

const (
	PhaseInit EPhase = iota
	PhaseDealing
	PhasePlaying
	PhaseWinning
	PhaseRyuukyoku
	PhaseEnded
)

// 流局类型
type ERyuukyoku int

const (
	RyuukyokuNone       ERyuukyoku = iota
	RyuukyokuExhaustive            // 荒牌流局
	RyuukyokuKyuushu               // 九种九牌
	RyuukyokuSuufon                // 四风连打
	RyuukyokuSuukantsu             // 四杠散了
	RyuukyokuSuucha                // 四家立直
	RyuukyokuSancha                // 三家和了
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// SeatWind 座位相对庄家的门风
func SeatWind(seat, banker int32) int32 {
	return (seat - banker + SeatCount) % SeatCount
}

type Action struct {
	Seat    int32
	From    int32
	Operate int32
	Tile    Tile
	Extra   Tile // 吃牌时为顺子最小牌
}
