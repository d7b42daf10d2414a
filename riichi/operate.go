package riichi

const (
	OperateNone    int32 = 0
	OperatePass    int32 = 1 << (iota - 1) // 过
	OperateChow                            // 吃
	OperatePon                             // 碰
	OperateKon                             // 杠
	OperateRiichi                          // 立直
	OperateHu                              // 和
	OperateDiscard                         // 出牌
	OperateAbort                           // 九种九牌流局
)

var OperateNames = map[int32]string{
	OperatePass:    "Pass",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateRiichi:  "Riichi",
	OperateHu:      "Win",
	OperateDiscard: "Discard",
	OperateAbort:   "Abort",
}

type Operates struct {
	Value int32
}

func NewOperates(ops ...int32) *Operates {
	o := &Operates{}
	for _, op := range ops {
		o.AddOperate(op)
	}
	return o
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Empty() bool {
	return o.Value == 0 || o.Value == OperatePass
}

func (o *Operates) Reset() {
	o.Value = 0
}

// claimPriority 抢牌优先级, 大者先
func claimPriority(op int32) int {
	switch op {
	case OperateHu:
		return 3
	case OperateKon, OperatePon:
		return 2
	case OperateChow:
		return 1
	default:
		return 0
	}
}
