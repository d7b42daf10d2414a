package riichi

import (
	"fmt"

	"github.com/spf13/viper"
)

// 人和处理方式
const (
	RenhouOff     = "off"
	RenhouTwoHan  = "2han"
	RenhouYakuman = "yakuman"
)

type Rule struct {
	MaxRonWinners       int    // 超过则流局
	RenhouPolicy        string // off/2han/yakuman
	PinfuRequireRyanmen bool
	ChantaOpenHan       int32
	ChantaClosedHan     int32
	JunchanOpenHan      int32
	JunchanClosedHan    int32
	KiriageMangan       bool
	TobiEnabled         bool
	WestExtension       bool
	AgariYame           bool
	RoundWinds          int32 // 1东风战 2半庄
	InitScore           int64
	ReturnScore         int64
	RiichiBet           int64
	HonbaUnit           int64 // 每本场总加点
	NotenBappuTotal     int64
	UseRedFives         bool
	UraDoraEnabled      bool
}

func NewRule() *Rule {
	return &Rule{
		MaxRonWinners:       3,
		RenhouPolicy:        RenhouTwoHan,
		PinfuRequireRyanmen: true,
		ChantaOpenHan:       1,
		ChantaClosedHan:     2,
		JunchanOpenHan:      2,
		JunchanClosedHan:    3,
		KiriageMangan:       false,
		TobiEnabled:         true,
		WestExtension:       true,
		AgariYame:           true,
		RoundWinds:          2,
		InitScore:           25000,
		ReturnScore:         30000,
		RiichiBet:           1000,
		HonbaUnit:           300,
		NotenBappuTotal:     3000,
		UseRedFives:         true,
		UraDoraEnabled:      true,
	}
}

// LoadRule 从配置文件读取规则, 缺省项保持默认值
func LoadRule(file string) (*Rule, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule config: %w", err)
	}
	r := NewRule()
	r.load(v)
	return r, nil
}

func (r *Rule) load(v *viper.Viper) {
	v.SetDefault("max_ron_winners", r.MaxRonWinners)
	v.SetDefault("renhou_policy", r.RenhouPolicy)
	v.SetDefault("pinfu_require_ryanmen", r.PinfuRequireRyanmen)
	v.SetDefault("chanta_open_han", r.ChantaOpenHan)
	v.SetDefault("chanta_closed_han", r.ChantaClosedHan)
	v.SetDefault("junchan_open_han", r.JunchanOpenHan)
	v.SetDefault("junchan_closed_han", r.JunchanClosedHan)
	v.SetDefault("kiriage_mangan", r.KiriageMangan)
	v.SetDefault("tobi_enabled", r.TobiEnabled)
	v.SetDefault("west_round_extension", r.WestExtension)
	v.SetDefault("agari_yame", r.AgariYame)
	v.SetDefault("round_winds", r.RoundWinds)
	v.SetDefault("init_score", r.InitScore)
	v.SetDefault("return_score", r.ReturnScore)
	v.SetDefault("riichi_bet", r.RiichiBet)
	v.SetDefault("honba_unit", r.HonbaUnit)
	v.SetDefault("noten_bappu_total", r.NotenBappuTotal)
	v.SetDefault("use_red_fives", r.UseRedFives)
	v.SetDefault("ura_dora_enabled", r.UraDoraEnabled)

	r.MaxRonWinners = v.GetInt("max_ron_winners")
	r.RenhouPolicy = v.GetString("renhou_policy")
	r.PinfuRequireRyanmen = v.GetBool("pinfu_require_ryanmen")
	r.ChantaOpenHan = v.GetInt32("chanta_open_han")
	r.ChantaClosedHan = v.GetInt32("chanta_closed_han")
	r.JunchanOpenHan = v.GetInt32("junchan_open_han")
	r.JunchanClosedHan = v.GetInt32("junchan_closed_han")
	r.KiriageMangan = v.GetBool("kiriage_mangan")
	r.TobiEnabled = v.GetBool("tobi_enabled")
	r.WestExtension = v.GetBool("west_round_extension")
	r.AgariYame = v.GetBool("agari_yame")
	r.RoundWinds = v.GetInt32("round_winds")
	r.InitScore = v.GetInt64("init_score")
	r.ReturnScore = v.GetInt64("return_score")
	r.RiichiBet = v.GetInt64("riichi_bet")
	r.HonbaUnit = v.GetInt64("honba_unit")
	r.NotenBappuTotal = v.GetInt64("noten_bappu_total")
	r.UseRedFives = v.GetBool("use_red_fives")
	r.UraDoraEnabled = v.GetBool("ura_dora_enabled")

	if r.MaxRonWinners < 1 {
		r.MaxRonWinners = 1
	}
	if r.MaxRonWinners > 3 {
		r.MaxRonWinners = 3
	}
}
