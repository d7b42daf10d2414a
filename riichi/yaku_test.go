package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func hasYaku(r *riichi.HuResult, y riichi.EYaku) bool {
	for _, yr := range r.Yakus {
		if yr.Yaku == y {
			return true
		}
	}
	return false
}

func TestCheckHuOrdinary(t *testing.T) {
	type Case struct {
		tiles    string
		winTile  string
		selfDraw bool
		melds    []riichi.Meld
		yakus    []riichi.EYaku
		han      int32
		fu       int32
	}
	testCases := []Case{
		{
			// 平和自摸
			tiles:    "234m567m789p456s88s",
			winTile:  "6s",
			selfDraw: true,
			yakus:    []riichi.EYaku{riichi.YakuMenzenTsumo, riichi.YakuPinfu},
			han:      2,
			fu:       20,
		},
		{
			// 副露断幺
			tiles:   "234m567m678m55s",
			winTile: "8m",
			melds: []riichi.Meld{
				{Kind: riichi.GroupTypePon, Tile: riichi.MustTiles("3p")[0], From: 2},
			},
			yakus: []riichi.EYaku{riichi.YakuTanyao},
			han:   1,
			fu:    30,
		},
		{
			// 中加圈风对子的符
			tiles:   "123m456p789s777z11z",
			winTile: "3m",
			yakus:   []riichi.EYaku{riichi.YakuChun},
			han:     1,
			fu:      50,
		},
		{
			// 对对三暗刻加白
			tiles:   "111m222s333p555z44s",
			winTile: "3p",
			yakus:   []riichi.EYaku{riichi.YakuToitoi, riichi.YakuSanankou, riichi.YakuHaku},
			han:     5,
		},
		{
			// 二杯口压七对
			tiles:   "112233m445566p77s",
			winTile: "7s",
			yakus:   []riichi.EYaku{riichi.YakuRyanpeikou},
			han:     3,
		},
		{
			// 混一色一气加圈风
			tiles:   "123456789m111z99m",
			winTile: "9m",
			yakus:   []riichi.EYaku{riichi.YakuHonitsu, riichi.YakuIttsu, riichi.YakuRoundWind},
			han:     6,
		},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			data := &riichi.HuData{
				Tiles: riichi.MustTiles(tc.tiles),
				Melds: tc.melds,
				Ctx: riichi.WinContext{
					Seat:             2,
					Banker:           0,
					RoundWind:        riichi.WindEast,
					SelfDraw:         tc.selfDraw,
					WinTile:          riichi.MustTiles(tc.winTile)[0],
					Concealed:        len(tc.melds) == 0,
					TurnsAfterRiichi: -1,
				},
			}
			result, ok := data.CheckHu()
			if !ok {
				t.Fatalf("CheckHu(%s) failed", tc.tiles)
			}
			if len(result.Yakus) != len(tc.yakus) {
				t.Errorf("yaku count = %d, want %d: %+v", len(result.Yakus), len(tc.yakus), result.Yakus)
			}
			for _, y := range tc.yakus {
				if !hasYaku(result, y) {
					t.Errorf("missing yaku %s", riichi.YakuNames[y])
				}
			}
			if result.Han != tc.han {
				t.Errorf("han = %d, want %d", result.Han, tc.han)
			}
			if tc.fu != 0 && result.Fu != tc.fu {
				t.Errorf("fu = %d, want %d", result.Fu, tc.fu)
			}
		})
	}
}

func TestCheckHuChiitoi(t *testing.T) {
	data := &riichi.HuData{
		Tiles: riichi.MustTiles("1133557799m11s77z"),
		Ctx: riichi.WinContext{
			Seat: 1, WinTile: riichi.MustTiles("7z")[0],
			Concealed: true, TurnsAfterRiichi: -1,
		},
	}
	result, ok := data.CheckHu()
	if !ok {
		t.Fatal("chiitoi not recognized")
	}
	if !hasYaku(result, riichi.YakuChiitoitsu) || result.Han != 2 || result.Fu != 25 {
		t.Errorf("chiitoi = %d han %d fu, want 2 han 25 fu", result.Han, result.Fu)
	}
}

func TestCheckHuRiichiIppatsuTsumo(t *testing.T) {
	data := &riichi.HuData{
		Tiles: riichi.MustTiles("234m567m789p456s88s"),
		Ctx: riichi.WinContext{
			Seat: 1, SelfDraw: true, WinTile: riichi.MustTiles("6s")[0],
			Concealed: true, Riichi: true, TurnsAfterRiichi: 0,
		},
	}
	result, ok := data.CheckHu()
	if !ok {
		t.Fatal("CheckHu failed")
	}
	for _, y := range []riichi.EYaku{riichi.YakuRiichi, riichi.YakuIppatsu, riichi.YakuMenzenTsumo, riichi.YakuPinfu} {
		if !hasYaku(result, y) {
			t.Errorf("missing yaku %s", riichi.YakuNames[y])
		}
	}
	if result.Han != 4 {
		t.Errorf("han = %d, want 4", result.Han)
	}
}

func TestCheckHuYakuman(t *testing.T) {
	type Case struct {
		tiles   string
		winTile string
		yaku    riichi.EYaku
		units   int32
	}
	testCases := []Case{
		{"19m19s19p1234567z1m", "1m", riichi.YakuKokushiJuusan, 2},
		{"19m19s19p1234566z7z", "7z", riichi.YakuKokushi, 1},
		{"555z666z777z123m99m", "9m", riichi.YakuDaisangen, 1},
		// 大四喜复合字一色与四暗刻单骑
		{"111z222z333z444z55z", "5z", riichi.YakuDaisuushi, 4},
		{"1112345678999m5m", "5m", riichi.YakuChuurenPure, 2},
		{"11123445678999m", "9m", riichi.YakuChuuren, 1},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			data := &riichi.HuData{
				Tiles: riichi.MustTiles(tc.tiles),
				Ctx: riichi.WinContext{
					Seat: 3, WinTile: riichi.MustTiles(tc.winTile)[0],
					Concealed: true, TurnsAfterRiichi: -1,
				},
			}
			result, ok := data.CheckHu()
			if !ok {
				t.Fatalf("CheckHu(%s) failed", tc.tiles)
			}
			if !hasYaku(result, tc.yaku) {
				t.Errorf("missing yaku %s: %+v", riichi.YakuNames[tc.yaku], result.Yakus)
			}
			if result.Yakuman != tc.units {
				t.Errorf("yakuman units = %d, want %d", result.Yakuman, tc.units)
			}
		})
	}
}

func TestCheckHuSuuankouTanki(t *testing.T) {
	data := &riichi.HuData{
		Tiles: riichi.MustTiles("111m444m777s222p33p"),
		Ctx: riichi.WinContext{
			Seat: 1, SelfDraw: true, WinTile: riichi.MustTiles("3p")[0],
			Concealed: true, TurnsAfterRiichi: -1,
		},
	}
	result, ok := data.CheckHu()
	if !ok {
		t.Fatal("CheckHu failed")
	}
	if !hasYaku(result, riichi.YakuSuuankouTanki) || result.Yakuman != 2 {
		t.Errorf("suuankou tanki units = %d, want 2: %+v", result.Yakuman, result.Yakus)
	}
}

func TestCheckHuNoYaku(t *testing.T) {
	// 形听无役不能和
	data := &riichi.HuData{
		Tiles: riichi.MustTiles("234m567m678p345s11s"),
		Melds: nil,
		Ctx: riichi.WinContext{
			Seat: 1, WinTile: riichi.MustTiles("1s")[0],
			Concealed: true, TurnsAfterRiichi: -1,
		},
	}
	if _, ok := data.CheckHu(); ok {
		t.Error("yakuless hand should not win")
	}
}

func TestCheckHuTenhou(t *testing.T) {
	data := &riichi.HuData{
		Tiles: riichi.MustTiles("123m456m789m123p5s5s"),
		Ctx: riichi.WinContext{
			Seat: 0, Banker: 0, SelfDraw: true, FirstTurn: true,
			WinTile: riichi.MustTiles("5s")[0], Concealed: true, TurnsAfterRiichi: -1,
		},
	}
	result, ok := data.CheckHu()
	if !ok {
		t.Fatal("CheckHu failed")
	}
	if !hasYaku(result, riichi.YakuTenhou) || result.Yakuman != 1 {
		t.Errorf("tenhou units = %d: %+v", result.Yakuman, result.Yakus)
	}
}
