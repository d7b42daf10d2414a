package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestWaitingTiles(t *testing.T) {
	type Case struct {
		tiles string
		waits string // 空串为未听
	}
	testCases := []Case{
		{"123m456m789m45p11s", "3p6p"},
		{"123m456m789m444p1s", "1s"},    // 单骑
		{"123m456m789m13p11s", "2p"},    // 坎张
		{"123m456m789m12p11s", "3p"},    // 边张
		{"123m456m789m44p11s", "1s4p"},  // 双碰, 按牌序
		{"1133557799m1122s", ""},        // 14张形不判听
		{"1112345678999m", "123456789m"}, // 九莲九面
		{"19m19s19p1234567z", "19m19s19p12347z6z5z"},
		{"123m456m789m45p12s", ""},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			tiles := riichi.MustTiles(tc.tiles)
			var want []riichi.Tile
			if tc.waits != "" {
				want = riichi.MustTiles(tc.waits)
			}
			got := riichi.WaitingTiles(tiles, nil)
			if riichi.TilesString(got) != riichi.TilesString(want) {
				t.Errorf("WaitingTiles(%s) = %s, want %s",
					tc.tiles, riichi.TilesString(got), riichi.TilesString(want))
			}
		})
	}
}

func TestWaitingTilesWithMelds(t *testing.T) {
	melds := []riichi.Meld{
		{Kind: riichi.GroupTypePon, Tile: riichi.MustTiles("1z")[0], From: 2},
	}
	tiles := riichi.MustTiles("123m456m45p11s")
	got := riichi.WaitingTiles(tiles, melds)
	want := riichi.MustTiles("3p6p")
	if riichi.TilesString(got) != riichi.TilesString(want) {
		t.Errorf("WaitingTiles with meld = %s, want 3p6p", riichi.TilesString(got))
	}
}

func TestCheckCall(t *testing.T) {
	// 打9s后听3p6p, 打4p后不听
	tiles := riichi.MustTiles("123m456m789m45p11s9s")
	callMap := riichi.CheckCall(tiles, nil)
	fourP := riichi.MustTiles("4p")[0]
	nineS := riichi.MustTiles("9s")[0]

	if waits, ok := callMap[nineS]; !ok {
		t.Error("discarding 9s should leave tenpai")
	} else if riichi.TilesString(waits) != "3p6p" {
		t.Errorf("waits after 9s = %s, want 3p6p", riichi.TilesString(waits))
	}
	if _, ok := callMap[fourP]; ok {
		t.Error("discarding 4p should not leave tenpai")
	}
}
