package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestParseTiles(t *testing.T) {
	type Case struct {
		str  string
		want string
	}
	testCases := []Case{
		{"123m", "1m2m3m"},
		{"19m19s19p1234567z", "1m9m1s9s1p9p1z2z3z4z5z6z7z"},
		{"0m55p", "0m5p5p"},
		{"7z", "7z"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			tiles, err := riichi.ParseTiles(tc.str)
			if err != nil {
				t.Fatalf("ParseTiles(%q) error: %v", tc.str, err)
			}
			if got := riichi.TilesString(tiles); got != tc.want {
				t.Errorf("ParseTiles(%q) = %s, want %s", tc.str, got, tc.want)
			}
		})
	}

	if _, err := riichi.ParseTiles("12x"); err == nil {
		t.Error("ParseTiles(12x) should fail")
	}
	if _, err := riichi.ParseTiles("8z"); err == nil {
		t.Error("ParseTiles(8z) should fail")
	}
}

func TestRedFive(t *testing.T) {
	red := riichi.MustTiles("0p")[0]
	if !red.IsRed() {
		t.Error("0p should be red")
	}
	plain := riichi.MustTiles("5p")[0]
	if red.Normal() != plain {
		t.Errorf("Normal(0p) = %v, want %v", red.Normal(), plain)
	}
	if red.Index() != plain.Index() {
		t.Errorf("red and plain 5p should share index")
	}
}

func TestTileKinds(t *testing.T) {
	type Case struct {
		tile     string
		terminal bool
		orphan   bool
		honor    bool
	}
	testCases := []Case{
		{"1m", true, true, false},
		{"9s", true, true, false},
		{"5p", false, false, false},
		{"1z", false, true, true},
		{"7z", false, true, true},
		{"2p", false, false, false},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			tile := riichi.MustTiles(tc.tile)[0]
			if tile.IsTerminal() != tc.terminal {
				t.Errorf("%s IsTerminal = %v", tc.tile, !tc.terminal)
			}
			if tile.IsOrphan() != tc.orphan {
				t.Errorf("%s IsOrphan = %v", tc.tile, !tc.orphan)
			}
			if tile.IsHonor() != tc.honor {
				t.Errorf("%s IsHonor = %v", tc.tile, !tc.honor)
			}
		})
	}
}

func TestTileIndexRoundTrip(t *testing.T) {
	for i := 0; i < riichi.TileKindCount; i++ {
		tile := riichi.TileFromIndex(i)
		if tile.Index() != i {
			t.Errorf("TileFromIndex(%d).Index() = %d", i, tile.Index())
		}
	}
}

func TestDoraFromIndicator(t *testing.T) {
	type Case struct {
		indicator string
		dora      string
	}
	testCases := []Case{
		{"1m", "2m"},
		{"9m", "1m"},
		{"9s", "1s"},
		{"4z", "1z"}, // 北指示东
		{"1z", "2z"},
		{"5z", "6z"}, // 白指示发
		{"6z", "7z"}, // 发指示中
		{"7z", "5z"}, // 中指示白
		{"0p", "6p"}, // 赤五与普通五同样指示
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			ind := riichi.MustTiles(tc.indicator)[0]
			want := riichi.MustTiles(tc.dora)[0]
			if got := riichi.DoraFromIndicator(ind); got != want {
				t.Errorf("DoraFromIndicator(%s) = %v, want %v", tc.indicator, got, want)
			}
		})
	}
}
