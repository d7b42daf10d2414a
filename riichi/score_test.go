package riichi

import (
	"strconv"
	"testing"
)

func TestRoundUp100(t *testing.T) {
	type Case struct {
		in   int64
		want int64
	}
	testCases := []Case{
		{0, 0}, {1, 100}, {320, 400}, {640, 700}, {700, 700}, {2000, 2000},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			if got := roundUp100(tc.in); got != tc.want {
				t.Errorf("roundUp100(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestBasePoints(t *testing.T) {
	type Case struct {
		han     int32
		fu      int32
		yakuman int32
		kiriage bool
		want    int32
	}
	testCases := []Case{
		{han: 1, fu: 40, want: 320},
		{han: 2, fu: 25, want: 400},
		{han: 2, fu: 20, want: 320},
		{han: 3, fu: 60, want: 1920},
		{han: 3, fu: 60, kiriage: true, want: 2000},
		{han: 4, fu: 30, want: 1920},
		{han: 4, fu: 30, kiriage: true, want: 2000},
		{han: 4, fu: 40, want: 2000},
		{han: 5, fu: 30, want: 2000},
		{han: 6, fu: 30, want: 3000},
		{han: 8, fu: 30, want: 4000},
		{han: 11, fu: 30, want: 6000},
		{han: 13, fu: 30, want: 8000},
		{yakuman: 1, want: 2000},
		{yakuman: 2, want: 4000},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			rule := NewRule()
			rule.KiriageMangan = tc.kiriage
			r := &HuResult{Han: tc.han, Fu: tc.fu, Yakuman: tc.yakuman}
			if got := basePoints(r, rule); got != tc.want {
				t.Errorf("basePoints(%d han %d fu) = %d, want %d", tc.han, tc.fu, got, tc.want)
			}
		})
	}
}

func TestScorelatorTsumo(t *testing.T) {
	rule := NewRule()
	sc := newScorelator(rule, 0)

	// 子家平和自摸: 庄家700其余400
	r := &HuResult{Han: 2, Fu: 20}
	res := sc.calculate(r, 1, SeatNull, 0, 0)
	want := []int64{-700, 1500, -400, -400}
	for i, d := range res.Deltas {
		if d != want[i] {
			t.Fatalf("deltas = %v, want %v", res.Deltas, want)
		}
	}

	// 庄家自摸每家700
	res = sc.calculate(r, 0, SeatNull, 0, 0)
	want = []int64{2100, -700, -700, -700}
	for i, d := range res.Deltas {
		if d != want[i] {
			t.Fatalf("dealer deltas = %v, want %v", res.Deltas, want)
		}
	}
}

func TestScorelatorRon(t *testing.T) {
	rule := NewRule()
	sc := newScorelator(rule, 0)

	// 庄家满贯荣和, 两本场
	r := &HuResult{Han: 5, Fu: 30}
	res := sc.calculate(r, 0, 2, 2, 0)
	if res.Deltas[0] != 12600 || res.Deltas[2] != -12600 {
		t.Errorf("dealer ron deltas = %v, want +12600/-12600", res.Deltas)
	}

	// 子家40符1翻荣和带供托
	r = &HuResult{Han: 1, Fu: 40}
	res = sc.calculate(r, 3, 1, 0, 2)
	if res.Deltas[3] != 1300+2000 || res.Deltas[1] != -1300 {
		t.Errorf("ron deltas = %v, want +3300/-1300", res.Deltas)
	}
}

func TestScorelatorHonbaTsumo(t *testing.T) {
	rule := NewRule()
	sc := newScorelator(rule, 0)
	r := &HuResult{Han: 2, Fu: 20}
	res := sc.calculate(r, 1, SeatNull, 1, 0)
	// 一本场每家多付100
	want := []int64{-800, 1800, -500, -500}
	for i, d := range res.Deltas {
		if d != want[i] {
			t.Fatalf("honba tsumo deltas = %v, want %v", res.Deltas, want)
		}
	}
}

func TestNotenPayments(t *testing.T) {
	type Case struct {
		tenpai []bool
		want   []int64
	}
	testCases := []Case{
		{[]bool{true, false, false, false}, []int64{3000, -1000, -1000, -1000}},
		{[]bool{true, true, false, false}, []int64{1500, 1500, -1500, -1500}},
		{[]bool{true, true, true, false}, []int64{1000, 1000, 1000, -3000}},
		{[]bool{true, true, true, true}, []int64{0, 0, 0, 0}},
		{[]bool{false, false, false, false}, []int64{0, 0, 0, 0}},
	}
	sc := newScorelator(NewRule(), 0)
	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			got := sc.notenPayments(tc.tenpai)
			for j := range got {
				if got[j] != tc.want[j] {
					t.Fatalf("notenPayments(%v) = %v, want %v", tc.tenpai, got, tc.want)
				}
			}
		})
	}
}

func TestFlowManganPayments(t *testing.T) {
	sc := newScorelator(NewRule(), 0)
	got := sc.flowManganPayments([]int32{2})
	want := []int64{-1000, -1000, 3000, -1000}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("flowManganPayments = %v, want %v", got, want)
		}
	}
	var sum int64
	for _, d := range sc.flowManganPayments([]int32{0, 2}) {
		sum += d
	}
	if sum != 0 {
		t.Errorf("flow mangan payments should be zero-sum, got %d", sum)
	}
}

func TestCalcFuPinfu(t *testing.T) {
	data := &HuData{
		Tiles: MustTiles("234m567m789p456s88s"),
		Ctx: WinContext{
			Seat: 1, WinTile: MustTiles("6s")[0],
			Concealed: true, TurnsAfterRiichi: -1,
		},
	}
	result, ok := data.CheckHu()
	if !ok {
		t.Fatal("CheckHu failed")
	}
	// 平和荣和固定30符
	if result.Fu != 30 {
		t.Errorf("pinfu ron fu = %d, want 30", result.Fu)
	}
}
