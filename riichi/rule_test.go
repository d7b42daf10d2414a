package riichi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestLoadRule(t *testing.T) {
	content := []byte(`max_ron_winners: 1
renhou_policy: yakuman
kiriage_mangan: true
round_winds: 1
init_score: 30000
use_red_fives: false
`)
	file := filepath.Join(t.TempDir(), "rule.yaml")
	if err := os.WriteFile(file, content, 0o644); err != nil {
		t.Fatal(err)
	}

	rule, err := riichi.LoadRule(file)
	if err != nil {
		t.Fatalf("LoadRule: %v", err)
	}
	if rule.MaxRonWinners != 1 {
		t.Errorf("MaxRonWinners = %d, want 1", rule.MaxRonWinners)
	}
	if rule.RenhouPolicy != riichi.RenhouYakuman {
		t.Errorf("RenhouPolicy = %s, want yakuman", rule.RenhouPolicy)
	}
	if !rule.KiriageMangan {
		t.Error("KiriageMangan should be true")
	}
	if rule.RoundWinds != 1 {
		t.Errorf("RoundWinds = %d, want 1", rule.RoundWinds)
	}
	if rule.InitScore != 30000 {
		t.Errorf("InitScore = %d, want 30000", rule.InitScore)
	}
	if rule.UseRedFives {
		t.Error("UseRedFives should be false")
	}
	// 未配置项保持默认
	if rule.RiichiBet != 1000 {
		t.Errorf("RiichiBet = %d, want default 1000", rule.RiichiBet)
	}
	if !rule.TobiEnabled {
		t.Error("TobiEnabled should keep default true")
	}
}

func TestLoadRuleMissingFile(t *testing.T) {
	if _, err := riichi.LoadRule("/no/such/rule.yaml"); err == nil {
		t.Error("LoadRule should fail on missing file")
	}
}

func TestRuleClampMaxRonWinners(t *testing.T) {
	content := []byte("max_ron_winners: 9\n")
	file := filepath.Join(t.TempDir(), "rule.yaml")
	if err := os.WriteFile(file, content, 0o644); err != nil {
		t.Fatal(err)
	}
	rule, err := riichi.LoadRule(file)
	if err != nil {
		t.Fatal(err)
	}
	if rule.MaxRonWinners != 3 {
		t.Errorf("MaxRonWinners = %d, want clamp to 3", rule.MaxRonWinners)
	}
}
