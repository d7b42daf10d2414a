package riichi

import (
	"slices"
	"sort"
)

func CountElement[T comparable](list []T, e T) int {
	count := 0
	for _, v := range list {
		if v == e {
			count++
		}
	}
	return count
}

func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if count > 0 && t == tile {
			count--
			continue
		}
		res = append(res, t)
	}
	return res
}

// countTiles 按去赤归一后的同名牌计数
func countTiles(tiles []Tile, tile Tile) int {
	n := tile.Normal()
	count := 0
	for _, t := range tiles {
		if t.Normal() == n {
			count++
		}
	}
	return count
}

func containsTile(tiles []Tile, tile Tile) bool {
	return countTiles(tiles, tile) > 0
}

// removeTiles 移除同名牌, 普通牌优先于赤牌, 返回剩余与移除的赤牌数
func removeTiles(tiles []Tile, tile Tile, count int) ([]Tile, int32) {
	n := tile.Normal()
	res := slices.Clone(tiles)
	for ; count > 0; count-- {
		idx := -1
		for i, t := range res {
			if t.Normal() != n {
				continue
			}
			if !t.IsRed() {
				idx = i
				break
			}
			if idx < 0 {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		res = slices.Delete(res, idx, idx+1)
	}
	return res, int32(countReds(tiles) - countReds(res))
}

func countReds(tiles []Tile) int {
	count := 0
	for _, t := range tiles {
		if t.IsRed() {
			count++
		}
	}
	return count
}

func sortTiles(tiles []Tile) {
	sort.Slice(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]
		if a.Index() != b.Index() {
			return a.Index() < b.Index()
		}
		return a < b
	})
}

func tileCounts(tiles []Tile) [TileKindCount]int {
	var counts [TileKindCount]int
	for _, t := range tiles {
		counts[t.Index()]++
	}
	return counts
}

func equalTileSets(a, b []Tile) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[Tile]struct{}, len(a))
	for _, t := range a {
		set[t.Normal()] = struct{}{}
	}
	for _, t := range b {
		if _, ok := set[t.Normal()]; !ok {
			return false
		}
	}
	return true
}

func distinctTiles(tiles []Tile) []Tile {
	seen := make(map[Tile]struct{}, len(tiles))
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		n := t.Normal()
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		res = append(res, n)
	}
	return res
}
