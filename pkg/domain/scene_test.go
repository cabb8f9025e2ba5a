package domain

import (
	"encoding/json"
	"testing"
)

func TestCastClone(t *testing.T) {
	t.Run("クローンは元のキャストから独立していること", func(t *testing.T) {
		original := Cast{
			{Name: "Adão", Description: "a gentle man"},
			{Name: "Eva", Description: "a graceful woman"},
		}

		cloned := original.Clone()
		cloned[0].Description = "changed"

		if original[0].Description != "a gentle man" {
			t.Errorf("クローンの変更が元に波及しています: '%s'", original[0].Description)
		}
	})

	t.Run("nil のクローンは nil を返すこと", func(t *testing.T) {
		var c Cast
		if c.Clone() != nil {
			t.Error("nil キャストのクローンが nil ではありません")
		}
	})
}

func TestCastFind(t *testing.T) {
	cast := Cast{
		{Name: "Davi", Description: "a young shepherd"},
		{Name: "Golias", Description: "a giant warrior"},
	}

	if found := cast.Find("Golias"); found == nil || found.Description != "a giant warrior" {
		t.Errorf("既存キャラクターの検索に失敗しました: %+v", found)
	}
	if found := cast.Find("Saul"); found != nil {
		t.Errorf("存在しない名前で nil が返りませんでした: %+v", found)
	}
}

func TestCastPreservesOrder(t *testing.T) {
	// JSON配列としてデコードしたとき、挿入順がそのまま保持されること
	payload := []byte(`[
		{"name": "Noé", "description": "an old craftsman"},
		{"name": "Sem", "description": "the eldest son"},
		{"name": "Cam", "description": "the middle son"}
	]`)

	var cast Cast
	if err := json.Unmarshal(payload, &cast); err != nil {
		t.Fatalf("デコードに失敗しました: %v", err)
	}

	want := []string{"Noé", "Sem", "Cam"}
	got := cast.Names()
	if len(got) != len(want) {
		t.Fatalf("期待値 %d人, 実際の値 %d人", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("順序が保持されていません: 位置%d 期待値 '%s', 実際の値 '%s'", i, want[i], got[i])
		}
	}
}

func TestGetSeedFromBook(t *testing.T) {
	t.Run("同じ書名から常に同じシードが生成されること", func(t *testing.T) {
		seed1 := GetSeedFromBook("Gênesis")
		seed2 := GetSeedFromBook("Gênesis")
		if seed1 != seed2 {
			t.Errorf("決定論的ではありません: %d != %d", seed1, seed2)
		}
	})

	t.Run("異なる書名からは異なるシードが生成されること", func(t *testing.T) {
		if GetSeedFromBook("Gênesis") == GetSeedFromBook("Êxodo") {
			t.Error("異なる書名で同じシードが生成されました")
		}
	})

	t.Run("シードは常に非負であること", func(t *testing.T) {
		books := []string{"Gênesis", "Êxodo", "Salmos", "João", "Apocalipse"}
		for _, book := range books {
			if seed := GetSeedFromBook(book); seed < 0 {
				t.Errorf("書名 '%s' で負のシードが生成されました: %d", book, seed)
			}
		}
	})
}
