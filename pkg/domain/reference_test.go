package domain

import (
	"testing"
)

func TestParseReference(t *testing.T) {
	t.Run("標準的なリファレンスを解析できること", func(t *testing.T) {
		ref := ParseReference("Gênesis 1:1")
		if ref == nil {
			t.Fatal("解析結果が nil です")
		}
		if ref.Book != "Gênesis" || ref.Chapter != 1 || ref.Verse != 1 {
			t.Errorf("期待値 Gênesis 1:1, 実際の値 %s %d:%d", ref.Book, ref.Chapter, ref.Verse)
		}
	})

	t.Run("数字を含む書名を解析できること", func(t *testing.T) {
		ref := ParseReference("1 Samuel 17:4")
		if ref == nil {
			t.Fatal("解析結果が nil です")
		}
		if ref.Book != "1 Samuel" {
			t.Errorf("期待値 '1 Samuel', 実際の値 '%s'", ref.Book)
		}
		if ref.Chapter != 17 || ref.Verse != 4 {
			t.Errorf("期待値 17:4, 実際の値 %d:%d", ref.Chapter, ref.Verse)
		}
	})

	t.Run("前後の空白が除去されること", func(t *testing.T) {
		ref := ParseReference("  João 3:16  ")
		if ref == nil {
			t.Fatal("解析結果が nil です")
		}
		if got := ref.Format(); got != "João 3:16" {
			t.Errorf("期待値 'João 3:16', 実際の値 '%s'", got)
		}
	})

	t.Run("形式に一致しない入力は nil を返すこと", func(t *testing.T) {
		inputs := []string{
			"",
			"Gênesis",
			"Gênesis 1",
			"1:1",
			"ただのテキスト",
		}
		for _, in := range inputs {
			if ref := ParseReference(in); ref != nil {
				t.Errorf("入力 '%s' で nil が返りませんでした: %+v", in, ref)
			}
		}
	})

	t.Run("章や節が0以下の場合は nil を返すこと", func(t *testing.T) {
		if ref := ParseReference("Gênesis 0:1"); ref != nil {
			t.Errorf("章0で nil が返りませんでした: %+v", ref)
		}
		if ref := ParseReference("Gênesis 1:0"); ref != nil {
			t.Errorf("節0で nil が返りませんでした: %+v", ref)
		}
	})
}

func TestScriptureReferenceFormat(t *testing.T) {
	ref := ScriptureReference{Book: "Êxodo", Chapter: 20, Verse: 3}
	if got := ref.Format(); got != "Êxodo 20:3" {
		t.Errorf("期待値 'Êxodo 20:3', 実際の値 '%s'", got)
	}

	// String は Format と同じ正規化表現を返すこと
	if ref.String() != ref.Format() {
		t.Errorf("String と Format の結果が一致しません: '%s' != '%s'", ref.String(), ref.Format())
	}

	// 解析と整形のラウンドトリップ
	parsed := ParseReference(ref.Format())
	if parsed == nil || *parsed != ref {
		t.Errorf("ラウンドトリップに失敗しました: %+v", parsed)
	}
}

func TestNextVerse(t *testing.T) {
	ref := ScriptureReference{Book: "Gênesis", Chapter: 1, Verse: 1}
	next := ref.NextVerse()

	// 節番号のみが進むこと（章や書名は変わらない）
	if next.Book != "Gênesis" || next.Chapter != 1 || next.Verse != 2 {
		t.Errorf("期待値 Gênesis 1:2, 実際の値 %s", next.Format())
	}

	// 元の値は変更されないこと
	if ref.Verse != 1 {
		t.Errorf("元のリファレンスが変更されています: %d", ref.Verse)
	}
}
