package prompts

import (
	"strings"
	"testing"

	"github.com/shouni/go-bible-kit/pkg/domain"
)

func TestNewTextPromptBuilder(t *testing.T) {
	// 埋め込みテンプレートがすべて解析可能であること
	builder, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}
	if builder == nil {
		t.Fatal("ビルダーが nil です")
	}
}

func TestTextPromptBuilderBuild(t *testing.T) {
	builder, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("ビルダーの初期化に失敗しました: %v", err)
	}

	t.Run("freshモードにリファレンスが展開されること", func(t *testing.T) {
		prompt, err := builder.Build(ModeSceneFresh, TemplateData{Reference: "Gênesis 1:1"})
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if !strings.Contains(prompt, "Gênesis 1:1") {
			t.Error("リファレンスがプロンプトに含まれていません")
		}
		if !strings.Contains(prompt, "VERSE_NOT_FOUND") {
			t.Error("節なしマーカーの指示が含まれていません")
		}
	})

	t.Run("continuationモードに既存キャストが展開されること", func(t *testing.T) {
		prompt, err := builder.Build(ModeSceneContinuation, TemplateData{
			Reference: "Gênesis 1:2",
			Characters: []domain.Character{
				{Name: "Adão", Description: "a gentle man with short dark hair"},
			},
		})
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if !strings.Contains(prompt, "SUBJECT [Adão]: a gentle man with short dark hair") {
			t.Errorf("キャストの固定描写が展開されていません:\n%s", prompt)
		}
		if !strings.Contains(prompt, "STRICT IDENTITY") {
			t.Error("継続性の制約セクションが含まれていません")
		}
	})

	t.Run("verse_textモードに言語コードが展開されること", func(t *testing.T) {
		prompt, err := builder.Build(ModeVerseText, TemplateData{
			Reference:    "João 3:16",
			LanguageCode: "pt",
		})
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if !strings.Contains(prompt, "João 3:16") {
			t.Error("リファレンスがプロンプトに含まれていません")
		}
		if !strings.Contains(prompt, "pt") {
			t.Error("言語コードがプロンプトに含まれていません")
		}
	})

	t.Run("不明なモードはエラーになること", func(t *testing.T) {
		if _, err := builder.Build("unknown_mode", TemplateData{}); err == nil {
			t.Error("不明なモードでエラーが発生しませんでした")
		}
	})
}

func TestBuildScenePrompt(t *testing.T) {
	builder := NewImagePromptBuilder("3D animated film style")

	t.Run("画風サフィックスと共通タグが連結されること", func(t *testing.T) {
		userPrompt, systemPrompt := builder.BuildScenePrompt("a garden at dawn")

		want := "a garden at dawn, 3D animated film style, " + CinematicTags
		if userPrompt != want {
			t.Errorf("期待値 '%s', 実際の値 '%s'", want, userPrompt)
		}
		if !strings.Contains(systemPrompt, SceneSystemInstruction) {
			t.Error("システムプロンプトに役割指示が含まれていません")
		}
	})

	t.Run("空のサフィックスは区切り文字を残さないこと", func(t *testing.T) {
		empty := NewImagePromptBuilder("")
		userPrompt, _ := empty.BuildScenePrompt("a stormy sea")

		want := "a stormy sea, " + CinematicTags
		if userPrompt != want {
			t.Errorf("期待値 '%s', 実際の値 '%s'", want, userPrompt)
		}
	})
}

func TestNarrationText(t *testing.T) {
	t.Run("子ども向けプロファイルはトーン指示が先頭に付くこと", func(t *testing.T) {
		got := NarrationText(true, "No princípio, Deus criou os céus e a terra.")
		if !strings.HasPrefix(got, NarrationToneInstruction) {
			t.Error("トーン指示が先頭に付加されていません")
		}
		if !strings.HasSuffix(got, "No princípio, Deus criou os céus e a terra.") {
			t.Error("本文が保持されていません")
		}
	})

	t.Run("標準プロファイルは本文をそのまま返すこと", func(t *testing.T) {
		text := "No princípio, Deus criou os céus e a terra."
		if got := NarrationText(false, text); got != text {
			t.Errorf("期待値 '%s', 実際の値 '%s'", text, got)
		}
	})
}
