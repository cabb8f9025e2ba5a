package generative

import (
	"errors"
	"testing"
)

func TestDecodeScenePayload(t *testing.T) {
	t.Run("コードフェンス付きのJSONを復元できること", func(t *testing.T) {
		raw := "```json\n" +
			`{"scene_prompt": "a garden at dawn", "characters": [{"name": "Adão", "description": "a gentle man"}]}` +
			"\n```"

		resp, err := DecodeScenePayload(raw)
		if err != nil {
			t.Fatalf("正常なペイロードでエラーが発生しました: %v", err)
		}
		if resp.ScenePrompt != "a garden at dawn" {
			t.Errorf("scene_prompt の期待値 'a garden at dawn', 実際の値 '%s'", resp.ScenePrompt)
		}
		if len(resp.Characters) != 1 || resp.Characters[0].Name != "Adão" {
			t.Errorf("キャストが不正です: %+v", resp.Characters)
		}
	})

	t.Run("前後に説明文があっても復元できること", func(t *testing.T) {
		raw := "Here is the scene you requested:\n" +
			`{"scene_prompt": "a stormy sea", "characters": []}` +
			"\nLet me know if you need changes."

		resp, err := DecodeScenePayload(raw)
		if err != nil {
			t.Fatalf("説明文付きペイロードでエラーが発生しました: %v", err)
		}
		if resp.ScenePrompt != "a stormy sea" {
			t.Errorf("scene_prompt の期待値 'a stormy sea', 実際の値 '%s'", resp.ScenePrompt)
		}
	})

	t.Run("節が存在しないマーカーは ErrVerseNotFound になること", func(t *testing.T) {
		_, err := DecodeScenePayload(`{"error": "VERSE_NOT_FOUND"}`)
		if !errors.Is(err, ErrVerseNotFound) {
			t.Errorf("期待値 ErrVerseNotFound, 実際の値 %v", err)
		}
	})

	t.Run("JSONが見つからない場合は ErrMalformedResponse になること", func(t *testing.T) {
		_, err := DecodeScenePayload("I cannot produce structured output for this.")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("期待値 ErrMalformedResponse, 実際の値 %v", err)
		}
	})

	t.Run("壊れたJSONは ErrMalformedResponse になること", func(t *testing.T) {
		_, err := DecodeScenePayload(`{"scene_prompt": "unterminated`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("期待値 ErrMalformedResponse, 実際の値 %v", err)
		}
	})

	t.Run("scene_prompt が欠けている場合は ErrMalformedResponse になること", func(t *testing.T) {
		_, err := DecodeScenePayload(`{"characters": [{"name": "Eva", "description": "x"}]}`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("期待値 ErrMalformedResponse, 実際の値 %v", err)
		}
	})

	t.Run("characters が欠けている場合は ErrMalformedResponse になること", func(t *testing.T) {
		_, err := DecodeScenePayload(`{"scene_prompt": "a desert road"}`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("期待値 ErrMalformedResponse, 実際の値 %v", err)
		}
	})
}

func TestExtractJSONBlock(t *testing.T) {
	t.Run("言語指定なしのフェンスも扱えること", func(t *testing.T) {
		raw := "```\n{\"a\": 1}\n```"
		if got := ExtractJSONBlock(raw); got != `{"a": 1}` {
			t.Errorf("期待値 '{\"a\": 1}', 実際の値 '%s'", got)
		}
	})

	t.Run("フェンスがない場合は波括弧の範囲を切り出すこと", func(t *testing.T) {
		raw := `prefix {"a": {"b": 2}} suffix`
		if got := ExtractJSONBlock(raw); got != `{"a": {"b": 2}}` {
			t.Errorf("期待値 '{\"a\": {\"b\": 2}}', 実際の値 '%s'", got)
		}
	})

	t.Run("JSON候補がない場合は空文字を返すこと", func(t *testing.T) {
		if got := ExtractJSONBlock("no structured data here"); got != "" {
			t.Errorf("期待値 '', 実際の値 '%s'", got)
		}
	})
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"節なしは boundary", ErrVerseNotFound, KindBoundary},
		{"不正応答は malformed", ErrMalformedResponse, KindMalformed},
		{"空結果は empty", ErrEmptyResult, KindEmpty},
		{"画像なしは no_image", ErrNoImageProduced, KindNoImage},
		{"音声なしは no_audio", ErrNoAudioProduced, KindNoAudio},
		{"前提条件違反は precondition", ErrPrecondition, KindPrecondition},
		{"未知のエラーは service 扱い", errors.New("connection refused"), KindService},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Errorf("期待値 %s, 実際の値 %s", tc.want, got)
			}
		})
	}
}
