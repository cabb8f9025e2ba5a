package workflow

import (
	"github.com/shouni/go-bible-kit/pkg/config"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/generative"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

const defaultGeminiTemperature = float32(0.2)

// Args は Manager の構築に必要な依存関係をまとめます。
// Scenes 以下の各フィールドは省略可能で、nil の場合は Gemini 実装が
// 使用されます。テストダブルの注入にも同じ経路を使います。
type Args struct {
	Config     config.Config
	HTTPClient httpkit.ClientInterface

	Scenes generative.SceneDescriber
	Images generative.ImageRenderer
	Verses generative.VerseFetcher
	Speech generative.SpeechGenerator
}

// ScenePreview は最初のシーン描写生成の結果です。
// Prompt は編集可能なテキストとしてUI側に渡されます。
type ScenePreview struct {
	Reference domain.ScriptureReference
	Prompt    string
	Cast      domain.Cast
}

// SceneAdvance は1節ぶんの前進が確定した結果です。
type SceneAdvance struct {
	Reference domain.ScriptureReference
	Prompt    string
	Cast      domain.Cast
	Image     *generative.ImageResult
}
