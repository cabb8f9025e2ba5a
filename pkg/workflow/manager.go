package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-bible-kit/pkg/config"
	"github.com/shouni/go-bible-kit/pkg/generative"
	"github.com/shouni/go-bible-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// Manager は、ワークフローの各工程を担うクライアント群を構築・管理します。
// 生成サービスのクライアントはここで一度だけ構築され、Session へ
// 参照渡しされます（暗黙のグローバルは持ちません）。
type Manager struct {
	cfg    config.Config
	scenes generative.SceneDescriber
	images generative.ImageRenderer
	verses generative.VerseFetcher
	speech generative.SpeechGenerator
}

// New は、設定と依存関係を基に新しい Manager を初期化します。
// Args の各クライアントが nil の場合は Gemini 実装を構築します。
func New(ctx context.Context, args Args) (*Manager, error) {
	cfg := args.Config

	scenes := args.Scenes
	images := args.Images
	verses := args.Verses
	speech := args.Speech

	// いずれかの実クライアントが必要な場合のみ共有リソースを初期化する
	if scenes == nil || images == nil || verses == nil {
		if args.HTTPClient == nil {
			return nil, fmt.Errorf("httpClient は必須です")
		}
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GeminiAPIKey は必須です")
		}

		aiClient, err := initializeAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, err
		}

		textPrompts, err := prompts.NewTextPromptBuilder()
		if err != nil {
			return nil, fmt.Errorf("プロンプトビルダーの作成に失敗しました: %w", err)
		}

		if scenes == nil {
			scenes = generative.NewGeminiSceneClient(aiClient, textPrompts, cfg.GeminiModel)
		}
		if verses == nil {
			verses = generative.NewGeminiVerseClient(aiClient, textPrompts, cfg.GeminiModel)
		}
		if images == nil {
			imageClient, err := generative.NewGeminiImageClient(args.HTTPClient, aiClient, cfg.ImageModel)
			if err != nil {
				return nil, fmt.Errorf("画像生成エンジンの初期化に失敗しました: %w", err)
			}
			images = imageClient
		}
	}

	if speech == nil {
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GeminiAPIKey は必須です")
		}
		speechClient, err := generative.NewGeminiSpeechClient(ctx, cfg.GeminiAPIKey, cfg.SpeechModel)
		if err != nil {
			return nil, err
		}
		speech = speechClient
	}

	return &Manager{
		cfg:    cfg,
		scenes: scenes,
		images: images,
		verses: verses,
		speech: speech,
	}, nil
}

// NewSession は章トラバーサル1件ぶんの Session を生成します。
func (m *Manager) NewSession() *Session {
	return NewSession(m.cfg, m.scenes, m.images, m.verses, m.speech)
}

// Config は構築時の設定を返します。
func (m *Manager) Config() config.Config {
	return m.cfg
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
