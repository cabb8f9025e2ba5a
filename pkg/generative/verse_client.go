package generative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shouni/go-bible-kit/pkg/prompts"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"golang.org/x/sync/singleflight"
)

const (
	verseCacheExpiration      = 30 * time.Minute
	verseCacheCleanupInterval = 1 * time.Hour
)

// GeminiVerseClient は Gemini を用いて聖句本文を取得するクライアントです。
// 同一の節への要求は TTL キャッシュと singleflight で集約します。
type GeminiVerseClient struct {
	aiClient   gemini.GenerativeModel
	builder    prompts.TextPrompt
	model      string
	textCache  *cache.Cache
	fetchGroup singleflight.Group
}

// NewGeminiVerseClient は依存関係を注入して GeminiVerseClient を初期化します。
func NewGeminiVerseClient(aiClient gemini.GenerativeModel, builder prompts.TextPrompt, model string) *GeminiVerseClient {
	return &GeminiVerseClient{
		aiClient:  aiClient,
		builder:   builder,
		model:     model,
		textCache: cache.New(verseCacheExpiration, verseCacheCleanupInterval),
	}
}

// Fetch は指定言語の節本文をプレーンテキストで返します。
func (c *GeminiVerseClient) Fetch(ctx context.Context, refText, languageCode string) (string, error) {
	key := languageCode + "|" + refText

	if cached, ok := c.textCache.Get(key); ok {
		if text, ok := cached.(string); ok {
			return text, nil
		}
	}

	val, err, _ := c.fetchGroup.Do(key, func() (interface{}, error) {
		// singleflight で待機中に他の呼び出しが取得を完了させている可能性が
		// あるため、コールバック内で再度キャッシュを確認
		if cached, ok := c.textCache.Get(key); ok {
			if text, ok := cached.(string); ok {
				return text, nil
			}
		}

		text, fetchErr := c.fetch(ctx, refText, languageCode)
		if fetchErr != nil {
			return nil, fetchErr
		}

		c.textCache.Set(key, text, cache.DefaultExpiration)
		return text, nil
	})
	if err != nil {
		return "", err
	}

	text, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return text, nil
}

func (c *GeminiVerseClient) fetch(ctx context.Context, refText, languageCode string) (string, error) {
	promptContent, err := c.builder.Build(prompts.ModeVerseText, prompts.TemplateData{
		Reference:    refText,
		LanguageCode: languageCode,
	})
	if err != nil {
		return "", fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	resp, err := c.aiClient.GenerateContent(ctx, promptContent, c.model)
	if err != nil {
		return "", fmt.Errorf("%w: 節本文の取得に失敗しました: %v", ErrService, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyResult, refText)
	}
	return text, nil
}
