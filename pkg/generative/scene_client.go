package generative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shouni/go-bible-kit/pkg/continuity"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/prompts"

	"github.com/shouni/go-gemini-client/pkg/gemini"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// verseNotFoundMarker は、節が存在しないときにモデルが返すことを
// テンプレートで義務付けている識別子です。
const verseNotFoundMarker = "VERSE_NOT_FOUND"

// GeminiSceneClient は Gemini を用いて聖句のシーン描写を生成するクライアントです。
type GeminiSceneClient struct {
	aiClient gemini.GenerativeModel
	builder  prompts.TextPrompt
	model    string
}

// NewGeminiSceneClient は依存関係を注入して GeminiSceneClient を初期化します。
func NewGeminiSceneClient(aiClient gemini.GenerativeModel, builder prompts.TextPrompt, model string) *GeminiSceneClient {
	return &GeminiSceneClient{
		aiClient: aiClient,
		builder:  builder,
		model:    model,
	}
}

// Describe は継続性制約に応じたプロンプトを構築し、構造化された
// シーン描写を生成させて検証済みの SceneResponse を返します。
func (c *GeminiSceneClient) Describe(ctx context.Context, refText string, constraint continuity.Constraint) (*domain.SceneResponse, error) {
	mode := prompts.ModeSceneFresh
	if constraint.Mode == continuity.ModeContinuation {
		mode = prompts.ModeSceneContinuation
	}

	promptContent, err := c.builder.Build(mode, prompts.TemplateData{
		Reference:  refText,
		Characters: constraint.Cast,
	})
	if err != nil {
		return nil, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	slog.InfoContext(ctx, "シーン描写を生成します", "reference", refText, "mode", mode)

	resp, err := c.aiClient.GenerateContent(ctx, promptContent, c.model)
	if err != nil {
		return nil, fmt.Errorf("%w: シーン生成呼び出しに失敗しました: %v", ErrService, err)
	}

	return DecodeScenePayload(resp.Text)
}

// DecodeScenePayload は、AIが返したテキストから構造化ペイロードを抽出・
// 検証します。Markdownのコードフェンスや前後の説明文は許容し、
// 抽出後に必須フィールドが欠けていれば ErrMalformedResponse を返します。
func DecodeScenePayload(raw string) (*domain.SceneResponse, error) {
	payload := ExtractJSONBlock(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: 構造化ペイロードが見つかりません", ErrMalformedResponse)
	}

	var envelope struct {
		Error       string      `json:"error"`
		ScenePrompt string      `json:"scene_prompt"`
		Characters  domain.Cast `json:"characters"`
	}
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return nil, fmt.Errorf("%w: JSONのパースに失敗しました: %v", ErrMalformedResponse, err)
	}

	if envelope.Error == verseNotFoundMarker {
		return nil, ErrVerseNotFound
	}

	if strings.TrimSpace(envelope.ScenePrompt) == "" {
		return nil, fmt.Errorf("%w: scene_prompt がありません", ErrMalformedResponse)
	}
	if envelope.Characters == nil {
		return nil, fmt.Errorf("%w: characters がありません", ErrMalformedResponse)
	}

	return &domain.SceneResponse{
		ScenePrompt: envelope.ScenePrompt,
		Characters:  envelope.Characters,
	}, nil
}

// ExtractJSONBlock は、コードフェンス内または最初の '{' から最後の '}' までを
// JSON候補として切り出します。見つからなければ空文字を返します。
func ExtractJSONBlock(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if m := jsonBlockRegex.FindStringSubmatch(trimmed); m != nil {
		trimmed = strings.TrimSpace(m[1])
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return trimmed[start : end+1]
}
