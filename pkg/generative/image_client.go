package generative

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	imageKit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

const (
	imageCacheExpiration      = 5 * time.Minute
	imageCacheCleanupInterval = 15 * time.Minute
	imageCacheTTL             = 5 * time.Minute
)

// GeminiImageClient は gemini-image-kit を聖句シーン向けの
// 画像生成の契約（ImageRenderer）に適合させるアダプターです。
type GeminiImageClient struct {
	generator imageKit.ImageGenerator
}

// NewGeminiImageClient は画像処理コアと生成器を初期化して返します。
func NewGeminiImageClient(httpClient httpkit.ClientInterface, aiClient gemini.GenerativeModel, model string) (*GeminiImageClient, error) {
	imgCache := cache.New(imageCacheExpiration, imageCacheCleanupInterval)

	// 画像処理コアを生成
	core, err := imageKit.NewGeminiImageCore(
		httpClient,
		imgCache,
		imageCacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCoreの初期化に失敗しました: %w", err)
	}

	imgGen, err := imageKit.NewGeminiGenerator(
		core,
		aiClient,
		model,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗しました: %w", err)
	}

	return &GeminiImageClient{generator: imgGen}, nil
}

// Render は1シーン分の画像を生成します。
// サービス障害は ErrService、空の結果は ErrNoImageProduced に分類されます。
func (c *GeminiImageClient) Render(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	startTime := time.Now()

	seed := req.Seed
	resp, err := c.generator.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:         req.Prompt,
		SystemPrompt:   req.SystemPrompt,
		NegativePrompt: req.NegativePrompt,
		AspectRatio:    string(req.AspectRatio),
		Seed:           &seed,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 画像生成呼び出しに失敗しました: %v", ErrService, err)
	}
	if resp == nil || len(resp.Data) == 0 {
		return nil, ErrNoImageProduced
	}

	slog.InfoContext(ctx, "画像生成が完了しました",
		"aspect", req.AspectRatio,
		"duration", time.Since(startTime).Round(time.Millisecond))

	return &ImageResult{
		Data:     resp.Data,
		MimeType: resp.MimeType,
	}, nil
}
