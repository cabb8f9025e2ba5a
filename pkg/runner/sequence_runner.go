package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/publisher"
	"github.com/shouni/go-bible-kit/pkg/workflow"

	"golang.org/x/time/rate"
)

// SequenceRunner は、起点のリファレンスから章の終端まで
// シーン生成を繰り返し、章アルバムとして公開します。
type SequenceRunner struct {
	session   *workflow.Session
	publisher *publisher.AlbumPublisher
	limiter   *rate.Limiter
	language  string
	maxScenes int
}

// NewSequenceRunner は依存関係を注入して SequenceRunner を初期化します。
// rateInterval は連続する生成呼び出しの最小間隔です。
func NewSequenceRunner(session *workflow.Session, pub *publisher.AlbumPublisher, cfg SequenceConfig) *SequenceRunner {
	return &SequenceRunner{
		session:   session,
		publisher: pub,
		limiter:   rate.NewLimiter(rate.Every(cfg.RateInterval), 1),
		language:  cfg.Language,
		maxScenes: cfg.MaxScenes,
	}
}

// Run は章トラバーサルを実行し、公開結果を返します。
// 「節が存在しない」シグナルは正常な終端として扱い、
// それ以外の失敗は確定済みの状態を保ったまま中断します。
func (r *SequenceRunner) Run(ctx context.Context, refText string, aspect domain.AspectRatio, outputDir string) (publisher.PublishResult, error) {
	var scenes []publisher.Scene

	// 1. 最初のシーン（fresh モード）
	preview, err := r.session.GeneratePrompt(ctx, refText)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	image, err := r.session.GenerateImage(ctx, preview.Prompt, aspect)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	scenes = append(scenes, publisher.Scene{
		Reference: preview.Reference,
		VerseText: r.fetchVerseText(ctx, preview.Reference),
		Prompt:    preview.Prompt,
		ImageData: image.Data,
		ImageMime: image.MimeType,
	})

	// 2. 章の終端まで前進（continuation モード）
	for len(scenes) < r.maxScenes {
		if err := r.limiter.Wait(ctx); err != nil {
			return publisher.PublishResult{}, err
		}

		advance, err := r.session.Advance(ctx)
		if err != nil {
			if workflow.IsBoundary(err) {
				slog.InfoContext(ctx, "章の終端に到達したため、シーケンスを終了します",
					"last_reference", r.lastConfirmed(), "scenes", len(scenes))
				break
			}
			return publisher.PublishResult{}, err
		}

		scenes = append(scenes, publisher.Scene{
			Reference: advance.Reference,
			VerseText: r.fetchVerseText(ctx, advance.Reference),
			Prompt:    advance.Prompt,
			ImageData: advance.Image.Data,
			ImageMime: advance.Image.MimeType,
		})
	}

	// 3. 章アルバムの公開
	title := fmt.Sprintf("%s %d", preview.Reference.Book, preview.Reference.Chapter)
	return r.publisher.Publish(ctx, scenes, publisher.Options{
		OutputDir: outputDir,
		Title:     title,
	})
}

// fetchVerseText は節本文を取得します。アルバムにとって本文は補助情報なので、
// 失敗してもシーケンスは止めず、警告を残して空文字で続行します。
func (r *SequenceRunner) fetchVerseText(ctx context.Context, ref domain.ScriptureReference) string {
	text, err := r.session.FetchVerseText(ctx, ref.Format(), r.language)
	if err != nil {
		slog.WarnContext(ctx, "節本文の取得に失敗しました", "reference", ref.Format(), "error", err)
		return ""
	}
	return text
}

func (r *SequenceRunner) lastConfirmed() string {
	if ref := r.session.CurrentReference(); ref != nil {
		return ref.Format()
	}
	return ""
}

// SequenceConfig は SequenceRunner の動作パラメータです。
type SequenceConfig struct {
	RateInterval time.Duration
	Language     string
	MaxScenes    int
}
