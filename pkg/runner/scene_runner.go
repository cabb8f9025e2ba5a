package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/publisher"
	"github.com/shouni/go-bible-kit/pkg/workflow"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
)

// SceneRunner は、単一のリファレンスから最初のシーン
// （編集可能なプロンプト + 画像）を生成して保存します。
type SceneRunner struct {
	session *workflow.Session
	writer  remoteio.OutputWriter
}

// NewSceneRunner は依存関係を注入して SceneRunner を初期化します。
func NewSceneRunner(session *workflow.Session, writer remoteio.OutputWriter) *SceneRunner {
	return &SceneRunner{
		session: session,
		writer:  writer,
	}
}

// Run はプロンプト生成と画像生成を順に実行し、成果物を保存して返します。
func (r *SceneRunner) Run(ctx context.Context, refText string, aspect domain.AspectRatio, outputDir string) (*workflow.ScenePreview, error) {
	preview, err := r.session.GeneratePrompt(ctx, refText)
	if err != nil {
		return nil, err
	}

	image, err := r.session.GenerateImage(ctx, preview.Prompt, aspect)
	if err != nil {
		return nil, err
	}

	if err := r.saveArtifacts(ctx, preview, image.Data, image.MimeType, outputDir); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "シーンの生成と保存が完了しました",
		"reference", preview.Reference.Format(), "cast", len(preview.Cast))

	return preview, nil
}

// saveArtifacts はプロンプトテキストと画像を並列で保存します。
func (r *SceneRunner) saveArtifacts(ctx context.Context, preview *workflow.ScenePreview, imageData []byte, imageMime string, outputDir string) error {
	promptPath, err := publisher.ResolveOutputPath(outputDir, "scene_prompt.txt")
	if err != nil {
		return err
	}
	imagePath, err := publisher.ResolveOutputPath(outputDir, "scene_01.png")
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		content := r.buildPromptDocument(preview)
		if err := r.writer.Write(egCtx, promptPath, strings.NewReader(content), "text/plain; charset=utf-8"); err != nil {
			return fmt.Errorf("プロンプトの保存に失敗しました: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		mime := imageMime
		if mime == "" {
			mime = "image/png"
		}
		if err := r.writer.Write(egCtx, imagePath, bytes.NewReader(imageData), mime); err != nil {
			return fmt.Errorf("画像の保存に失敗しました: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

// buildPromptDocument はプロンプトとキャスト一覧をまとめたテキストを構築します。
func (r *SceneRunner) buildPromptDocument(preview *workflow.ScenePreview) string {
	var sb strings.Builder
	sb.WriteString(preview.Reference.Format())
	sb.WriteString("\n\n")
	sb.WriteString(preview.Prompt)
	sb.WriteString("\n\n")
	for _, char := range preview.Cast {
		sb.WriteString(fmt.Sprintf("- %s\n", char))
	}
	return sb.String()
}
