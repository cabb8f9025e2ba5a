// Package publisher は、生成済みのシーン群を1つの「章アルバム」として
// Markdown と HTML に永続化します。
package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/shouni/go-bible-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

const (
	defaultAlbumName    = "chapter_album.md"
	defaultImageDirName = "images"
)

// Scene はアルバムに収める1シーン分の成果物です。
type Scene struct {
	Reference domain.ScriptureReference
	VerseText string
	Prompt    string
	ImageData []byte
	ImageMime string
}

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
	Title     string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string
	HTMLPath     string
	ImagePaths   []string
}

// AlbumPublisher は成果物の永続化とフォーマット変換を担います。
type AlbumPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
}

// NewAlbumPublisher は writer と HTML ランナーを注入して AlbumPublisher を生成します。
func NewAlbumPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) *AlbumPublisher {
	return &AlbumPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
	}
}

// Publish は画像の保存、Markdownの構築、HTML変換を一括して実行し、
// 生成されたファイル情報を返却するのだ！
func (p *AlbumPublisher) Publish(ctx context.Context, scenes []Scene, opts Options) (PublishResult, error) {
	result := PublishResult{}
	if len(scenes) == 0 {
		return result, fmt.Errorf("公開するシーンがありません")
	}

	markdownPath, err := ResolveOutputPath(opts.OutputDir, defaultAlbumName)
	if err != nil {
		return result, err
	}
	result.MarkdownPath = markdownPath

	imgDir, err := ResolveOutputPath(opts.OutputDir, defaultImageDirName)
	if err != nil {
		return result, err
	}

	// 1. 画像の保存
	savedPaths, err := p.saveImages(ctx, scenes, imgDir)
	if err != nil {
		return result, fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	result.ImagePaths = savedPaths

	// 2. Markdown用相対パスの作成
	relativePaths := make([]string, 0, len(savedPaths))
	for _, pathStr := range savedPaths {
		relativePaths = append(relativePaths, path.Join(defaultImageDirName, filepath.Base(pathStr)))
	}

	// 3. Markdownテキストの構築と書き出し
	content := p.BuildMarkdown(opts.Title, scenes, relativePaths)
	if err := p.writer.Write(ctx, markdownPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}

	// 4. HTML変換と保存
	if p.htmlRunner != nil {
		slog.Info("章アルバムをHTMLへ変換します", "title", opts.Title, "scenes", len(scenes))
		htmlBuffer, err := p.htmlRunner.Run(ctx, opts.Title, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	return result, nil
}

// BuildMarkdown は保存処理を行わず、シーン群から Markdown 文字列のみを生成します。
func (p *AlbumPublisher) BuildMarkdown(title string, scenes []Scene, imagePaths []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	for i, scene := range scenes {
		sb.WriteString(fmt.Sprintf("## %s\n\n", scene.Reference.Format()))
		if i < len(imagePaths) {
			sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", scene.Reference.Format(), imagePaths[i]))
		}
		if scene.VerseText != "" {
			sb.WriteString(fmt.Sprintf("> %s\n\n", scene.VerseText))
		}
	}

	return sb.String()
}

// saveImages は各シーンの画像を連番ファイルとして保存し、保存先パスを返します。
func (p *AlbumPublisher) saveImages(ctx context.Context, scenes []Scene, imgDir string) ([]string, error) {
	savedPaths := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		if len(scene.ImageData) == 0 {
			continue
		}

		fileName := fmt.Sprintf("scene_%02d%s", i+1, extensionFor(scene.ImageMime))
		fullPath, err := ResolveOutputPath(imgDir, fileName)
		if err != nil {
			return nil, err
		}

		mime := scene.ImageMime
		if mime == "" {
			mime = "image/png"
		}
		if err := p.writer.Write(ctx, fullPath, bytes.NewReader(scene.ImageData), mime); err != nil {
			return nil, fmt.Errorf("シーン %d の画像保存に失敗しました: %w", i+1, err)
		}
		savedPaths = append(savedPaths, fullPath)
	}
	return savedPaths, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
