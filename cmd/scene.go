package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-bible-kit/internal/builder"
	"github.com/shouni/go-bible-kit/internal/config"
	pkgconfig "github.com/shouni/go-bible-kit/pkg/config"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/runner"

	"github.com/spf13/cobra"
)

// sceneCmd は、1つの聖句リファレンスから最初のシーンを生成するサブコマンドなのだ。
// シーン描写プロンプトと画像を生成して保存し、気に入らなければプロンプトを
// 直してから再実行できる、いわば「下書き」フェーズなのだ。
var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "聖句リファレンスから最初のシーン（プロンプト + 画像）を生成するのだ。",
	Long: `指定された聖句リファレンス（例: 'Gênesis 1:1'）を解析し、シーン描写プロンプトと
登場人物キャストを生成してから、画像を1枚レンダリングして保存するのだ。
生成されたプロンプトは scene_prompt.txt に書き出されるので、後から調整できるのだ。`,
	Example: "  ap-bible-go scene -r 'Gênesis 1:1' -a 9:16 -o output",
	RunE:    sceneCommand,
}

// init は将来的にフラグを追加する場合に使うのだ。
func init() {
}

// sceneCommand は、scene サブコマンドの実行ロジック本体なのだ。
func sceneCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 必須となる起点リファレンスのチェック
	if opts.Reference == "" {
		return fmt.Errorf("起点となる聖句リファレンス（--reference）を指定してほしいのだ")
	}

	aspect := domain.AspectRatio(opts.AspectRatio)
	if !aspect.Valid() {
		return fmt.Errorf("アスペクト比は 9:16 か 16:9 のどちらかにしてほしいのだ: %q", opts.AspectRatio)
	}

	// 1. 環境変数から基本設定をロードし、コマンドライン引数を反映
	cfg := loadConfigWithOpts()

	slog.Info("シーン生成モードを起動するのだ！",
		"reference", opts.Reference,
		"aspect", opts.AspectRatio,
		"output_dir", opts.OutputDir,
		"image_model", cfg.ImageModel)

	// 2. アプリケーションコンテキストの構築
	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// 3. Runner 実行
	sceneRunner := runner.NewSceneRunner(appCtx.Manager.NewSession(), appCtx.Writer)
	preview, err := sceneRunner.Run(ctx, opts.Reference, aspect, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("シーンの生成に失敗したのだ: %w", err)
	}

	slog.Info("完了なのだ！最初のシーンが保存されたのだよ。",
		"reference", preview.Reference.Format(), "cast", len(preview.Cast))
	return nil
}

// loadConfigWithOpts は環境変数の設定にCLIフラグの値を上書きして返すのだ。
func loadConfigWithOpts() pkgconfig.Config {
	cfg := config.LoadConfig()

	if opts.AIModel != "" {
		cfg.GeminiModel = opts.AIModel
	}
	if opts.ImageModel != "" {
		cfg.ImageModel = opts.ImageModel
	}
	if opts.SpeechModel != "" {
		cfg.SpeechModel = opts.SpeechModel
	}
	if opts.Language != "" {
		cfg.Language = opts.Language
	}
	if opts.HTTPTimeout > 0 {
		cfg.RequestTimeout = opts.HTTPTimeout
	}

	return cfg
}
