package cmd

import (
	"fmt"
	"log/slog"

	appbuilder "github.com/shouni/go-bible-kit/internal/builder"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/publisher"
	"github.com/shouni/go-bible-kit/pkg/runner"

	"github.com/shouni/go-text-format/pkg/builder"
	"github.com/spf13/cobra"
)

// sequenceCmd は、起点の節から章の終わりまでシーン生成を繰り返し、
// 「章アルバム」（Markdown + HTML + 画像一式）を一括生成するサブコマンドなのだ！
var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "起点の節から章の終端まで、連続したシーン群を一括生成するのだ！",
	Long: `指定された聖句リファレンスを起点に、節を1つずつ進めながらシーンを生成し続けるのだ。
登場人物の見た目は STRICT IDENTITY 制約で引き継がれるので、章をまたいで同じ顔が保たれるのだ。
「次の節が存在しない」という応答を章の正常な終端として扱い、そこでアルバムを公開するのだ。`,
	Example: "  ap-bible-go sequence -r 'Gênesis 1:1' -a 9:16 -o gs://my-bucket/genesis-1",
	RunE:    sequenceCommand,
}

// init は将来的にフラグを追加する場合に使うのだ。
func init() {
}

// sequenceCommand は、sequence サブコマンドの実行ロジック本体なのだ。
func sequenceCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Reference == "" {
		return fmt.Errorf("起点となる聖句リファレンス（--reference）を指定してほしいのだ")
	}

	aspect := domain.AspectRatio(opts.AspectRatio)
	if !aspect.Valid() {
		return fmt.Errorf("アスペクト比は 9:16 か 16:9 のどちらかにしてほしいのだ: %q", opts.AspectRatio)
	}

	if opts.MaxScenes < 1 {
		return fmt.Errorf("--max-scenes は1以上にしてほしいのだ: %d", opts.MaxScenes)
	}

	// 1. 設定のロードとコンテキスト構築
	cfg := loadConfigWithOpts()

	slog.Info("章シーケンスモードを起動するのだ！",
		"reference", opts.Reference,
		"aspect", opts.AspectRatio,
		"max_scenes", opts.MaxScenes,
		"output_dir", opts.OutputDir,
		"language", cfg.Language)

	appCtx, err := appbuilder.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// 2. 章アルバム用の HTML ランナーとパブリッシャーを準備
	htmlCfg := builder.BuilderConfig{
		EnableHardWraps: true,
		Mode:            "webtoon",
	}
	md2htmlBuilder, err := builder.NewBuilder(htmlCfg)
	if err != nil {
		return fmt.Errorf("md2htmlBuilder の初期化に失敗したのだ: %w", err)
	}
	md2htmlRunner, err := md2htmlBuilder.BuildRunner()
	if err != nil {
		return fmt.Errorf("md2htmlRunner の初期化に失敗したのだ: %w", err)
	}
	pub := publisher.NewAlbumPublisher(appCtx.Writer, md2htmlRunner)

	// 3. Runner 実行（章の終端まで一気に進むのだ！）
	seqRunner := runner.NewSequenceRunner(appCtx.Manager.NewSession(), pub, runner.SequenceConfig{
		RateInterval: cfg.RateInterval,
		Language:     cfg.Language,
		MaxScenes:    opts.MaxScenes,
	})

	result, err := seqRunner.Run(ctx, opts.Reference, aspect, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("章シーケンスの実行に失敗したのだ: %w", err)
	}

	slog.Info("完了なのだ！章アルバムが出来上がったのだよ。",
		"markdown", result.MarkdownPath,
		"html", result.HTMLPath,
		"images", len(result.ImagePaths))
	return nil
}
