package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-bible-kit/internal/builder"
	"github.com/shouni/go-bible-kit/pkg/runner"

	"github.com/spf13/cobra"
)

// verseCmd は、聖句リファレンスの本文テキストだけを取得するサブコマンドなのだ。
// 画像や音声は生成しない、軽量な確認用コマンドなのだ。
var verseCmd = &cobra.Command{
	Use:   "verse",
	Short: "聖句リファレンスの本文テキストを取得して表示するのだ。",
	Long: `指定されたリファレンス（例: 'Gênesis 1:1'）の節本文を、指定言語で取得して標準出力に表示するのだ。
--output-file を指定すれば、テキストファイルとしての保存もできるのだ。
存在しない節を指定した場合は、エラーではなく「見つからない」旨のメッセージが返るのだ。`,
	Example: "  ap-bible-go verse -r 'Gênesis 1:1' --lang pt",
	RunE:    verseCommand,
}

// verseOutputFile は verse コマンド固有の保存先フラグなのだ。
var verseOutputFile string

// init は、verse コマンド固有のフラグを定義するのだ。
func init() {
	verseCmd.Flags().StringVar(&verseOutputFile, "output-file", "", "節本文の保存先（省略時は表示のみ）なのだ。")
}

// verseCommand は、verse サブコマンドの実行ロジック本体なのだ。
func verseCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Reference == "" {
		return fmt.Errorf("聖句リファレンス（--reference）を指定してほしいのだ")
	}

	cfg := loadConfigWithOpts()

	slog.Info("節本文の取得を開始するのだ",
		"reference", opts.Reference, "language", cfg.Language)

	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	verseRunner := runner.NewVerseRunner(appCtx.Manager.NewSession(), appCtx.Writer)
	text, err := verseRunner.Run(ctx, opts.Reference, cfg.Language, verseOutputFile)
	if err != nil {
		return fmt.Errorf("節本文の取得に失敗したのだ: %w", err)
	}

	// 取得結果はそのまま標準出力へ流すのだ
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
