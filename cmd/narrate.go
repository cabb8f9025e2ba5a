package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-bible-kit/internal/builder"
	"github.com/shouni/go-bible-kit/internal/config"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/runner"

	"github.com/shouni/go-web-exact/v2/pkg/extract"
	"github.com/spf13/cobra"
)

// narrateCmd は、テキストまたはWebページ本文を読み上げて
// WAVファイルとして保存するサブコマンドなのだ。
var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "テキストのナレーション音声を生成してWAVで保存するのだ。",
	Long: `--text で渡されたテキスト、または --script-url で指定したWebページから抽出した本文を
Gemini の音声合成で読み上げ、24kHz モノラル 16bit のWAVファイルとして保存するのだ。
--voice child を指定すると、子ども向けのやさしい語り口になるのだ。`,
	Example: "  ap-bible-go narrate --text 'No princípio...' --voice child --output-file output/narration.wav",
	RunE:    narrateCommand,
}

// init は、narrate コマンド固有のフラグを定義するのだ。
func init() {
	narrateCmd.Flags().StringVarP(&opts.Text, "text", "t", "", "読み上げるテキスト本文なのだ。")
	narrateCmd.Flags().StringVar(&opts.ScriptURL, "script-url", "", "本文を抽出するWebページのURLなのだ。--text の代わりに使えるのだ。")
	narrateCmd.Flags().StringVar(&opts.VoiceProfile, "voice", string(domain.VoiceStandardAdult), "話者プロファイル（standard-adult または child）なのだ。")
	narrateCmd.Flags().StringVarP(&opts.OutputFile, "output-file", "f", config.DefaultNarrationFile, "WAVファイルの保存先なのだ。")
}

// narrateCommand は、narrate サブコマンドの実行ロジック本体なのだ。
func narrateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Text == "" && opts.ScriptURL == "" {
		return fmt.Errorf("読み上げる本文（--text）かWebページURL（--script-url）のどちらかを指定してほしいのだ")
	}

	profile := domain.VoiceProfile(opts.VoiceProfile)
	if !profile.Valid() {
		return fmt.Errorf("話者プロファイルは standard-adult か child のどちらかにしてほしいのだ: %q", opts.VoiceProfile)
	}

	cfg := loadConfigWithOpts()

	slog.Info("ナレーション生成モードを起動するのだ！",
		"voice", opts.VoiceProfile,
		"script_url", opts.ScriptURL,
		"output_file", opts.OutputFile,
		"speech_model", cfg.SpeechModel)

	appCtx, err := builder.NewAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --script-url を使う場合のみ抽出器を用意する
	var extractor *extract.Extractor
	if opts.ScriptURL != "" {
		extractor, err = extract.NewExtractor(appCtx.HTTPClient)
		if err != nil {
			return fmt.Errorf("エクストラクタの初期化に失敗したのだ: %w", err)
		}
	}

	narrateRunner := runner.NewNarrateRunner(appCtx.Manager.NewSession(), appCtx.Writer, extractor)
	narration, err := narrateRunner.Run(ctx, opts.Text, opts.ScriptURL, profile, opts.OutputFile)
	if err != nil {
		return fmt.Errorf("ナレーションの生成に失敗したのだ: %w", err)
	}
	defer narration.Close()

	slog.Info("完了なのだ！ナレーションが保存されたのだよ。",
		"output_file", opts.OutputFile, "bytes", len(narration.Bytes()))
	return nil
}
