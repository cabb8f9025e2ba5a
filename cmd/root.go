package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-bible-kit/internal/config"
	pkgconfig "github.com/shouni/go-bible-kit/pkg/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は addAppFlags で各フラグと紐付けられる実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Reference, "reference", "r", "", "起点となる聖句リファレンス（例: 'Gênesis 1:1'）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Language, "lang", pkgconfig.DefaultLanguage, "節本文とメッセージの言語コードなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultLocalOutputDir, "保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", pkgconfig.DefaultGeminiModel, "テキスト生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", pkgconfig.DefaultImageModel, "画像生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.SpeechModel, "speech-model", pkgconfig.DefaultSpeechModel, "音声生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", pkgconfig.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 画像生成固有設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.AspectRatio, "aspect", "a", "9:16", "生成画像のアスペクト比（9:16 または 16:9）なのだ。")
	rootCmd.PersistentFlags().IntVar(&opts.MaxScenes, "max-scenes", config.DefaultMaxScenes, "1シーケンスで生成するシーン数の安全上限なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-bible-go",
		addAppFlags,
		preRunAppE,
		sceneCmd,
		sequenceCmd,
		verseCmd,
		narrateCmd,
	)
}
