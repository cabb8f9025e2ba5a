package config

import (
	"time"

	pkgconfig "github.com/shouni/go-bible-kit/pkg/config"

	"github.com/shouni/go-utils/envutil"
)

// CLI用のデフォルト値なのだ
const (
	DefaultLocalOutputDir = "output"       // 成果物のデフォルト保存先なのだ
	DefaultNarrationFile  = "output/narration.wav"
	DefaultMaxScenes      = 30             // 1回のシーケンスで生成するシーン数の上限なのだ
)

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() pkgconfig.Config {
	cfg := pkgconfig.DefaultConfig()
	cfg.GeminiAPIKey = envutil.GetEnv("GEMINI_API_KEY", "")
	cfg.GeminiModel = envutil.GetEnv("GEMINI_MODEL", pkgconfig.DefaultGeminiModel)
	cfg.ImageModel = envutil.GetEnv("IMAGE_GEMINI_MODEL", pkgconfig.DefaultImageModel)
	cfg.SpeechModel = envutil.GetEnv("SPEECH_GEMINI_MODEL", pkgconfig.DefaultSpeechModel)
	cfg.StyleSuffix = envutil.GetEnv("IMAGE_PROMPT_SUFFIX", pkgconfig.DefaultStyleSuffix)
	cfg.Language = envutil.GetEnv("BIBLE_LANGUAGE", pkgconfig.DefaultLanguage)
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 入力関連
	Reference string // --reference: 起点となる聖句リファレンス
	Text      string // --text: ナレーションさせる本文
	ScriptURL string // --script-url: ナレーション本文をWebページから抽出する場合のURL

	// 生成結果の出力設定
	OutputDir  string // --output-dir: 保存先（ローカル or gs://...）
	OutputFile string // --output-file: ナレーションWAVの保存パス

	// 生成挙動設定
	AspectRatio  string // --aspect: "9:16" または "16:9"
	VoiceProfile string // --voice: "standard-adult" または "child"
	Language     string // --lang: 節本文の言語コード
	MaxScenes    int    // --max-scenes: シーケンスの安全上限

	// AIモデル設定
	AIModel     string // --model: テキスト生成用のGeminiモデル
	ImageModel  string // --image-model: 画像生成用のGeminiモデル
	SpeechModel string // --speech-model: 音声生成用のGeminiモデル

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
