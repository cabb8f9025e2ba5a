package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel = "gemini-3-flash-preview"
	DefaultImageModel  = "gemini-3-pro-image-preview"
	DefaultSpeechModel = "gemini-2.5-flash-preview-tts"

	DefaultRateInterval = 10 * time.Second
	DefaultHTTPTimeout  = 30 * time.Second

	// DefaultLanguage は節本文とエラーメッセージの既定言語です。
	DefaultLanguage = "pt"

	// DefaultVoiceAdult / DefaultVoiceChild は話者プロファイルに対応する
	// 固定のボイス識別子です。
	DefaultVoiceAdult = "Charon"
	DefaultVoiceChild = "Leda"

	// DefaultStyleSuffix は、出力を特定のアニメーション映画調へ寄せるために
	// すべての画像プロンプト末尾へ連結される固定の画風サフィックスです。
	DefaultStyleSuffix = "3D animated film style, warm cinematic lighting, soft expressive character design, painterly textures, vibrant colors, family-friendly, masterpiece, ultra-detailed, high resolution"
)

// Config は Go Bible Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string
	ImageModel  string
	SpeechModel string

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Generation Settings ---
	StyleSuffix  string
	RateInterval time.Duration

	// --- Localization ---
	Language string

	// --- Narration Voices ---
	VoiceAdult string
	VoiceChild string

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		ImageModel:     DefaultImageModel,
		SpeechModel:    DefaultSpeechModel,
		StyleSuffix:    DefaultStyleSuffix,
		RateInterval:   DefaultRateInterval,
		Language:       DefaultLanguage,
		VoiceAdult:     DefaultVoiceAdult,
		VoiceChild:     DefaultVoiceChild,
		RequestTimeout: DefaultHTTPTimeout,
	}
}
