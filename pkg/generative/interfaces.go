package generative

import (
	"context"

	"github.com/shouni/go-bible-kit/pkg/continuity"
	"github.com/shouni/go-bible-kit/pkg/domain"
)

// SceneDescriber は、聖句リファレンスと継続性制約から
// 構造化されたシーン描写を生成する契約です。
type SceneDescriber interface {
	// Describe は scene_prompt と characters を持つ構造化データを返します。
	// 節が存在しない場合は ErrVerseNotFound を返します。
	Describe(ctx context.Context, refText string, constraint continuity.Constraint) (*domain.SceneResponse, error)
}

// ImageRequest は1枚の画像生成要求です。
type ImageRequest struct {
	Prompt         string
	SystemPrompt   string
	NegativePrompt string
	AspectRatio    domain.AspectRatio
	Seed           int64
}

// ImageResult は生成された画像データとそのメタデータです。
type ImageResult struct {
	Data     []byte
	MimeType string
}

// ImageRenderer は、プロンプトから画像を生成する契約です。
type ImageRenderer interface {
	// Render は画像バイト列を返します。何も生成されなかった場合は
	// ErrNoImageProduced を返します。
	Render(ctx context.Context, req ImageRequest) (*ImageResult, error)
}

// VerseFetcher は、聖句本文を指定言語で取得する契約です。
type VerseFetcher interface {
	// Fetch はプレーンテキストの節本文を返します。
	// 空の結果は ErrEmptyResult になります。
	Fetch(ctx context.Context, refText, languageCode string) (string, error)
}

// SpeechGenerator は、テキストから生のPCM音声を生成する契約です。
type SpeechGenerator interface {
	// Speak は 24000Hz/16bit/モノラルのリニアPCMバイト列を返します。
	// 音声が返されなかった場合は ErrNoAudioProduced を返します。
	Speak(ctx context.Context, text, voiceName string) ([]byte, error)
}
