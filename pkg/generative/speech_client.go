package generative

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// GeminiSpeechClient は Gemini の音声生成（AUDIO モダリティ）を使い、
// テキストから生のリニアPCMバイト列を得るクライアントです。
// 返されるPCMのコンテナ化は呼び出し側（pkg/wav）の責務です。
type GeminiSpeechClient struct {
	client *genai.Client
	model  string
}

// NewGeminiSpeechClient は genai クライアントを初期化して返します。
func NewGeminiSpeechClient(ctx context.Context, apiKey, model string) (*GeminiSpeechClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("音声クライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiSpeechClient{
		client: client,
		model:  model,
	}, nil
}

// Speak は指定ボイスでテキストを読み上げ、生のPCMバイト列を返します。
func (c *GeminiSpeechClient) Speak(ctx context.Context, text, voiceName string) ([]byte, error) {
	slog.InfoContext(ctx, "ナレーション音声を生成します", "voice", voiceName, "chars", len(text))

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voiceName,
				},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), config)
	if err != nil {
		return nil, fmt.Errorf("%w: 音声生成呼び出しに失敗しました: %v", ErrService, err)
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, nil
			}
		}
	}

	return nil, ErrNoAudioProduced
}
