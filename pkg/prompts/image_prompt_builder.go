package prompts

import (
	"fmt"
	"strings"
)

const (
	// CinematicTags クオリティ向上のための共通タグ
	CinematicTags = "cinematic composition, high resolution, sharp focus, 8k"

	// SceneNegativePrompt は聖句シーンで抑制したい要素の定義です。
	SceneNegativePrompt = "speech bubble, text, alphabet, letters, words, signatures, watermark, username, photorealism, low quality, distorted, bad anatomy, extra limbs"

	// SceneSystemInstruction は1枚絵としての役割を定義します。
	SceneSystemInstruction = "You are a professional animation film illustrator. Create a single high-quality cinematic scene."

	// RenderingStyle は共通の画風を定義します。
	RenderingStyle = `### GLOBAL VISUAL STYLE ###
- RENDERING: Soft expressive shapes, vibrant colors, no blurring, warm cinematic lighting.`
)

// ImagePromptBuilder は、シーン描写に画風サフィックスを付与して
// 画像生成用のプロンプトを構築します。
type ImagePromptBuilder struct {
	styleSuffix string // "3D animated film style, ..." 等の共通サフィックス
}

// NewImagePromptBuilder は新しい ImagePromptBuilder を生成します。
func NewImagePromptBuilder(styleSuffix string) *ImagePromptBuilder {
	return &ImagePromptBuilder{
		styleSuffix: styleSuffix,
	}
}

// BuildScenePrompt は、ユーザープロンプトとシステムプロンプトを生成します。
// シーン描写の末尾には固定の画風サフィックスが連結され、
// 出力が特定のアニメーション映画調に寄るようにバイアスをかけます。
func (pb *ImagePromptBuilder) BuildScenePrompt(sceneDescription string) (string, string) {
	// --- 1. System Prompt の構築 ---
	var ss strings.Builder
	ss.WriteString(SceneSystemInstruction)
	ss.WriteString("\n\n")
	ss.WriteString(RenderingStyle)
	systemPrompt := ss.String()

	// --- 2. User Prompt のクリーンな結合 ---
	parts := []string{sceneDescription, pb.styleSuffix, CinematicTags}
	var cleanParts []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			cleanParts = append(cleanParts, s)
		}
	}
	prompt := strings.Join(cleanParts, ", ")

	return prompt, systemPrompt
}

// NarrationToneInstruction は子ども向けプロファイルで本文の前に
// 付加されるトーン指示です。
const NarrationToneInstruction = "Read the following in a warm, gentle and cheerful tone, suitable for a young child listening to a bedtime story: "

// NarrationText は話者プロファイルに応じて送信用テキストを整形します。
// 子ども向けプロファイルのみ、本文の前にトーン指示を連結します。
func NarrationText(child bool, text string) string {
	if child {
		return fmt.Sprintf("%s%s", NarrationToneInstruction, text)
	}
	return text
}
