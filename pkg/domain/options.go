package domain

// AspectRatio は生成画像の縦横比を表します。
type AspectRatio string

const (
	// AspectPortrait は縦長（スマートフォン向け）の比率です。
	AspectPortrait AspectRatio = "9:16"
	// AspectLandscape は横長（シネマ向け）の比率です。
	AspectLandscape AspectRatio = "16:9"
)

// Valid は縦横比が列挙された2値のいずれかであるかを返します。
func (a AspectRatio) Valid() bool {
	return a == AspectPortrait || a == AspectLandscape
}

// VoiceProfile はナレーション音声の話者プロファイルを表します。
type VoiceProfile string

const (
	// VoiceStandardAdult は標準の大人向けナレーション音声です。
	VoiceStandardAdult VoiceProfile = "standard-adult"
	// VoiceChild は子ども向けの、トーン指示付きナレーション音声です。
	VoiceChild VoiceProfile = "child"
)

// Valid は話者プロファイルが列挙された2値のいずれかであるかを返します。
func (v VoiceProfile) Valid() bool {
	return v == VoiceStandardAdult || v == VoiceChild
}
