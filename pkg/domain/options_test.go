package domain

import "testing"

func TestAspectRatioValid(t *testing.T) {
	if !AspectPortrait.Valid() || !AspectLandscape.Valid() {
		t.Error("定義済みのアスペクト比が無効と判定されました")
	}
	for _, invalid := range []AspectRatio{"", "4:3", "portrait"} {
		if invalid.Valid() {
			t.Errorf("'%s' が有効と判定されました", invalid)
		}
	}
}

func TestVoiceProfileValid(t *testing.T) {
	if !VoiceStandardAdult.Valid() || !VoiceChild.Valid() {
		t.Error("定義済みの話者プロファイルが無効と判定されました")
	}
	for _, invalid := range []VoiceProfile{"", "adult", "robot"} {
		if invalid.Valid() {
			t.Errorf("'%s' が有効と判定されました", invalid)
		}
	}
}
