package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Run("空のPCMでもヘッダーのみの正規コンテナになること", func(t *testing.T) {
		out := Encode(nil)
		if len(out) != HeaderSize {
			t.Fatalf("期待値 %dバイト, 実際の値 %dバイト", HeaderSize, len(out))
		}

		// dataSize フィールド（オフセット40）が0であること
		dataSize := binary.LittleEndian.Uint32(out[40:44])
		if dataSize != 0 {
			t.Errorf("dataSize の期待値 0, 実際の値 %d", dataSize)
		}
	})

	t.Run("ヘッダーの各フィールドが仕様どおりであること", func(t *testing.T) {
		pcm := []byte{0x01, 0x02, 0x03, 0x04}
		out := Encode(pcm)

		if len(out) != HeaderSize+len(pcm) {
			t.Fatalf("全長の期待値 %d, 実際の値 %d", HeaderSize+len(pcm), len(out))
		}

		// チャンク識別子
		if string(out[0:4]) != "RIFF" {
			t.Errorf("RIFF識別子が不正です: %q", out[0:4])
		}
		if string(out[8:12]) != "WAVE" {
			t.Errorf("WAVE識別子が不正です: %q", out[8:12])
		}
		if string(out[12:16]) != "fmt " {
			t.Errorf("fmt識別子が不正です: %q", out[12:16])
		}
		if string(out[36:40]) != "data" {
			t.Errorf("data識別子が不正です: %q", out[36:40])
		}

		// RIFFチャンクサイズ = 36 + dataSize
		if got := binary.LittleEndian.Uint32(out[4:8]); got != uint32(36+len(pcm)) {
			t.Errorf("RIFFチャンクサイズの期待値 %d, 実際の値 %d", 36+len(pcm), got)
		}

		// フォーマット仕様（PCM / モノラル / 24kHz / 16bit）
		if got := binary.LittleEndian.Uint16(out[20:22]); got != 1 {
			t.Errorf("audio format の期待値 1 (PCM), 実際の値 %d", got)
		}
		if got := binary.LittleEndian.Uint16(out[22:24]); got != NumChannels {
			t.Errorf("チャンネル数の期待値 %d, 実際の値 %d", NumChannels, got)
		}
		if got := binary.LittleEndian.Uint32(out[24:28]); got != SampleRate {
			t.Errorf("サンプリングレートの期待値 %d, 実際の値 %d", SampleRate, got)
		}
		wantByteRate := uint32(SampleRate * NumChannels * BitsPerSample / 8)
		if got := binary.LittleEndian.Uint32(out[28:32]); got != wantByteRate {
			t.Errorf("バイトレートの期待値 %d, 実際の値 %d", wantByteRate, got)
		}
		if got := binary.LittleEndian.Uint16(out[34:36]); got != BitsPerSample {
			t.Errorf("サンプル幅の期待値 %d, 実際の値 %d", BitsPerSample, got)
		}

		// dataSize と PCMペイロード本体
		if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
			t.Errorf("dataSize の期待値 %d, 実際の値 %d", len(pcm), got)
		}
		if !bytes.Equal(out[HeaderSize:], pcm) {
			t.Errorf("ペイロードが一致しません: %v", out[HeaderSize:])
		}
	})

	t.Run("同じ入力から常にバイト単位で同一の出力が得られること", func(t *testing.T) {
		pcm := make([]byte, 480)
		for i := range pcm {
			pcm[i] = byte(i % 251)
		}

		out1 := Encode(pcm)
		out2 := Encode(pcm)
		if !bytes.Equal(out1, out2) {
			t.Error("エンコード結果が決定論的ではありません")
		}
	})
}
