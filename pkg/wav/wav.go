// Package wav は、生のリニアPCMバイト列をブラウザで再生可能な
// RIFF/WAVE コンテナに変換します。純粋なデータ変換のみを行い、
// 同じ入力に対して常にバイト単位で同一の出力を返します。
package wav

import (
	"bytes"
	"encoding/binary"
)

const (
	// SampleRate は音声生成サービスが返すPCMの固定サンプリングレートです。
	SampleRate = 24000
	// NumChannels はモノラル固定のチャンネル数です。
	NumChannels = 1
	// BitsPerSample は16bit符号付きリトルエンディアンのサンプル幅です。
	BitsPerSample = 16
	// HeaderSize は正規の RIFF/WAVE ヘッダー長（バイト）です。
	HeaderSize = 44
)

// Encode は16bitモノラルPCM（リトルエンディアン）のバイト列を受け取り、
// 44バイトのヘッダーを先頭に付けた完全なWAVコンテナを返します。
// 空の入力も有効で、その場合は dataSize=0 のヘッダーのみのコンテナになります。
func Encode(pcm []byte) []byte {
	dataSize := uint32(len(pcm))
	byteRate := uint32(SampleRate * NumChannels * BitsPerSample / 8)
	blockAlign := uint16(NumChannels * BitsPerSample / 8)

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(pcm)))

	// RIFF チャンク
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	// fmt サブチャンク（PCM固定）
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))           // fmtチャンク長
	binary.Write(buf, binary.LittleEndian, uint16(1))            // audio format = 1 (PCM)
	binary.Write(buf, binary.LittleEndian, uint16(NumChannels))  // チャンネル数
	binary.Write(buf, binary.LittleEndian, uint32(SampleRate))   // サンプリングレート
	binary.Write(buf, binary.LittleEndian, byteRate)             // バイトレート
	binary.Write(buf, binary.LittleEndian, blockAlign)           // ブロックアライン
	binary.Write(buf, binary.LittleEndian, uint16(BitsPerSample)) // サンプル幅

	// data サブチャンク
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(pcm)

	return buf.Bytes()
}
