package workflow

import (
	"sync"
	"sync/atomic"
)

// Narration は1回のナレーション生成の成果物です。再生可能なWAVデータと、
// 読み上げた本文のスナップショットを不可分に保持します。
// スコープ付きリソースであり、Close は何度呼んでも解放は一度だけ行われます。
type Narration struct {
	text     string
	data     []byte
	once     sync.Once
	released atomic.Bool
}

func newNarration(text string, wavData []byte) *Narration {
	return &Narration{
		text: text,
		data: wavData,
	}
}

// Text は読み上げた本文のスナップショットを返します。
// 音声と本文の組がUI側で食い違わないよう、生成時に固定されます。
func (n *Narration) Text() string {
	return n.text
}

// Bytes は再生可能なWAVコンテナのバイト列を返します。
// 解放後は nil を返します。
func (n *Narration) Bytes() []byte {
	return n.data
}

// MimeType は再生用のMIMEタイプを返します。
func (n *Narration) MimeType() string {
	return "audio/wav"
}

// Released はハンドルが解放済みかどうかを返します。
func (n *Narration) Released() bool {
	return n.released.Load()
}

// Close は保持しているデータを解放します。ちょうど一度だけ実行され、
// 二重解放にはなりません。
func (n *Narration) Close() error {
	n.once.Do(func() {
		n.data = nil
		n.released.Store(true)
	})
	return nil
}
