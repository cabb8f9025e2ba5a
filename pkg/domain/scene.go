package domain

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Character はシーンに登場する人物とその外見描写を保持します。
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"` // 生成プロンプトに注入する外見上の特徴
}

// String はキャラクターの情報を文字列で返すのだ。
func (c Character) String() string {
	return fmt.Sprintf("%s: %s", c.Name, c.Description)
}

// Cast は登場キャラクターの順序付きリストです。
// JSON配列として受け渡すことで、挿入順をそのまま保持します。
type Cast []Character

// Clone は防御的コピーを返します。内部状態が呼び出し元によって
// 変更されるのを防ぐために使用します。
func (c Cast) Clone() Cast {
	if c == nil {
		return nil
	}
	copied := make(Cast, len(c))
	copy(copied, c)
	return copied
}

// Find は名前からキャラクターを特定します。見つからない場合は nil を返します。
func (c Cast) Find(name string) *Character {
	for i := range c {
		if c[i].Name == name {
			res := c[i]
			return &res
		}
	}
	return nil
}

// Names は挿入順のキャラクター名リストを返します。
func (c Cast) Names() []string {
	names := make([]string, 0, len(c))
	for _, ch := range c {
		names = append(names, ch.Name)
	}
	return names
}

// SceneResponse は AI モデルから返される1シーン分の構造化データです。
type SceneResponse struct {
	ScenePrompt string `json:"scene_prompt"`
	Characters  Cast   `json:"characters"`
}

// GetSeedFromBook は書名から決定論的なシード値を生成します。
// 同じ書に属するシーン群が同一シードを共有することで、
// ローカルに聖書の知識を持たずに画風の一貫性を底上げします。
func GetSeedFromBook(book string) int64 {
	hash := sha256.Sum256([]byte(book))
	// ハッシュの最初の4バイトを int32 に変換
	seed := int32(binary.BigEndian.Uint32(hash[:4]))
	// Geminiのシード値は正の数が望ましいため、最上位ビットを落とすのが安全なのだ
	return int64(seed & 0x7FFFFFFF)
}
