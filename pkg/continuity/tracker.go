// Package continuity は、章をまたぐシーン列の中でキャラクターの
// 外見描写を維持するための状態を管理します。
package continuity

import (
	"github.com/shouni/go-bible-kit/pkg/domain"
)

// Mode は生成呼び出しに渡す継続性の指示モードです。
type Mode string

const (
	// ModeFresh はキャスト未確定の初回生成です。外見の考案と固定をAIに任せます。
	ModeFresh Mode = "fresh"
	// ModeContinuation は既存キャストの外見をそのまま再利用させる継続生成です。
	// 既存の描写の変更は禁止され、新規キャラクターの追加のみ許可されます。
	ModeContinuation Mode = "continuation"
)

// Constraint は1回の生成呼び出しに付与する継続性制約です。
// Cast は挿入順を保持した (名前, 描写) ペアのリストとして直列化されます。
type Constraint struct {
	Mode Mode
	Cast domain.Cast
}

// Tracker はアクティブなシーン列のキャストを唯一所有します。
// 一度登場したキャラクターの描写を書き換えることはなく、
// マージは常にサービス側の結果による全置換です。
type Tracker struct {
	cast domain.Cast
}

// NewTracker は空のキャストを持つ Tracker を生成します。
func NewTracker() *Tracker {
	return &Tracker{}
}

// Constraint は現在のキャストに応じた継続性制約を返します。
// キャストが空なら fresh、そうでなければ現在のキャストを積んだ continuation です。
func (t *Tracker) Constraint() Constraint {
	if len(t.cast) == 0 {
		return Constraint{Mode: ModeFresh}
	}
	return Constraint{Mode: ModeContinuation, Cast: t.cast.Clone()}
}

// Merge はサービスが返したキャストで現在の状態を全置換します。
// フィールド単位の突合せは行いません。サービス側がマージ済み集合の
// 正であり、以前いたキャラクターが結果に無ければそのまま消えます。
func (t *Tracker) Merge(result domain.SceneResponse) {
	t.cast = result.Characters.Clone()
}

// Reset はキャストを空に戻します。シーン列の終了・恒久的な失敗・
// 新しいリファレンスの入力時に呼びます。
func (t *Tracker) Reset() {
	t.cast = nil
}

// Snapshot は表示用の防御的コピーを返します。
func (t *Tracker) Snapshot() domain.Cast {
	return t.cast.Clone()
}

// Empty はキャストが空かどうかを返します。
func (t *Tracker) Empty() bool {
	return len(t.cast) == 0
}

// Len は現在のキャスト人数を返します。
func (t *Tracker) Len() int {
	return len(t.cast)
}
