package generative

import (
	"context"
	"errors"
)

// 生成サービス境界で分類されるエラー種別のセンチネルです。
// 下層のトランスポートエラーをそのまま上位へ流すことはせず、
// すべての失敗はここで定義された種別に包み直されます。
// 文字列の部分一致による判定は行いません。
var (
	// ErrVerseNotFound は要求された節が存在しない（多くは章の末尾）ことを示す
	// 正常な終端シグナルです。システムエラーとしては扱いません。
	ErrVerseNotFound = errors.New("verse not found")

	// ErrService はトランスポート障害やサーバー側の一時的な失敗です。
	// リトライを促すメッセージとともに表面化されます。
	ErrService = errors.New("generation service error")

	// ErrMalformedResponse は構造化ペイロードを抽出できなかったか、
	// 必須フィールドが欠けていたことを示します。自動リトライはしません。
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrEmptyResult はテキスト取得が空の結果に終わったことを示します。
	ErrEmptyResult = errors.New("empty result")

	// ErrNoImageProduced は画像が1枚も生成されなかったこと
	// （セーフティフィルタによる抑制など）を示します。
	ErrNoImageProduced = errors.New("no image produced")

	// ErrNoAudioProduced は音声データが返されなかったことを示します。
	ErrNoAudioProduced = errors.New("no audio produced")

	// ErrPrecondition は空入力や操作の多重実行など、ネットワーク呼び出し前に
	// 同期的に拒否される前提条件違反です。エラーログの対象にはしません。
	ErrPrecondition = errors.New("precondition violation")
)

// Kind は表面化用メッセージの選択に使うエラー種別のキーです。
type Kind string

const (
	KindBoundary     Kind = "boundary"
	KindService      Kind = "service"
	KindMalformed    Kind = "malformed"
	KindEmpty        Kind = "empty"
	KindNoImage      Kind = "no_image"
	KindNoAudio      Kind = "no_audio"
	KindPrecondition Kind = "precondition"
)

// KindOf はエラーを種別キーへ分類します。
// 未知のエラー（コンテキストの中断を含む）は一時的なサービス障害として扱います。
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrVerseNotFound):
		return KindBoundary
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformed
	case errors.Is(err, ErrEmptyResult):
		return KindEmpty
	case errors.Is(err, ErrNoImageProduced):
		return KindNoImage
	case errors.Is(err, ErrNoAudioProduced):
		return KindNoAudio
	case errors.Is(err, ErrPrecondition):
		return KindPrecondition
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindService
	default:
		return KindService
	}
}
