package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// referenceRegex は「書名 章:節」形式の聖句リファレンスをキャプチャします。
// 書名は "1 Samuel" のように数字を含んでもよいため、末尾の「数:数」の直前に
// 少なくとも1文字の非数字があることだけを要求します。
var referenceRegex = regexp.MustCompile(`^(.+\D)\s*(\d+):(\d+)$`)

// ScriptureReference は聖句の位置（書名・章・節）を表す不変の値型です。
type ScriptureReference struct {
	Book    string
	Chapter int
	Verse   int
}

// ParseReference は自由入力のテキストを ScriptureReference に解析します。
// 形式に一致しない場合は nil を返します。呼び出し側は nil を
// 「操作の対象外（no-op）」として扱い、エラーにはしません。
func ParseReference(text string) *ScriptureReference {
	m := referenceRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil {
		return nil
	}
	if chapter < 1 || verse < 1 {
		return nil
	}

	return &ScriptureReference{
		Book:    strings.TrimSpace(m[1]),
		Chapter: chapter,
		Verse:   verse,
	}
}

// Format は "書名 章:節" の正規化された文字列を返します。
func (r ScriptureReference) Format() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// String は Format と同じ正規化表現を返します。
func (r ScriptureReference) String() string {
	return r.Format()
}

// NextVerse は節番号のみを1つ進めたコピーを返します。
// 章ごとの節数は検証しません。章の境界判定は生成サービス側の
// 「節が存在しない」シグナルに委譲されます。
func (r ScriptureReference) NextVerse() ScriptureReference {
	return ScriptureReference{
		Book:    r.Book,
		Chapter: r.Chapter,
		Verse:   r.Verse + 1,
	}
}
