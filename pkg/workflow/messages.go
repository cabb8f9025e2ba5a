package workflow

import (
	"errors"

	"github.com/shouni/go-bible-kit/pkg/generative"
)

// 利用者向けメッセージのカタログです。生のトランスポートエラーは
// ここを通らずに表示層へ届くことはありません。
var messageCatalogs = map[string]map[generative.Kind]string{
	"pt": {
		generative.KindBoundary:     "Fim do capítulo alcançado.",
		generative.KindService:      "O serviço de geração está instável no momento. Tente novamente.",
		generative.KindMalformed:    "Não foi possível processar a resposta gerada.",
		generative.KindEmpty:        "Nenhum texto foi retornado. Verifique a referência e tente novamente.",
		generative.KindNoImage:      "Nenhuma imagem foi gerada. Ajuste a descrição e tente novamente.",
		generative.KindNoAudio:      "Nenhum áudio foi gerado. Tente novamente com outro texto.",
		generative.KindPrecondition: "Operação indisponível no estado atual.",
	},
	"en": {
		generative.KindBoundary:     "End of chapter reached.",
		generative.KindService:      "The generation service is unstable right now. Please try again.",
		generative.KindMalformed:    "The generated response could not be processed.",
		generative.KindEmpty:        "No text was returned. Check the reference and try again.",
		generative.KindNoImage:      "No image was produced. Adjust the description and try again.",
		generative.KindNoAudio:      "No audio was produced. Try again with different text.",
		generative.KindPrecondition: "This operation is not available in the current state.",
	},
}

// MessageFor は言語コードとエラー種別に応じたメッセージを返します。
// 未知の言語は英語カタログへフォールバックします。
func MessageFor(lang string, kind generative.Kind) string {
	catalog, ok := messageCatalogs[lang]
	if !ok {
		catalog = messageCatalogs["en"]
	}
	if msg, ok := catalog[kind]; ok {
		return msg
	}
	return catalog[generative.KindService]
}

// FlowError は、分類済みのエラー種別と利用者向けメッセージを持つ
// オーケストレーター境界のエラーです。
type FlowError struct {
	kind    generative.Kind
	message string
	err     error
}

// NewFlowError は下層のエラーを分類し、言語に応じたメッセージを付与します。
func NewFlowError(lang string, err error) *FlowError {
	kind := generative.KindOf(err)
	return &FlowError{
		kind:    kind,
		message: MessageFor(lang, kind),
		err:     err,
	}
}

// Error は利用者向けメッセージを返します。
func (e *FlowError) Error() string {
	return e.message
}

// Unwrap は分類前のエラーを返します。errors.Is による判別に使います。
func (e *FlowError) Unwrap() error {
	return e.err
}

// Kind は分類済みのエラー種別キーを返します。
func (e *FlowError) Kind() generative.Kind {
	return e.kind
}

// IsBoundary は、エラーが章の終端シグナル（正常な終了）かどうかを返します。
func IsBoundary(err error) bool {
	return errors.Is(err, generative.ErrVerseNotFound)
}

// IsPrecondition は、エラーが同期的な前提条件違反かどうかを返します。
func IsPrecondition(err error) bool {
	return errors.Is(err, generative.ErrPrecondition)
}
