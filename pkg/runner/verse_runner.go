package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-bible-kit/pkg/workflow"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// VerseRunner は節本文の取得と（任意の）保存を行います。
type VerseRunner struct {
	session *workflow.Session
	writer  remoteio.OutputWriter
}

// NewVerseRunner は依存関係を注入して VerseRunner を初期化します。
func NewVerseRunner(session *workflow.Session, writer remoteio.OutputWriter) *VerseRunner {
	return &VerseRunner{
		session: session,
		writer:  writer,
	}
}

// Run は節本文を取得して返します。outputFile が空でなければ保存も行います。
func (r *VerseRunner) Run(ctx context.Context, refText, languageCode, outputFile string) (string, error) {
	text, err := r.session.FetchVerseText(ctx, refText, languageCode)
	if err != nil {
		return "", err
	}

	if outputFile != "" && r.writer != nil {
		if err := r.writer.Write(ctx, outputFile, strings.NewReader(text), "text/plain; charset=utf-8"); err != nil {
			return "", fmt.Errorf("節本文の保存に失敗しました: %w", err)
		}
	}

	return text, nil
}
