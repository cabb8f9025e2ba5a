package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/workflow"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
)

// NarrateRunner はテキストまたはWebページ本文のナレーション音声を生成し、
// WAVファイルとして保存します。
type NarrateRunner struct {
	session   *workflow.Session
	writer    remoteio.OutputWriter
	extractor *extract.Extractor
}

// NewNarrateRunner は依存関係を注入して NarrateRunner を初期化します。
// extractor は --script-url を使わない場合は nil でも構いません。
func NewNarrateRunner(session *workflow.Session, writer remoteio.OutputWriter, extractor *extract.Extractor) *NarrateRunner {
	return &NarrateRunner{
		session:   session,
		writer:    writer,
		extractor: extractor,
	}
}

// Run はナレーションを生成して保存し、生成済みハンドルを返します。
// scriptURL が指定された場合は、Webページから本文を抽出して読み上げます。
func (r *NarrateRunner) Run(ctx context.Context, text, scriptURL string, profile domain.VoiceProfile, outputFile string) (*workflow.Narration, error) {
	if scriptURL != "" {
		if r.extractor == nil {
			return nil, fmt.Errorf("URL抽出が初期化されていません")
		}
		extracted, _, err := r.extractor.FetchAndExtractText(ctx, scriptURL)
		if err != nil {
			return nil, fmt.Errorf("Webページ本文の抽出に失敗しました: %w", err)
		}
		text = strings.TrimSpace(extracted)
	}

	narration, err := r.session.Narrate(ctx, text, profile)
	if err != nil {
		return nil, err
	}

	if err := r.writer.Write(ctx, outputFile, bytes.NewReader(narration.Bytes()), narration.MimeType()); err != nil {
		return nil, fmt.Errorf("WAVファイルの保存に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "ナレーションを保存しました",
		"output", outputFile, "profile", profile, "bytes", len(narration.Bytes()))

	return narration, nil
}
