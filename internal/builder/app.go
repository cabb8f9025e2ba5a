package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-bible-kit/pkg/config"
	"github.com/shouni/go-bible-kit/pkg/workflow"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各コマンドに渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     config.Config           // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Manager    *workflow.Manager       // Managerは、生成クライアント群を束ねるワークフロー管理者です。
	Writer     remoteio.OutputWriter   // Writerは、生成された内容を保存するための出力先です。
	Reader     remoteio.InputReader    // Readerは、外部データの読み込みに使用する入力元です。
	HTTPClient httpkit.ClientInterface // httpClient は外部APIとの通信に使う共通クライアント
}

// NewAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返すのだ。
func NewAppContext(ctx context.Context, cfg config.Config) (*AppContext, error) {
	httpClient := httpkit.New(cfg.RequestTimeout)

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	// Managerを一度だけ初期化
	manager, err := workflow.New(ctx, workflow.Args{
		Config:     cfg,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("ワークフローの初期化に失敗したのだ: %w", err)
	}

	return &AppContext{
		Config:     cfg,
		Manager:    manager,
		Writer:     writer,
		Reader:     reader,
		HTTPClient: httpClient,
	}, nil
}
