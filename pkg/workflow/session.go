package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/shouni/go-bible-kit/pkg/config"
	"github.com/shouni/go-bible-kit/pkg/continuity"
	"github.com/shouni/go-bible-kit/pkg/domain"
	"github.com/shouni/go-bible-kit/pkg/generative"
	"github.com/shouni/go-bible-kit/pkg/prompts"
	"github.com/shouni/go-bible-kit/pkg/wav"
)

// Session は1つの章トラバーサルの逐次実行エンジンです。
// シーン列の状態（確定リファレンス・キャスト・最新画像）を唯一所有し、
// すべての変更はここで定義された操作を通してのみ行われます。
//
// 同時に実行できる操作は1つだけです。実行中に別の操作が呼ばれた場合は
// キューイングせず、前提条件違反として同期的に拒否します。
type Session struct {
	scenes       generative.SceneDescriber
	images       generative.ImageRenderer
	verses       generative.VerseFetcher
	speech       generative.SpeechGenerator
	imagePrompts *prompts.ImagePromptBuilder
	cfg          config.Config

	busy    atomic.Bool
	tracker *continuity.Tracker

	active bool
	// confirmed は両方の生成（シーン描写と画像）が成功した最後のリファレンスです。
	// proposed は操作の実行中だけ立つ楽観的な先行値で、失敗時には破棄されます。
	confirmed *domain.ScriptureReference
	proposed  *domain.ScriptureReference

	scenePrompt   string
	aspect        domain.AspectRatio
	lastImage     []byte
	lastImageMime string
	narration     *Narration
}

// NewSession は依存関係を注入して Session を初期化します。
// 通常は Manager.NewSession から生成します。
func NewSession(cfg config.Config, scenes generative.SceneDescriber, images generative.ImageRenderer, verses generative.VerseFetcher, speech generative.SpeechGenerator) *Session {
	return &Session{
		scenes:       scenes,
		images:       images,
		verses:       verses,
		speech:       speech,
		imagePrompts: prompts.NewImagePromptBuilder(cfg.StyleSuffix),
		cfg:          cfg,
		tracker:      continuity.NewTracker(),
		aspect:       domain.AspectPortrait,
	}
}

// GeneratePrompt は、新しいリファレンスに対する最初のシーン描写を生成します。
// 継続性状態を空に戻したうえで fresh モードの生成を行い、成功時は
// 編集可能なシーンプロンプトと返されたキャストを保持します。
func (s *Session) GeneratePrompt(ctx context.Context, refText string) (*ScenePreview, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if strings.TrimSpace(refText) == "" {
		return nil, s.precondition("リファレンスが空です")
	}
	if s.active {
		return nil, s.precondition("シーケンスの実行中は新しいリファレンスを開始できません")
	}
	ref := domain.ParseReference(refText)
	if ref == nil {
		return nil, s.precondition("リファレンスの形式を解釈できません")
	}

	s.tracker.Reset()

	resp, err := s.scenes.Describe(ctx, ref.Format(), s.tracker.Constraint())
	if err != nil {
		return nil, s.surface(err)
	}

	s.tracker.Merge(*resp)
	s.scenePrompt = resp.ScenePrompt
	s.confirmed = ref

	slog.InfoContext(ctx, "最初のシーン描写を取得しました",
		"reference", ref.Format(), "cast", s.tracker.Len())

	return &ScenePreview{
		Reference: *ref,
		Prompt:    resp.ScenePrompt,
		Cast:      s.tracker.Snapshot(),
	}, nil
}

// GenerateImage は、（編集済みかもしれない）シーンプロンプトから画像を生成します。
// 成功時にシーケンスをアクティブにし、画像バイト列を保持します。
// 失敗時はシーケンス状態を一切変更しません。
func (s *Session) GenerateImage(ctx context.Context, promptText string, aspect domain.AspectRatio) (*generative.ImageResult, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if strings.TrimSpace(promptText) == "" {
		return nil, s.precondition("シーンプロンプトが空です")
	}
	if !aspect.Valid() {
		return nil, s.precondition("アスペクト比は 9:16 か 16:9 を指定してください")
	}

	result, err := s.renderScene(ctx, promptText, aspect)
	if err != nil {
		return nil, s.surface(err)
	}

	s.active = true
	s.aspect = aspect
	s.scenePrompt = promptText
	s.lastImage = result.Data
	s.lastImageMime = result.MimeType

	return result, nil
}

// Advance はシーケンスを次の節へ進めます。
// リファレンスを楽観的に先行させてから continuation モードの生成を行い、
// シーン描写と画像の両方が成功したときにだけ前進を確定します。
// 節が存在しない場合は通常の終端としてシーケンスを閉じます。
func (s *Session) Advance(ctx context.Context) (*SceneAdvance, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if !s.active || s.confirmed == nil {
		return nil, s.precondition("アクティブなシーケンスがありません")
	}
	if s.tracker.Empty() {
		return nil, s.precondition("継続できるキャストがありません")
	}

	next := s.confirmed.NextVerse()
	s.proposed = &next // 応答性のための楽観的更新

	resp, err := s.scenes.Describe(ctx, next.Format(), s.tracker.Constraint())
	if err != nil {
		s.proposed = nil // 最後に確定したリファレンスへ復帰
		if errors.Is(err, generative.ErrVerseNotFound) {
			// 章の終端。システムエラーではなく正常な終了なのだ。
			s.active = false
			s.tracker.Reset()
			slog.InfoContext(ctx, "章の終端に到達しました", "reference", s.confirmed.Format())
			return nil, s.surface(err)
		}
		return nil, s.surface(err)
	}

	s.tracker.Merge(*resp)
	s.scenePrompt = resp.ScenePrompt

	result, err := s.renderScene(ctx, resp.ScenePrompt, s.aspect)
	if err != nil {
		// 画像が失敗した節にリファレンスを残さない。リトライは確定値から。
		s.proposed = nil
		return nil, s.surface(err)
	}

	s.lastImage = result.Data
	s.lastImageMime = result.MimeType
	s.confirmed = &next
	s.proposed = nil

	slog.InfoContext(ctx, "シーケンスを前進させました",
		"reference", next.Format(), "cast", s.tracker.Len())

	return &SceneAdvance{
		Reference: next,
		Prompt:    resp.ScenePrompt,
		Cast:      s.tracker.Snapshot(),
		Image:     result,
	}, nil
}

// FetchVerseText は節本文を取得します。シーケンス状態には依存せず、
// 状態を変更しない読み取り専用の操作です。
func (s *Session) FetchVerseText(ctx context.Context, refText, languageCode string) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if strings.TrimSpace(refText) == "" {
		return "", s.precondition("リファレンスが空です")
	}
	if languageCode == "" {
		languageCode = s.cfg.Language
	}

	text, err := s.verses.Fetch(ctx, refText, languageCode)
	if err != nil {
		return "", s.surface(err)
	}
	return text, nil
}

// Narrate はテキストを読み上げ、WAVコンテナ化した再生用ハンドルを返します。
// 以前のハンドルは新しいハンドルの設置前に必ず解放されます。
func (s *Session) Narrate(ctx context.Context, text string, profile domain.VoiceProfile) (*Narration, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if strings.TrimSpace(text) == "" {
		return nil, s.precondition("ナレーション本文が空です")
	}
	if !profile.Valid() {
		return nil, s.precondition("話者プロファイルは standard-adult か child を指定してください")
	}

	child := profile == domain.VoiceChild
	voice := s.cfg.VoiceAdult
	if child {
		voice = s.cfg.VoiceChild
	}

	pcm, err := s.speech.Speak(ctx, prompts.NarrationText(child, text), voice)
	if err != nil {
		return nil, s.surface(err)
	}

	// 本文のスナップショットとWAVデータを不可分に束ねる
	narration := newNarration(text, wav.Encode(pcm))

	if s.narration != nil {
		s.narration.Close()
	}
	s.narration = narration

	return narration, nil
}

// Close は保持しているナレーションハンドルを解放します。
// セッションの破棄時に必ず呼びます。
func (s *Session) Close() error {
	if s.narration != nil {
		s.narration.Close()
		s.narration = nil
	}
	return nil
}

// Active はシーケンスが進行中かどうかを返します。
func (s *Session) Active() bool {
	return s.active
}

// CurrentReference は外部へ公開する確定済みリファレンスを返します。
// 未確定（初回生成前）の場合は nil です。
func (s *Session) CurrentReference() *domain.ScriptureReference {
	if s.confirmed == nil {
		return nil
	}
	ref := *s.confirmed
	return &ref
}

// InFlightReference は、操作の実行中だけ見える先行リファレンスを返します。
func (s *Session) InFlightReference() (domain.ScriptureReference, bool) {
	if s.proposed == nil {
		return domain.ScriptureReference{}, false
	}
	return *s.proposed, true
}

// ScenePrompt は現在の編集可能なシーンプロンプトを返します。
func (s *Session) ScenePrompt() string {
	return s.scenePrompt
}

// Cast は現在のキャストの防御的コピーを返します。
func (s *Session) Cast() domain.Cast {
	return s.tracker.Snapshot()
}

// LastImage は最後に生成された画像のバイト列とMIMEタイプを返します。
func (s *Session) LastImage() ([]byte, string) {
	return s.lastImage, s.lastImageMime
}

// begin は単一実行ガードを獲得します。実行中の操作がある場合は
// キューイングせず、前提条件違反として即座に拒否します。
func (s *Session) begin() error {
	if !s.busy.CompareAndSwap(false, true) {
		return NewFlowError(s.cfg.Language, fmt.Errorf("%w: 別の操作が実行中です", generative.ErrPrecondition))
	}
	return nil
}

func (s *Session) end() {
	s.busy.Store(false)
}

// precondition はネットワーク呼び出し前の同期的な拒否を生成します。
// エラーログには記録しません。単なる no-op の通知です。
func (s *Session) precondition(reason string) error {
	return NewFlowError(s.cfg.Language, fmt.Errorf("%w: %s", generative.ErrPrecondition, reason))
}

// surface は下層のエラーを分類し、利用者向けメッセージ付きで返します。
// 境界シグナルと前提条件違反以外は警告ログに残します。
func (s *Session) surface(err error) error {
	flowErr := NewFlowError(s.cfg.Language, err)
	switch flowErr.Kind() {
	case generative.KindBoundary, generative.KindPrecondition:
		// 正常系。ログ不要。
	default:
		slog.Warn("生成操作が失敗しました", "kind", flowErr.Kind(), "error", err)
	}
	return flowErr
}

// renderScene はシーン描写にスタイルサフィックスを連結して画像を生成します。
func (s *Session) renderScene(ctx context.Context, promptText string, aspect domain.AspectRatio) (*generative.ImageResult, error) {
	userPrompt, systemPrompt := s.imagePrompts.BuildScenePrompt(promptText)

	var seed int64
	if s.confirmed != nil {
		seed = domain.GetSeedFromBook(s.confirmed.Book)
	}

	return s.images.Render(ctx, generative.ImageRequest{
		Prompt:         userPrompt,
		SystemPrompt:   systemPrompt,
		NegativePrompt: prompts.SceneNegativePrompt,
		AspectRatio:    aspect,
		Seed:           seed,
	})
}
