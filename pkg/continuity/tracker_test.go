package continuity

import (
	"testing"

	"github.com/shouni/go-bible-kit/pkg/domain"
)

func TestTrackerConstraint(t *testing.T) {
	t.Run("キャストが空のときは fresh モードになること", func(t *testing.T) {
		tracker := NewTracker()
		c := tracker.Constraint()

		if c.Mode != ModeFresh {
			t.Errorf("期待値 %s, 実際の値 %s", ModeFresh, c.Mode)
		}
		if len(c.Cast) != 0 {
			t.Errorf("freshの制約にキャストが含まれています: %d人", len(c.Cast))
		}
	})

	t.Run("マージ後は continuation モードでキャストを積むこと", func(t *testing.T) {
		tracker := NewTracker()
		tracker.Merge(domain.SceneResponse{
			ScenePrompt: "a garden at dawn",
			Characters: domain.Cast{
				{Name: "Adão", Description: "a gentle man"},
			},
		})

		c := tracker.Constraint()
		if c.Mode != ModeContinuation {
			t.Errorf("期待値 %s, 実際の値 %s", ModeContinuation, c.Mode)
		}
		if len(c.Cast) != 1 || c.Cast[0].Name != "Adão" {
			t.Errorf("制約のキャストが不正です: %+v", c.Cast)
		}
	})

	t.Run("制約のキャストを変更しても内部状態に波及しないこと", func(t *testing.T) {
		tracker := NewTracker()
		tracker.Merge(domain.SceneResponse{
			Characters: domain.Cast{{Name: "Eva", Description: "original"}},
		})

		c := tracker.Constraint()
		c.Cast[0].Description = "mutated"

		if tracker.Snapshot()[0].Description != "original" {
			t.Error("制約の変更が内部状態に波及しています")
		}
	})
}

func TestTrackerMerge(t *testing.T) {
	t.Run("マージは常にサービス結果による全置換であること", func(t *testing.T) {
		tracker := NewTracker()
		tracker.Merge(domain.SceneResponse{
			Characters: domain.Cast{
				{Name: "Adão", Description: "a gentle man"},
				{Name: "Eva", Description: "a graceful woman"},
			},
		})

		// 結果に含まれないキャラクターはそのまま消えること
		tracker.Merge(domain.SceneResponse{
			Characters: domain.Cast{
				{Name: "Eva", Description: "a graceful woman"},
				{Name: "Serpente", Description: "a sleek serpent"},
			},
		})

		names := tracker.Snapshot().Names()
		if len(names) != 2 || names[0] != "Eva" || names[1] != "Serpente" {
			t.Errorf("全置換後のキャストが不正です: %v", names)
		}
	})

	t.Run("マージで挿入順が保持されること", func(t *testing.T) {
		tracker := NewTracker()
		tracker.Merge(domain.SceneResponse{
			Characters: domain.Cast{
				{Name: "Davi", Description: "a"},
				{Name: "Golias", Description: "b"},
				{Name: "Saul", Description: "c"},
			},
		})

		names := tracker.Snapshot().Names()
		want := []string{"Davi", "Golias", "Saul"}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("位置%d 期待値 '%s', 実際の値 '%s'", i, want[i], names[i])
			}
		}
	})
}

func TestTrackerReset(t *testing.T) {
	tracker := NewTracker()
	tracker.Merge(domain.SceneResponse{
		Characters: domain.Cast{{Name: "Moisés", Description: "a leader"}},
	})

	if tracker.Empty() {
		t.Fatal("マージ後に空になっています")
	}

	tracker.Reset()

	if !tracker.Empty() || tracker.Len() != 0 {
		t.Errorf("リセット後もキャストが残っています: %d人", tracker.Len())
	}
	if tracker.Constraint().Mode != ModeFresh {
		t.Error("リセット後の制約が fresh に戻っていません")
	}
}

func TestTrackerSnapshotIsolation(t *testing.T) {
	tracker := NewTracker()
	tracker.Merge(domain.SceneResponse{
		Characters: domain.Cast{{Name: "Rute", Description: "original"}},
	})

	snap := tracker.Snapshot()
	snap[0].Description = "mutated"

	if tracker.Snapshot()[0].Description != "original" {
		t.Error("スナップショットの変更が内部状態に波及しています")
	}
}
