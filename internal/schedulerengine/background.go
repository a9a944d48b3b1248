package schedulerengine

import (
	"context"
	"sync"
	"time"

	"gitlab.com/webrequest.net/internal/config"
	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/domain"
)

// DraftEngine periodically saves the form session's unfinished values as a draft
type DraftEngine struct {
	DraftCfg *config.DraftConfig
	session  form.IFormSession
	drafts   submission.IDraftStore
	logger   primary.Logger

	wg        sync.WaitGroup
	lastSaved domain.Draft
}

func NewDraftEngine(
	draftCfg *config.DraftConfig,
	session form.IFormSession,
	drafts submission.IDraftStore,
	logger primary.Logger,
) *DraftEngine {
	return &DraftEngine{
		DraftCfg: draftCfg,
		session:  session,
		drafts:   drafts,
		logger:   logger,
	}
}

// Start runs the autosave loop until ctx is cancelled. It does nothing when
// drafts are disabled.
func (e *DraftEngine) Start(ctx context.Context) {
	if !e.DraftCfg.Enabled || e.DraftCfg.Interval <= 0 {
		e.logger.Info("Draft autosave disabled")
		return
	}

	ticker := time.NewTicker(e.DraftCfg.Interval)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.SaveDraft(ctx)
			}
		}
	}()
	e.logger.Info("Draft autosave started", "interval", e.DraftCfg.Interval.String())
}

// Wait blocks until the autosave loop has exited
func (e *DraftEngine) Wait() {
	e.wg.Wait()
}

// SaveDraft stores the session's current values when they are on the form
// view and changed since the last save.
func (e *DraftEngine) SaveDraft(ctx context.Context) {
	snap := e.session.Snapshot()
	if snap.View != domain.ViewForm || snap.Submitting {
		return
	}

	draft := domain.NewDraft(snap.Values.Values())
	if len(draft) == 0 || sameDraft(draft, e.lastSaved) {
		return
	}

	if err := e.drafts.SaveDraft(ctx, draft); err != nil {
		e.logger.Error("Failed to autosave draft", "error", err)
		return
	}
	e.lastSaved = draft
	e.logger.Debug("Draft saved", "fields", len(draft))
}

// Restore loads the saved draft into the session. Nothing happens when no
// draft exists.
func (e *DraftEngine) Restore(ctx context.Context) error {
	if !e.DraftCfg.Enabled {
		return nil
	}

	draft, err := e.drafts.LoadDraft(ctx)
	if err != nil {
		return err
	}
	if len(draft) == 0 {
		return nil
	}

	for field, value := range draft {
		if err := e.session.Input(field, value); err != nil {
			e.logger.Warn("Skipping unknown draft field", "field", field)
		}
	}
	e.lastSaved = draft
	e.logger.Info("Draft restored", "fields", len(draft))
	return nil
}

func sameDraft(a, b domain.Draft) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}
