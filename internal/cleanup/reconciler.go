package cleanup

import (
	"context"
	"time"

	"continuity/internal/repository"
	"continuity/internal/storage"
	"continuity/pkg/logger"
)

// Reconciler aligns the attachments table with the remote object
// store: rows marked deleted whose objects still exist remotely get
// their objects removed, then IsStored is flipped off. Rows whose
// remote delete fails keep IsStored=true and are retried on the next
// run.
type Reconciler struct {
	repo  repository.AttachmentRepository
	store storage.ObjectStorage
	log   *logger.Logger
}

func NewReconciler(repo repository.AttachmentRepository, store storage.ObjectStorage, log *logger.Logger) *Reconciler {
	return &Reconciler{repo: repo, store: store, log: log}
}

// ReconcileOnce processes every candidate row sequentially. A failure
// on one row is logged and skipped; the run continues. Each successful
// remote delete is persisted before the next row is attempted, so a
// crash mid-run never loses completed work.
func (r *Reconciler) ReconcileOnce(ctx context.Context) error {
	candidates, err := r.repo.ListDeletedStored(ctx)
	if err != nil {
		r.log.Errorf("cleanup: listing deleted attachments: %v", err)
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	r.log.Infof("cleanup: reconciling %d deleted attachment(s)", len(candidates))

	var cleaned int
	for _, a := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.store.Delete(ctx, a.Path); err != nil {
			r.log.Warnf("cleanup: attachment %d: deleting %q: %v", a.ID, a.Path, err)
			continue
		}

		if err := r.repo.SetStored(ctx, a.ID, false); err != nil {
			r.log.Errorf("cleanup: attachment %d: marking unstored: %v", a.ID, err)
			continue
		}
		cleaned++
	}

	r.log.Infof("cleanup: run complete, %d/%d cleaned", cleaned, len(candidates))
	return nil
}

// Runner drives the reconciler on a fixed interval until its context
// is cancelled.
type Runner struct {
	reconciler *Reconciler
	interval   time.Duration
}

func NewRunner(reconciler *Reconciler, interval time.Duration) *Runner {
	return &Runner{reconciler: reconciler, interval: interval}
}

func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.reconciler.ReconcileOnce(ctx)
		}
	}
}
