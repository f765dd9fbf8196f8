package interest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bidfelt/searchcore/internal/domain"
	"github.com/bidfelt/searchcore/internal/notify"
)

// SweepResult summarizes one item-created sweep over the pending requests.
type SweepResult struct {
	Scanned  int
	Matched  int
	Notified int
	Failed   int
}

// HandleNewItem resolves pending interest requests that match a freshly
// created item. Matching requests are notified first and marked resolved
// second, so a delivery failure leaves the row pending for the next matching
// item. Each request is handled in isolation on the worker pool: one bad row
// never stops the sweep. The conditional status flip makes resolution
// at-most-once even when two item events race over the same request.
func (s *Service) HandleNewItem(ctx context.Context, input NewItemInput) (*SweepResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item := domain.NewItem{
		Title:       input.Title,
		Description: input.Description,
		ItemType:    input.ItemType,
		ItemID:      input.ItemID,
	}
	matchText := item.MatchText()
	now := s.now()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result SweepResult
	)

	// Workers flip matched rows to notified while later pages load, so the
	// pending set shrinks mid-sweep. A (created_at, id) cursor keeps the scan
	// position stable; an offset here would skip rows as pages shift down.
	var (
		lastCreated time.Time
		lastID      uuid.UUID
	)
	for {
		page, err := s.requests.ListPendingAfter(ctx, now, lastCreated, lastID, s.cfg.ScanBatch)
		if err != nil {
			return nil, fmt.Errorf("list pending requests: %w", err)
		}
		if len(page) == 0 {
			break
		}
		result.Scanned += len(page)

		for i := range page {
			req := page[i]
			if !req.Matches(matchText) {
				continue
			}
			result.Matched++

			wg.Add(1)
			if err := s.pool.Submit(func() {
				defer wg.Done()
				ok := s.resolveRequest(ctx, &req, item)
				mu.Lock()
				if ok {
					result.Notified++
				} else {
					result.Failed++
				}
				mu.Unlock()
			}); err != nil {
				wg.Done()
				mu.Lock()
				result.Failed++
				mu.Unlock()
				s.log.ErrorContext(ctx, "submit notification task", "error", err)
			}
		}

		last := page[len(page)-1]
		lastCreated, lastID = last.CreatedAt, last.ID

		if len(page) < s.cfg.ScanBatch {
			break
		}
	}

	wg.Wait()

	s.log.InfoContext(ctx, "item sweep completed",
		"item_id", item.ItemID,
		"scanned", result.Scanned,
		"matched", result.Matched,
		"notified", result.Notified,
		"failed", result.Failed,
	)
	return &result, nil
}

// resolveRequest notifies one matching request and flips it to notified.
// Reports whether the request ended up resolved by this call.
func (s *Service) resolveRequest(ctx context.Context, req *domain.InterestRequest, item domain.NewItem) bool {
	msg := notify.Compose(req, item, s.notifyCfg)

	if err := s.dispatcher.Dispatch(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "dispatch notification",
			"request_id", req.ID,
			"error", err,
		)
		return false
	}

	resolved, err := s.requests.MarkNotified(ctx, req.ID, item.ItemID, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "mark request notified",
			"request_id", req.ID,
			"error", err,
		)
		return false
	}
	if !resolved {
		// Lost the race to a concurrent sweep. The user got a duplicate
		// message but the row stays consistent.
		s.log.WarnContext(ctx, "request already resolved", "request_id", req.ID)
		return false
	}
	return true
}
