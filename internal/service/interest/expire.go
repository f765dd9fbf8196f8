package interest

import (
	"context"
	"fmt"
)

// ExpireOverdue flips every pending request past its horizon to expired and
// returns how many rows changed. Expiry is lazy during matching, so this
// exists purely to keep the table tidy and runs from a maintenance job.
func (s *Service) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.requests.ExpireOverdue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expire overdue requests: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired overdue requests", "count", n)
	}
	return n, nil
}
