package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"bottlebuddy/internal/domain"
)

// ErrUnknownDescriptor is returned for a criterion outside the vocabulary.
var ErrUnknownDescriptor = errors.New("unknown descriptor")

type SearchServiceImpl struct {
	finder domain.Finder
	log    *zap.Logger
	group  singleflight.Group
}

var _ domain.SearchService = (*SearchServiceImpl)(nil)

func NewSearchService(finder domain.Finder, log *zap.Logger) *SearchServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &SearchServiceImpl{finder: finder, log: log}
}

// Search validates names against the vocabulary and sends them, in the given
// order, as one find request. Identical concurrent searches share a request;
// the TUI never overlaps its own searches, so sharing only happens when the
// service is used by more than one caller at once.
func (s *SearchServiceImpl) Search(ctx context.Context, names []string) ([]string, error) {
	for _, n := range names {
		if domain.IndexOf(n) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDescriptor, n)
		}
	}
	criteria := append([]string{}, names...)
	key := strings.Join(criteria, "\x00")

	ch := s.group.DoChan(key, func() (any, error) {
		return s.finder.Find(ctx, criteria)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			s.log.Warn("search failed", zap.Strings("criteria", criteria), zap.Error(r.Err))
			return nil, fmt.Errorf("search: %w", r.Err)
		}
		res := r.Val.([]string)
		if r.Shared {
			res = append([]string{}, res...)
		}
		s.log.Info("search done", zap.Int("criteria", len(criteria)), zap.Int("results", len(res)), zap.Bool("shared", r.Shared))
		return res, nil
	}
}

// SearchIndices resolves selection indices to names and searches them.
func (s *SearchServiceImpl) SearchIndices(ctx context.Context, indices []int) ([]string, error) {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		d, ok := domain.At(i)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownDescriptor, i)
		}
		names = append(names, d.Name)
	}
	return s.Search(ctx, names)
}
