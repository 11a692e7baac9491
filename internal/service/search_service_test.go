package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFinder struct {
	calls   atomic.Int32
	got     [][]string
	mu      sync.Mutex
	started chan struct{}
	release chan struct{}
	results []string
	err     error
}

func (f *fakeFinder) Find(ctx context.Context, criteria []string) ([]string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.got = append(f.got, criteria)
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.results, f.err
}

func TestSearchPassesCriteriaInOrder(t *testing.T) {
	f := &fakeFinder{results: []string{"Cabernet Sauvignon", "Malbec"}}
	svc := NewSearchService(f, nil)

	res, err := svc.Search(context.Background(), []string{"oak", "dry"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Cabernet Sauvignon", "Malbec"}, res)
	require.Len(t, f.got, 1)
	assert.Equal(t, []string{"oak", "dry"}, f.got[0])
}

func TestSearchRejectsUnknownDescriptor(t *testing.T) {
	f := &fakeFinder{}
	svc := NewSearchService(f, nil)

	_, err := svc.Search(context.Background(), []string{"dry", "petrol"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDescriptor))
	assert.Zero(t, f.calls.Load())
}

func TestSearchIndices(t *testing.T) {
	f := &fakeFinder{results: []string{}}
	svc := NewSearchService(f, nil)

	_, err := svc.SearchIndices(context.Background(), []int{3, 12})
	require.NoError(t, err)
	assert.Equal(t, []string{"dry", "oak"}, f.got[0])

	_, err = svc.SearchIndices(context.Background(), []int{20})
	assert.True(t, errors.Is(err, ErrUnknownDescriptor))
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestSearchWrapsAndLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	boom := errors.New("connection refused")
	svc := NewSearchService(&fakeFinder{err: boom}, zap.New(core))

	_, err := svc.Search(context.Background(), []string{"dry"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	entries := logs.FilterMessage("search failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestIdenticalConcurrentSearchesShareOneRequest(t *testing.T) {
	f := &fakeFinder{
		results: []string{"Malbec"},
		started: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	svc := NewSearchService(f, nil)

	var wg sync.WaitGroup
	out := make([][]string, 2)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i], _ = svc.Search(context.Background(), []string{"dry"})
		}(i)
		if i == 0 {
			<-f.started
		}
	}
	time.Sleep(50 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, []string{"Malbec"}, out[0])
	assert.Equal(t, []string{"Malbec"}, out[1])
}

func TestSearchReturnsOnCancel(t *testing.T) {
	f := &fakeFinder{release: make(chan struct{})}
	svc := NewSearchService(f, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Search(ctx, []string{"dry"})
	assert.True(t, errors.Is(err, context.Canceled))
}
