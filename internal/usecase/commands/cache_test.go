//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"venue-marketplace/internal/pkg/errs"
	"venue-marketplace/internal/usecase/commands"
	commandsmock "venue-marketplace/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFlushListingCache(t *testing.T) {
	ctx := context.Background()

	t.Run("両パターンのキーを一度に削除", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockCacheStore(ctrl)

		store.EXPECT().ScanKeys(gomock.Any(), "spaces:search*").Return([]string{"spaces:search:q=a", "spaces:search:q=b"}, nil)
		store.EXPECT().ScanKeys(gomock.Any(), "space:*").Return([]string{"space:1", "space:2"}, nil)
		store.EXPECT().Delete(gomock.Any(), "spaces:search:q=a", "spaces:search:q=b", "space:1", "space:2").Return(int64(4), nil)

		n, err := commands.NewCacheCommands(store, discardLogger()).FlushListingCache(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("重複キーは一度だけ渡す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockCacheStore(ctrl)

		store.EXPECT().ScanKeys(gomock.Any(), "spaces:search*").Return([]string{"space:x"}, nil)
		store.EXPECT().ScanKeys(gomock.Any(), "space:*").Return([]string{"space:x"}, nil)
		store.EXPECT().Delete(gomock.Any(), "space:x").Return(int64(1), nil)

		n, err := commands.NewCacheCommands(store, discardLogger()).FlushListingCache(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("該当なしは削除を呼ばず0を返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockCacheStore(ctrl)

		store.EXPECT().ScanKeys(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		n, err := commands.NewCacheCommands(store, discardLogger()).FlushListingCache(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("接続エラーは伝播する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockCacheStore(ctrl)

		store.EXPECT().ScanKeys(gomock.Any(), "spaces:search*").Return(nil, errors.New("dial tcp: connection refused"))

		_, err := commands.NewCacheCommands(store, discardLogger()).FlushListingCache(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCacheUnavailable))
	})

	t.Run("削除エラーも伝播する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockCacheStore(ctrl)

		store.EXPECT().ScanKeys(gomock.Any(), gomock.Any()).Return([]string{"space:1"}, nil).Times(2)
		store.EXPECT().Delete(gomock.Any(), "space:1").Return(int64(0), errors.New("READONLY"))

		_, err := commands.NewCacheCommands(store, discardLogger()).FlushListingCache(ctx)
		assert.True(t, errs.Is(err, errs.ErrCacheUnavailable))
	})
}
