package purge

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestKindFatal(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{
		KindConnect, KindListVaults, KindResolveVault, KindListJobs, KindInitiateJob,
		KindDescribeJob, KindFetchInventory, KindParseInventory, KindCanceled,
	} {
		assert.True(t, kind.Fatal(), kind)
	}
	assert.False(t, KindDeleteArchive.Fatal())
	assert.False(t, KindDeleteVault.Fatal())
}

func TestError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := fmt.Errorf("outer: %w", NewError(KindListJobs, cause))

	assert.EqualError(t, err, "outer: list-jobs: boom")
	assert.ErrorIs(t, err, cause)

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindListJobs, kind)
}

func TestIsFatal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsFatal(nil))
	assert.True(t, IsFatal(errors.New("plain")))
	assert.True(t, IsFatal(NewError(KindResolveVault, errors.New("x"))))
	assert.False(t, IsFatal(NewError(KindDeleteArchive, errors.New("x"))))
	assert.False(t, IsFatal(NewError(KindDeleteVault, errors.New("x"))))
}

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"api error", NewError(KindDeleteVault, &smithy.GenericAPIError{Code: "ResourceNotFoundException"}), "ResourceNotFoundException"},
		{"wrapped api error", fmt.Errorf("wrap: %w", &smithy.GenericAPIError{Code: "ThrottlingException"}), "ThrottlingException"},
		{"plain error", errors.New("boom"), "*errors.errorString"},
		{"root cause type", NewError(KindConnect, fmt.Errorf("open: %w", fs.ErrNotExist)), "*errors.errorString"},
		{"path error", NewError(KindConnect, &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}), "*errors.errorString"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
