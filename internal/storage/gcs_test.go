package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestTranslatePermissionDenied(t *testing.T) {
	for _, code := range []int{401, 403} {
		err := translate(&googleapi.Error{Code: code, Message: "forbidden"}, "photos", "a.jpg")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		assert.Contains(t, err.Error(), "photos")
		assert.Contains(t, err.Error(), "IAM")
	}
}

func TestTranslateGenericError(t *testing.T) {
	cause := errors.New("connection reset")

	err := translate(cause, "photos", "a.jpg")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "a.jpg")
	assert.Contains(t, err.Error(), "photos")
}

func TestTranslateBucketOnly(t *testing.T) {
	err := translate(errors.New("boom"), "photos", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `bucket "photos"`)
}

func TestTranslateServerErrorIsNotPermission(t *testing.T) {
	err := translate(&googleapi.Error{Code: 500, Message: "backend"}, "photos", "a.jpg")
	assert.NotErrorIs(t, err, ErrPermissionDenied)
}
