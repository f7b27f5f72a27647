package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestImageError(t *testing.T) {
	imgErr := NewImageError("incompatible image", "/photos/broken.bmp", IncompatibleImage, nil)
	assert.NotNil(t, imgErr)
	assert.Equal(t, "incompatible image: /photos/broken.bmp", imgErr.Error())
	assert.Equal(t, "/photos/broken.bmp", imgErr.Path())
	assert.Equal(t, IncompatibleImage, imgErr.Kind())

	origErr := fmt.Errorf("bad header")
	imgErr = NewImageError("incompatible image", "/photos/broken.bmp", IncompatibleImage, origErr)
	assert.Equal(t, "incompatible image: /photos/broken.bmp: bad header", imgErr.Error())
	assert.Equal(t, origErr, Unwrap(imgErr))

	assert.True(t, IsIncompatibleImage(imgErr))
	assert.False(t, IsImageNotFound(imgErr))

	openErr := NewImageError("cannot open image", "/photos/gone.bmp", ImageOpenFailed, nil)
	assert.True(t, IsImageNotFound(openErr))
	assert.False(t, IsIncompatibleImage(openErr))
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("invalid order", "chronological", InvalidOrder, nil)
	assert.Equal(t, "invalid order: chronological", cfgErr.Error())
	assert.Equal(t, "chronological", cfgErr.Param())
	assert.Equal(t, InvalidOrder, cfgErr.Kind())

	assert.True(t, IsInvalidOrder(cfgErr))
	assert.True(t, IsInvalidConfig(cfgErr))

	dirErr := NewConfigError("invalid direction", "sideways", InvalidDirection, nil)
	assert.False(t, IsInvalidOrder(dirErr))
	assert.True(t, IsInvalidConfig(dirErr))
}

func TestExhausted(t *testing.T) {
	assert.True(t, IsExhausted(ErrExhausted))
	assert.True(t, IsExhausted(Wrap(ErrExhausted, "load failed")))
	assert.False(t, IsExhausted(New("something else")))
	assert.False(t, IsExhausted(nil))
}

func TestKindPredicatesRejectForeignErrors(t *testing.T) {
	plain := fmt.Errorf("plain error")
	assert.False(t, IsIncompatibleImage(plain))
	assert.False(t, IsInvalidConfig(plain))
	assert.False(t, IsInvalidOrder(plain))
	assert.False(t, IsImageNotFound(plain))
}
