package errors_test

import (
	"testing"

	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, errors.ExitCode(nil))
	assert.Equal(t, 2, errors.ExitCode(errors.New(errors.CodeUsage, "bad args")))
	assert.Equal(t, 3, errors.ExitCode(errors.ProductNotFound("foo", "", nil, "")))
	assert.Equal(t, 4, errors.ExitCode(errors.LockBusy("/x/ups_db/_locks/eups.lock")))
	assert.Equal(t, 9, errors.ExitCode(assertPlainError()))
}

func assertPlainError() error {
	return &plainError{}
}

type plainError struct{}

func (p *plainError) Error() string { return "plain" }

func TestErrorIs(t *testing.T) {
	a := errors.New(errors.CodeNoSuchProduct, "x")
	b := errors.New(errors.CodeNoSuchProduct, "y")
	c := errors.New(errors.CodeNoSuchVersion, "z")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.CodeIO, "whatever"))
}

func TestProductNotFoundMessage(t *testing.T) {
	err := errors.ProductNotFound("cfitsio", "3.450", []string{"Linux64"}, "/stack")
	assert.Contains(t, err.Error(), "cfitsio")
	assert.Contains(t, err.Error(), "3.450")
	assert.Contains(t, err.Error(), "Linux64")
	assert.Contains(t, err.Error(), "/stack")
}

func TestCycleMessage(t *testing.T) {
	err := errors.Cycle([]string{"a", "b", "a"})
	assert.Contains(t, err.Error(), "a -> b -> a")
}
