package commands

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/paratrooper/internal/para"
	"github.com/colonyops/paratrooper/internal/printer"
)

func TestReport_SwallowsLookupAndValidation(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf)

	notFound := fmt.Errorf("task #042: %w", para.ErrNotFound)
	assert.NoError(t, report(p, notFound))
	assert.Contains(t, buf.String(), "#042")

	buf.Reset()
	assert.NoError(t, report(p, criterio.NewFieldErrors("text", errors.New("bad"))))
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	invalid := &para.InvalidError{Msg: "task #001 is already complete"}
	assert.NoError(t, report(p, invalid))
	assert.Contains(t, buf.String(), "already complete")
}

func TestReport_PassesThroughIOFailures(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf)

	ioErr := errors.New("write tasks.md: disk full")
	assert.Equal(t, ioErr, report(p, ioErr))
	assert.Empty(t, buf.String(), "hard failures are left to the CLI runner")
}
