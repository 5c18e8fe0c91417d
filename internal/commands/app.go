package commands

import (
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/paratrooper/internal/core/config"
	"github.com/colonyops/paratrooper/internal/core/styles"
	"github.com/colonyops/paratrooper/internal/core/task"
	"github.com/colonyops/paratrooper/internal/para"
	"github.com/colonyops/paratrooper/internal/printer"
)

// App bundles the resolved configuration and the service for command
// actions. main populates a pre-allocated instance after config load.
type App struct {
	Service *para.Service
	Config  config.Config
	Icons   styles.Icons
	// Today is resolved once per invocation and threaded through
	// every core call.
	Today task.Date
}

// report prints lookup and validation outcomes and swallows them:
// per the error policy only I/O failures exit non-zero.
func report(p *printer.Printer, err error) error {
	var (
		fieldErrs  criterio.FieldErrors
		invalidErr *para.InvalidError
	)
	switch {
	case errors.Is(err, para.ErrNotFound):
		p.Warnf("%s", err)
		return nil
	case errors.As(err, &fieldErrs), errors.As(err, &invalidErr):
		p.Errorf("%s", err)
		return nil
	}
	return err
}
