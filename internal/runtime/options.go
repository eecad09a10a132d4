package runtime

import (
	"io"

	"github.com/architeacher/idevices/internal/domain/model"
)

type ServiceOption func(*ServiceCtx)

// WithOutput sets where device details are printed. Defaults to stdout.
func WithOutput(w io.Writer) ServiceOption {
	return func(c *ServiceCtx) {
		c.output = w
	}
}

// WithDiagnostics sets where logs and exported spans go. Defaults to stderr.
func WithDiagnostics(w io.Writer) ServiceOption {
	return func(c *ServiceCtx) {
		c.diagnostics = w
	}
}

func WithCatalog(specs ...model.DeviceSpec) ServiceOption {
	return func(c *ServiceCtx) {
		c.catalog = specs
	}
}

func WithDependencyOptions(opts ...DependencyOption) ServiceOption {
	return func(c *ServiceCtx) {
		c.depOpts = append(c.depOpts, opts...)
	}
}
