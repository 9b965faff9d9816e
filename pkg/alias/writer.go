package alias

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tre/pkg/errors"
	"github.com/arthur-debert/tre/pkg/logging"
	"github.com/arthur-debert/tre/pkg/types"
)

// scriptWriter writes one alias file at a time and turns failures into
// "[tre]" diagnostics.
type scriptWriter struct {
	fs     types.FS
	stderr io.Writer
}

// write creates path and writes the bindings, then trailer when non-empty.
// It stops at the first failure.
func (w *scriptWriter) write(path string, d Dialect, bindings []Binding, trailer string) {
	logger := logging.GetLogger("alias").With().
		Str("path", path).
		Str("dialect", d.String()).
		Logger()

	file, err := w.fs.Create(path)
	if err != nil {
		w.report(errors.Wrapf(err, errors.ErrFileCreate, "failed to open %q", path))
		return
	}
	defer func() { _ = file.Close() }()

	lines := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		lines = append(lines, b.Command)
	}
	if trailer != "" {
		lines = append(lines, trailer)
	}

	for i, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			w.report(errors.Wrapf(err, errors.ErrFileWrite, "failed to write to %s alias file due to:", d).
				WithDetail("line", i))
			return
		}
	}

	logger.Debug().Int("aliases", len(bindings)).Msg("Alias file written")
}

func (w *scriptWriter) report(err *errors.TreError) {
	_, _ = fmt.Fprintf(w.stderr, "[tre] %s\n", err.Message)
	if err.Code == errors.ErrFileWrite {
		_, _ = fmt.Fprintln(w.stderr, err.Wrapped)
	}

	logger := logging.GetLogger("alias")
	logger.Debug().
		Err(err).
		Str("code", string(err.Code)).
		Msg("Alias file abandoned")
}
