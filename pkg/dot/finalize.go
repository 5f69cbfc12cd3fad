package dot

import (
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// Finalize appends the label statements and the closing brace, then writes the
// description to [Builder.Path], creating or truncating the file.
//
// Write failures are returned as IO_ERROR; the builder stays unfinalized so the
// call can be retried. After a successful call, Finalize returns [ErrFinalized].
func (b *Builder) Finalize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return finalizedError()
	}
	b.close()

	path := b.fileName + FileSuffix
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", path)
	}

	b.finalized = true
	b.logger.Debug("graph written", "path", path, "nodes", len(b.nodes), "edges", len(b.edges))
	return nil
}

// WriteTo finalizes the description into w instead of a file.
// It follows the same single-shot rule as [Builder.Finalize].
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return 0, finalizedError()
	}
	b.close()

	n, err := w.Write(b.buf.Bytes())
	if err != nil {
		return int64(n), errs.Wrap(errs.ErrCodeIO, err, "write graph")
	}

	b.finalized = true
	return int64(n), nil
}

// close appends the label pass and the footer exactly once.
func (b *Builder) close() {
	if b.closed {
		return
	}
	for _, n := range b.nodes {
		if n.Linked() {
			fmt.Fprintf(&b.buf, "%d [label = %s]%s", n.id, quote(n.label), newline)
		}
	}
	b.buf.WriteString(footer)
	b.buf.WriteString(newline)
	b.closed = true
}
