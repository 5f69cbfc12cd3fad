package dot

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

const (
	// DefaultFileName is the output name used when none is configured.
	DefaultFileName = "out"

	// FileSuffix is appended to the file name to form the output path.
	FileSuffix = ".gv"

	header  = "digraph G {"
	footer  = "}"
	newline = "\n"
)

// Sentinel errors. Builder methods wrap them in an *errors.Error carrying the
// matching code, so both errors.Is(err, ErrNodeLinked) and
// errs.Is(err, errs.ErrCodeNodeLinked) hold.
var (
	// ErrNodeLinked is returned when removing a node that participates in an edge.
	ErrNodeLinked = errors.New("node is linked")

	// ErrFinalized is returned when a builder is finalized a second time.
	ErrFinalized = errors.New("builder already finalized")
)

// Options configures a [Builder].
type Options struct {
	// FileName is the output name without suffix. Defaults to [DefaultFileName].
	FileName string

	// NonDirectional renders edges with dir=none. It can be changed later with
	// [Builder.SetNonDirectional]; the change applies to subsequent edges only.
	NonDirectional bool

	// DuplicatesEqual makes nodes with the same label the same node.
	// Fixed for the builder's lifetime.
	DuplicatesEqual bool

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

// Builder accumulates a DOT graph description. Use [New] to create one.
type Builder struct {
	mu sync.Mutex

	buf     bytes.Buffer
	nodes   []*Node
	byLabel map[string]*Node
	edges   []Edge
	nextID  int

	fileName        string
	nonDirectional  bool
	duplicatesEqual bool

	closed    bool // label pass and footer appended
	finalized bool // output written successfully

	logger *log.Logger
}

// New creates a builder with the opening directive already written.
func New(opts Options) *Builder {
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &Builder{
		byLabel:         make(map[string]*Node),
		fileName:        opts.FileName,
		nonDirectional:  opts.NonDirectional,
		duplicatesEqual: opts.DuplicatesEqual,
		logger:          logger,
	}
	b.buf.WriteString(header)
	b.buf.WriteString(newline)
	return b
}

// FileName returns the output name without suffix.
func (b *Builder) FileName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fileName
}

// SetFileName changes the output name. An empty name restores [DefaultFileName].
func (b *Builder) SetFileName(name string) {
	if name == "" {
		name = DefaultFileName
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fileName = name
}

// Path returns the file written by [Builder.Finalize]: the file name plus ".gv".
func (b *Builder) Path() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fileName + FileSuffix
}

// NonDirectional reports whether new edges are rendered without direction.
func (b *Builder) NonDirectional() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonDirectional
}

// SetNonDirectional switches the rendering of subsequent edges.
// Edges already linked keep their style.
func (b *Builder) SetNonDirectional(enable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nonDirectional = enable
}

// DuplicatesEqual reports whether nodes with equal labels are deduplicated.
func (b *Builder) DuplicatesEqual() bool {
	return b.duplicatesEqual
}

// Finalized reports whether the output has been written.
func (b *Builder) Finalized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finalized
}

// String returns the DOT text accumulated so far.
func (b *Builder) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func nodeLinkedError(n *Node) error {
	return errs.Wrap(errs.ErrCodeNodeLinked, ErrNodeLinked, "remove node %d (%q)", n.id, n.label)
}

func finalizedError() error {
	return errs.Wrap(errs.ErrCodeFinalized, ErrFinalized, "finalize")
}
