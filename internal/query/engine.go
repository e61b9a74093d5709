package query

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

// Surface names the query syntax an execution used.
type Surface string

const (
	SurfaceGraphQL  Surface = "graphql"
	SurfaceTerminal Surface = "terminal"
)

// CommandHandler executes terminal commands. The engine itself only parses them.
type CommandHandler interface {
	HandleCommand(cmd CommandQuery) TerminalResult
}

// Observer is notified after every execution.
type Observer interface {
	ObserveQuery(surface Surface, md Metadata, failure *ErrorDescriptor, elapsed time.Duration)
}

// Engine executes queries against an immutable catalog. It holds no mutable state and is
// safe for concurrent use as long as its CommandHandler and Observer are.
type Engine struct {
	catalog  *catalog.Catalog
	commands CommandHandler
	observer Observer
	logger   *zap.Logger
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCommandHandler sets the handler for terminal commands.
func WithCommandHandler(h CommandHandler) EngineOption {
	return func(e *Engine) { e.commands = h }
}

// WithObserver sets an execution observer, typically a metrics collector.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) { e.observer = o }
}

// WithLogger sets the engine logger.
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine over c.
func NewEngine(c *catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: c,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine queries.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Execute runs a GraphQL-surface query. Parse failures are returned as an error payload,
// never as a Go error.
func (e *Engine) Execute(raw string) Result {
	start := e.now()

	var res Result
	parsed, err := Parse(raw)
	if err != nil {
		res = Result{Error: newErrorDescriptor(err), Metadata: Metadata{Mode: ModeError}}
	} else {
		res.Fields, res.Metadata = e.run(parsed)
	}

	e.logger.Debug("executed query",
		zap.String("surface", string(SurfaceGraphQL)),
		zap.String("mode", string(res.Metadata.Mode)),
		zap.Int("total_fields", res.Metadata.TotalFields))
	e.observe(SurfaceGraphQL, res.Metadata, res.Error, start)
	return res
}

// ExecuteTerminal runs a terminal-surface query.
func (e *Engine) ExecuteTerminal(raw string) TerminalResult {
	start := e.now()

	var res TerminalResult
	parsed, err := ParseTerminal(raw)
	switch q := parsed.(type) {
	case nil:
		desc := newErrorDescriptor(err)
		res = TerminalResult{Error: desc, Metadata: Metadata{Mode: ModeError}}
		if desc.Kind != KindEmptyQuery {
			res.Metadata.InvalidFields = 1
		}
	case CommandQuery:
		res = e.command(q)
	default:
		res.Fields, res.Metadata = e.run(parsed)
	}

	e.logger.Debug("executed query",
		zap.String("surface", string(SurfaceTerminal)),
		zap.String("mode", string(res.Metadata.Mode)),
		zap.Int("total_fields", res.Metadata.TotalFields))
	e.observe(SurfaceTerminal, res.Metadata, res.Error, start)
	return res
}

func (e *Engine) command(cmd CommandQuery) TerminalResult {
	if e.commands == nil {
		return TerminalResult{
			Command:  &CommandOutput{Message: fmt.Sprintf("Command '%s' is not available here", cmd.Name)},
			Metadata: Metadata{TotalFields: 1, InvalidFields: 1, Mode: ModeCommand},
		}
	}
	res := e.commands.HandleCommand(cmd)
	res.Metadata.Mode = ModeCommand
	return res
}

// run executes a parsed, non-command query.
func (e *Engine) run(parsed ParsedQuery) (Fields, Metadata) {
	switch q := parsed.(type) {
	case CategoryQuery:
		if len(q.Fields) == 0 {
			return e.wholeCategory(q.Category)
		}
		return e.lookup(q.Fields, q.Category, ModeCategory)
	case CategoryShorthand:
		return e.wholeCategory(q.Category)
	case HelpQuery:
		return e.help(q.Topics)
	case FreestyleQuery:
		return e.lookup(q.Fields, catalog.Freestyle, ModeFreestyle)
	case FieldListQuery:
		return e.lookup(q.Fields, catalog.Freestyle, ModeFreestyle)
	default:
		panic(fmt.Sprintf("query: unexpected parsed query %T", parsed))
	}
}

// lookup resolves and locates every token under scope. Result keys are the tokens as
// typed, so two aliases of one field produce two keys. Reserved tokens are invalid and
// never become keys.
func (e *Engine) lookup(tokens []string, scope catalog.Category, mode Mode) (Fields, Metadata) {
	md := newMetadata(mode)
	fields := make(Fields, 0, len(tokens))

	for _, token := range tokens {
		if reservedKey(token) {
			md.count(token, token, catalog.Location{Classification: catalog.Invalid})
			continue
		}
		canonical := e.resolve(token)
		loc := e.catalog.Locate(canonical, scope)
		md.count(token, canonical, loc)
		fields.set(token, loc.Value)
	}
	return fields, md
}

func (e *Engine) resolve(token string) string {
	if strings.EqualFold(strings.TrimSpace(token), "help") {
		return "help"
	}
	return e.catalog.Resolve(token)
}

// wholeCategory returns every public field of category. Hidden fields are never included.
// Only the counters are filled in; no field is reported by name.
func (e *Engine) wholeCategory(category catalog.Category) (Fields, Metadata) {
	md := newMetadata(ModeCategory)
	section := e.catalog.SectionFields(category)
	fields := make(Fields, 0, len(section))

	for _, f := range section {
		md.tally(catalog.Normal)
		fields = append(fields, f)
	}
	return fields, md
}

// help returns the requested description records, or all of them when topics is empty.
func (e *Engine) help(topics []string) (Fields, Metadata) {
	md := newMetadata(ModeHelp)
	records := Fields(e.catalog.HelpRecords())

	if len(topics) == 0 {
		for range records {
			md.tally(catalog.Normal)
		}
		return records, md
	}

	fields := make(Fields, 0, len(topics))
	for _, topic := range topics {
		if reservedKey(topic) {
			md.count(topic, topic, catalog.Location{Classification: catalog.Invalid})
			continue
		}
		name := strings.ToLower(topic)
		loc := catalog.Location{Classification: catalog.Invalid}
		if value, ok := records.Get(name); ok {
			loc = catalog.Location{Value: value, Classification: catalog.Normal, Source: string(catalog.Help)}
		}
		md.count(topic, name, loc)
		fields.set(topic, loc.Value)
	}
	return fields, md
}

// Field looks up one field within category, resolving aliases first.
func (e *Engine) Field(category catalog.Category, token string) FieldResult {
	loc := e.catalog.Locate(e.resolve(token), category)
	res := FieldResult{Value: loc.Value, Type: loc.Classification, Source: loc.Source}
	if !loc.Found() {
		res.Message = fmt.Sprintf("Field '%s' is not valid for category '%s'", token, category)
	}
	return res
}

func (e *Engine) observe(surface Surface, md Metadata, failure *ErrorDescriptor, start time.Time) {
	if e.observer != nil {
		e.observer.ObserveQuery(surface, md, failure, e.now().Sub(start))
	}
}
