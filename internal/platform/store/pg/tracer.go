package pg

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"copsoq/internal/platform/logger"
)

type traceKey struct{}

type traceStart struct {
	at   time.Time
	sql  string
	args []any
}

// Tracer logs every statement through zerolog
// failed and slow statements are logged at warn, the rest at debug
type Tracer struct {
	log  logger.Logger
	slow time.Duration
}

var _ pgx.QueryTracer = (*Tracer)(nil)

// NewTracer forces debug level on its own child so SQL logging does not
// depend on the root level
func NewTracer(root logger.Logger, slow time.Duration) *Tracer {
	return &Tracer{
		log:  root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
		slow: slow,
	}
}

// TraceQueryStart stashes the statement on ctx
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{at: time.Now(), sql: data.SQL, args: data.Args})
}

// TraceQueryEnd logs the finished statement
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := time.Since(st.at)
	slow := t.slow > 0 && elapsed >= t.slow

	evt := t.log.Debug()
	if slow || data.Err != nil {
		evt = t.log.Warn()
	}
	evt.Dur("elapsed", elapsed).
		Bool("slow", slow).
		Str("sql", squash(st.sql)).
		Int("args", len(st.args)).
		Str("tag", data.CommandTag.String()).
		Err(data.Err).
		Msg("pg query")
}

// squash folds runs of whitespace so multi line SQL fits one log line
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
