package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/csvio"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
)

// ListState is the page's fetch state.
type ListState int

const (
	StateIdle ListState = iota
	StateLoading
	StateLoaded
	StateLoadError
)

type (
	// Lister is the only capability every page needs.
	Lister[T any] interface {
		List(ctx context.Context, p client.ListParams) client.ListResult[T]
	}

	// Mutator adds create/update/delete; satisfied by services embedding
	// client.Resource.
	Mutator[T any] interface {
		Create(ctx context.Context, data interface{}) client.Result[T]
		Update(ctx context.Context, id int, data interface{}) client.Result[T]
		Delete(ctx context.Context, id int) client.Outcome
	}

	Importer interface {
		ImportFromFile(ctx context.Context, filename string, file io.Reader) client.Result[client.ImportSummary]
	}

	Exporter[T any] interface {
		ExportAll(ctx context.Context, filters *client.Filters) client.Result[[]T]
	}
)

// ListController drives one entity list page: filter/search/pagination
// state, debounced search, modal + form state and mutation dispatch with
// list refresh on success. The session is injected, never ambient.
type ListController[T any] struct {
	mu sync.Mutex

	entity string
	svc    Lister[T]
	mut    Mutator[T]
	imp    Importer
	exp    Exporter[T]
	sess   *session.Session
	notify Notifier
	log    core.Logger

	form       *Form
	seed       func(T) map[string]string
	validate   ValidateFunc
	csvHeaders []string
	csvRow     func(T) []string

	ctx        context.Context // bound at Start; used by debounce-fired fetches
	state      ListState
	rows       []T
	page       int
	perPage    int
	totalPages int
	total      int
	from, to   int
	search     string
	pending    string
	filters    *client.Filters
	seq        uint64
	debouncer  *Debouncer
	importing  bool
	exporting  bool
	modal      Modal
}

type Option[T any] func(*ListController[T])

func WithPerPage[T any](n int) Option[T] {
	return func(c *ListController[T]) { c.perPage = n }
}

func WithDebounce[T any](d time.Duration) Option[T] {
	return func(c *ListController[T]) { c.debouncer = NewDebouncer(d) }
}

func WithMutator[T any](m Mutator[T]) Option[T] {
	return func(c *ListController[T]) { c.mut = m }
}

func WithImporter[T any](imp Importer) Option[T] {
	return func(c *ListController[T]) { c.imp = imp }
}

func WithExport[T any](exp Exporter[T], headers []string, row func(T) []string) Option[T] {
	return func(c *ListController[T]) {
		c.exp = exp
		c.csvHeaders = headers
		c.csvRow = row
	}
}

// WithForm wires the declarative form schema and the record→form seed used
// by edit/view modes.
func WithForm[T any](form *Form, seed func(T) map[string]string) Option[T] {
	return func(c *ListController[T]) {
		c.form = form
		c.seed = seed
	}
}

// WithValidate runs entity-level validation on the coerced payload before
// any create/update goes out.
func WithValidate[T any](fn ValidateFunc) Option[T] {
	return func(c *ListController[T]) { c.validate = fn }
}

func NewListController[T any](
	entity string,
	svc Lister[T],
	sess *session.Session,
	notify Notifier,
	logger core.Logger,
	opts ...Option[T],
) *ListController[T] {
	c := &ListController[T]{
		entity:     entity,
		svc:        svc,
		sess:       sess,
		notify:     notify,
		log:        logger,
		ctx:        context.Background(),
		state:      StateIdle,
		page:       1,
		perPage:    10,
		totalPages: 1,
		filters:    client.NewFilters(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.debouncer == nil {
		c.debouncer = NewDebouncer(core.Conf.GetDuration("searchDebounce"))
	}
	if mut, ok := svc.(Mutator[T]); ok && c.mut == nil {
		c.mut = mut
	}
	return c
}

// SeedPage sets the page without fetching; for pre-mount setup.
func (c *ListController[T]) SeedPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page > 0 {
		c.page = page
	}
}

// SeedFilter sets a filter without fetching; for pre-mount setup.
// Blank values stay absent, as always.
func (c *ListController[T]) SeedFilter(key, val string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Set(key, val)
}

// SetSearchImmediate applies a search term without the debounce window or
// a fetch; for pre-mount setup.
func (c *ListController[T]) SetSearchImmediate(val string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = val
	c.pending = val
}

// Start binds the page context and triggers the mount fetch.
func (c *ListController[T]) Start(ctx context.Context) {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()
	c.Refresh(ctx)
}

// Refresh re-enters Loading and fetches with the current dependency state.
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	seq, params := c.beginLoadLocked()
	c.mu.Unlock()
	c.runFetch(ctx, seq, params)
}

func (c *ListController[T]) beginLoadLocked() (uint64, client.ListParams) {
	c.seq++
	c.state = StateLoading
	return c.seq, client.ListParams{
		Page:    c.page,
		PerPage: c.perPage,
		Search:  c.search,
		Filters: c.filters.Clone(),
	}
}

// runFetch performs the list call and applies the response only if no newer
// fetch has been issued meanwhile: a stale slower response never clobbers a
// newer filter's result.
func (c *ListController[T]) runFetch(ctx context.Context, seq uint64, params client.ListParams) {
	res := c.svc.List(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return // superseded
	}
	if !res.Success {
		c.state = StateLoadError
		c.rows = nil
		c.totalPages = 1
		c.total, c.from, c.to = 0, 0, 0
		c.notify.Notify(LevelError, res.Message)
		return
	}
	c.state = StateLoaded
	c.rows = res.Page.Data
	if res.Page.CurrentPage > 0 {
		c.page = res.Page.CurrentPage
	}
	c.totalPages = res.Page.LastPage
	if c.totalPages < 1 {
		c.totalPages = 1
	}
	c.total = res.Page.Total
	c.from, c.to = res.Page.From, res.Page.To
}

// Pagination

func (c *ListController[T]) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page < c.totalPages
}

func (c *ListController[T]) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page > 1
}

// SetPage clamps to [1, totalPages] and refetches.
func (c *ListController[T]) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if page > c.totalPages {
		page = c.totalPages
	}
	c.page = page
	seq, params := c.beginLoadLocked()
	c.mu.Unlock()
	c.runFetch(ctx, seq, params)
}

func (c *ListController[T]) NextPage(ctx context.Context) {
	if !c.CanNext() {
		return
	}
	c.mu.Lock()
	page := c.page + 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

func (c *ListController[T]) PrevPage(ctx context.Context) {
	if !c.CanPrev() {
		return
	}
	c.mu.Lock()
	page := c.page - 1
	c.mu.Unlock()
	c.SetPage(ctx, page)
}

func (c *ListController[T]) SetPerPage(ctx context.Context, n int) {
	c.mu.Lock()
	if n < 1 {
		n = 1
	}
	c.perPage = n
	c.page = 1
	seq, params := c.beginLoadLocked()
	c.mu.Unlock()
	c.runFetch(ctx, seq, params)
}

// Filtering & search

func (c *ListController[T]) SetFilter(ctx context.Context, key, val string) {
	c.mu.Lock()
	c.filters.Set(key, val)
	c.page = 1
	seq, params := c.beginLoadLocked()
	c.mu.Unlock()
	c.runFetch(ctx, seq, params)
}

func (c *ListController[T]) ClearFilter(ctx context.Context, key string) {
	c.mu.Lock()
	c.filters.Clear(key)
	c.page = 1
	seq, params := c.beginLoadLocked()
	c.mu.Unlock()
	c.runFetch(ctx, seq, params)
}

// SetSearch records a keystroke. The fetch fires only once the debounce
// window elapses without another keystroke.
func (c *ListController[T]) SetSearch(val string) {
	c.mu.Lock()
	c.pending = val
	c.mu.Unlock()

	c.debouncer.Trigger(func() {
		c.mu.Lock()
		c.search = c.pending
		c.page = 1
		seq, params := c.beginLoadLocked()
		ctx := c.ctx
		c.mu.Unlock()
		c.runFetch(ctx, seq, params)
	})
}

// Modal & mutations

func (c *ListController[T]) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form != nil {
		c.form.BeginCreate()
	}
	c.modal = Modal{mode: ModalCreate}
}

func (c *ListController[T]) OpenEdit(id int, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form != nil && c.seed != nil {
		c.form.BeginEdit(c.seed(rec))
	}
	c.modal = Modal{mode: ModalEdit, recordID: id}
}

func (c *ListController[T]) OpenView(id int, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form != nil && c.seed != nil {
		c.form.BeginEdit(c.seed(rec))
	}
	c.modal = Modal{mode: ModalView, recordID: id}
}

func (c *ListController[T]) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modal = Modal{}
	if c.form != nil {
		c.form.Reset()
	}
}

// Submit dispatches the open modal's form: create or update depending on
// mode. On failure every backend field message becomes its own notification
// and the modal stays open with the entered values intact; on success the
// modal closes, the form resets and the list refreshes.
func (c *ListController[T]) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.mut == nil || c.form == nil || !c.modal.Open() || c.modal.Mode() == ModalView {
		c.mu.Unlock()
		return false
	}
	mode := c.modal.Mode()
	recordID := c.modal.RecordID()

	payload, err := c.form.Coerce()
	if err == nil && c.validate != nil {
		err = c.validate(payload, mode == ModalEdit)
	}
	if err != nil {
		var vErr *core.ValidationError
		if errors.As(err, &vErr) {
			for _, msg := range vErr.Messages() {
				c.notify.Notify(LevelError, msg)
			}
		} else {
			c.notify.Notify(LevelError, err.Error())
		}
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	var success bool
	var message string
	var fieldErrs client.FieldErrors
	switch mode {
	case ModalCreate:
		res := c.mut.Create(ctx, payload)
		success, message, fieldErrs = res.Success, res.Message, res.Errors
	case ModalEdit:
		res := c.mut.Update(ctx, recordID, payload)
		success, message, fieldErrs = res.Success, res.Message, res.Errors
	}

	if !success {
		notifyFailure(c.notify, message, fieldErrs)
		return false // modal stays open, values intact
	}

	if message == "" {
		message = "operación exitosa"
	}
	c.notify.Notify(LevelSuccess, message)
	c.CloseModal()
	c.Refresh(ctx)
	return true
}

// Delete removes a record after explicit confirmation. The row is never
// removed optimistically: the list refreshes only after the backend
// confirms.
func (c *ListController[T]) Delete(ctx context.Context, id int, confirm func() bool) bool {
	if c.mut == nil || confirm == nil || !confirm() {
		return false
	}
	res := c.mut.Delete(ctx, id)
	if !res.Success {
		notifyFailure(c.notify, res.Message, res.Errors)
		return false
	}
	msg := res.Message
	if msg == "" {
		msg = "registro eliminado"
	}
	c.notify.Notify(LevelSuccess, msg)
	c.Refresh(ctx)
	return true
}

// Import uploads a spreadsheet. The extension allowlist is checked before
// any bytes are read; the busy flag covers only this import, not the page.
func (c *ListController[T]) Import(ctx context.Context, filename string, file io.Reader) (client.ImportSummary, bool) {
	if c.imp == nil {
		c.notify.Notify(LevelError, "esta página no admite importación")
		return client.ImportSummary{}, false
	}
	if err := csvio.CheckImportFile(filename); err != nil {
		c.notify.Notify(LevelError, err.Error())
		return client.ImportSummary{}, false
	}

	c.mu.Lock()
	c.importing = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.importing = false
		c.mu.Unlock()
	}()

	res := c.imp.ImportFromFile(ctx, filename, file)
	if !res.Success {
		notifyFailure(c.notify, res.Message, res.Errors)
		return client.ImportSummary{}, false
	}
	summary := res.Data
	c.notify.Notify(LevelSuccess, fmt.Sprintf(
		"importación completada: %d creados, %d actualizados, %d con errores",
		summary.Created, summary.Updated, summary.Failed,
	))
	c.Refresh(ctx)
	return summary, true
}

// Export fetches the full filtered result set and serializes it as CSV.
// An empty result set is a user-facing error, not a silent no-op.
func (c *ListController[T]) Export(ctx context.Context, w io.Writer) (string, bool) {
	if c.exp == nil || c.csvRow == nil {
		c.notify.Notify(LevelError, "esta página no admite exportación")
		return "", false
	}

	c.mu.Lock()
	c.exporting = true
	filters := c.filters.Clone()
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.exporting = false
		c.mu.Unlock()
	}()

	res := c.exp.ExportAll(ctx, filters)
	if !res.Success {
		c.notify.Notify(LevelError, res.Message)
		return "", false
	}
	if len(res.Data) == 0 {
		c.notify.Notify(LevelError, "no hay datos para exportar")
		return "", false
	}

	rows := make([][]string, 0, len(res.Data))
	for _, rec := range res.Data {
		rows = append(rows, c.csvRow(rec))
	}
	if err := csvio.Export(w, c.csvHeaders, rows); err != nil {
		if c.log != nil {
			c.log.Error("exporting CSV", err)
		}
		c.notify.Notify(LevelError, "no se pudo generar el archivo CSV")
		return "", false
	}
	name := csvio.Filename(c.entity, time.Now())
	c.notify.Notify(LevelSuccess, fmt.Sprintf("%d registros exportados", len(rows)))
	return name, true
}

// Accessors

func (c *ListController[T]) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ListController[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *ListController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

func (c *ListController[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *ListController[T]) Range() (from, to int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.from, c.to
}

func (c *ListController[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

func (c *ListController[T]) Importing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.importing
}

func (c *ListController[T]) Exporting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exporting
}

func (c *ListController[T]) Modal() Modal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

func (c *ListController[T]) Form() *Form { return c.form }

// Session exposes the injected session so pages can combine
// `IsAdmin() || CanX(...)` when rendering actions.
func (c *ListController[T]) Session() *session.Session { return c.sess }
