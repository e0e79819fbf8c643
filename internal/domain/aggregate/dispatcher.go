package aggregate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Applier folds one event into a target.
type Applier func(target any, evt Event) error

// Observer is told about events that no handler applied.
type Observer interface {
	Unhandled(target string, evt Event)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(target string, evt Event)

// Unhandled calls f.
func (f ObserverFunc) Unhandled(target string, evt Event) {
	f(target, evt)
}

type discardObserver struct{}

func (discardObserver) Unhandled(string, Event) {}

// Default is the process-wide dispatcher used by every [Root] and
// [EntityBase] unless overridden with UseDispatcher.
var Default = NewDispatcher()

var (
	eventType = reflect.TypeFor[Event]()
	errorType = reflect.TypeFor[error]()
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver sets the observer notified of unhandled events.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		d.SetObserver(o)
	}
}

// Dispatcher resolves and invokes event handlers. Per-type dispatch tables
// are built once on first use, published, and never changed afterwards.
type Dispatcher struct {
	tables sync.Map // reflect.Type -> *table
	group  singleflight.Group

	mu         sync.Mutex
	registered map[reflect.Type]map[reflect.Type]Applier

	obs atomic.Pointer[observerBox]
}

type observerBox struct {
	Observer
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registered: make(map[reflect.Type]map[reflect.Type]Applier),
	}
	d.SetObserver(nil)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetObserver replaces the observer. A nil observer discards notifications.
func (d *Dispatcher) SetObserver(o Observer) {
	if o == nil {
		o = discardObserver{}
	}
	d.obs.Store(&observerBox{o})
}

func (d *Dispatcher) observer() Observer {
	return d.obs.Load().Observer
}

// Handle registers fn as the handler of events of type E on targets of type
// T. Registration must happen before the dispatch table of T is built (in an
// init function or at program start); afterwards it fails with
// [ErrRegistrySealed].
func Handle[T any, E Event](d *Dispatcher, fn func(T, E) error) error {
	target := reflect.TypeFor[T]()
	evt := reflect.TypeFor[E]()
	return d.register(target, evt, func(t any, e Event) error {
		return fn(t.(T), e.(E))
	})
}

func (d *Dispatcher) register(target, evt reflect.Type, fn Applier) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, built := d.tables.Load(target); built {
		return fmt.Errorf("%w: %s", ErrRegistrySealed, target)
	}
	handlers, ok := d.registered[target]
	if !ok {
		handlers = make(map[reflect.Type]Applier)
		d.registered[target] = handlers
	}
	if _, dup := handlers[evt]; dup {
		return fmt.Errorf("%w: %s on %s", ErrDuplicateHandler, evt, target)
	}
	handlers[evt] = fn
	return nil
}

// Resolve returns the applier of events of type evt on targets of type
// target, building the target's dispatch table on first use.
func (d *Dispatcher) Resolve(target, evt reflect.Type) (Applier, bool) {
	return d.tableFor(target).resolve(evt)
}

// Dispatch applies evt to target. An event without a handler is a no-op
// reported to the observer.
func (d *Dispatcher) Dispatch(target any, evt Event) error {
	if isNil(evt) {
		return ErrNilEvent
	}
	if target == nil {
		return ErrUnbound
	}
	handled, err := d.apply(target, evt)
	if err != nil {
		return err
	}
	if !handled {
		d.observer().Unhandled(typeName(reflect.TypeOf(target)), evt)
	}
	return nil
}

func (d *Dispatcher) apply(target any, evt Event) (bool, error) {
	fn, ok := d.Resolve(reflect.TypeOf(target), reflect.TypeOf(evt))
	if !ok {
		return false, nil
	}
	return true, fn(target, evt)
}

// tableFor returns the published table of t, building it at most once even
// under concurrent first use.
func (d *Dispatcher) tableFor(t reflect.Type) *table {
	if v, ok := d.tables.Load(t); ok {
		return v.(*table)
	}

	v, _, _ := d.group.Do(typeKey(t), func() (any, error) {
		if v, ok := d.tables.Load(t); ok {
			return v, nil
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		tbl := buildTable(t, d.registered[t])
		d.tables.Store(t, tbl)
		delete(d.registered, t)
		return tbl, nil
	})
	return v.(*table)
}

// typeKey names t in the singleflight group. Each reflect.Type value is
// unique to its type, so distinct types that print alike (function-local
// types of the same name) get distinct keys.
func typeKey(t reflect.Type) string {
	return fmt.Sprintf("%s@%p", t, t)
}

// table is the dispatch table of one target type.
type table struct {
	target     reflect.Type
	convention map[reflect.Type]Applier
	fallback   map[reflect.Type]Applier
	ifaces     []ifaceApplier

	// memo caches interface-parameter resolutions per event type.
	memo sync.Map // reflect.Type -> resolution
}

type ifaceApplier struct {
	param reflect.Type
	fn    Applier
}

type resolution struct {
	fn Applier
	ok bool
}

func buildTable(t reflect.Type, registered map[reflect.Type]Applier) *table {
	tbl := &table{
		target:     t,
		convention: make(map[reflect.Type]Applier),
		fallback:   make(map[reflect.Type]Applier, len(registered)),
	}
	for evt, fn := range registered {
		tbl.fallback[evt] = fn
	}

	for i := range t.NumMethod() {
		m := t.Method(i)
		param, ok := handlerParam(m)
		if !ok {
			continue
		}
		switch {
		case m.Name == conventionalName(param):
			tbl.convention[param] = methodApplier(m)
		case strings.EqualFold(m.Name, "apply"):
			if param.Kind() == reflect.Interface {
				tbl.ifaces = append(tbl.ifaces, ifaceApplier{param: param, fn: methodApplier(m)})
				continue
			}
			if _, taken := tbl.fallback[param]; !taken {
				tbl.fallback[param] = methodApplier(m)
			}
		}
	}
	return tbl
}

func (t *table) resolve(evt reflect.Type) (Applier, bool) {
	if fn, ok := t.convention[evt]; ok {
		return fn, true
	}
	if fn, ok := t.fallback[evt]; ok {
		return fn, true
	}
	if len(t.ifaces) == 0 {
		return nil, false
	}
	if r, ok := t.memo.Load(evt); ok {
		res := r.(resolution)
		return res.fn, res.ok
	}
	var res resolution
	for _, ia := range t.ifaces {
		if evt.Implements(ia.param) {
			res = resolution{fn: ia.fn, ok: true}
			break
		}
	}
	t.memo.Store(evt, res)
	return res.fn, res.ok
}

// handlerParam returns the event parameter type of m when m has the shape
// func(recv, E) or func(recv, E) error.
func handlerParam(m reflect.Method) (reflect.Type, bool) {
	mt := m.Type
	if mt.NumIn() != 2 || mt.IsVariadic() {
		return nil, false
	}
	switch mt.NumOut() {
	case 0:
	case 1:
		if mt.Out(0) != errorType {
			return nil, false
		}
	default:
		return nil, false
	}
	param := mt.In(1)
	if !param.Implements(eventType) {
		return nil, false
	}
	return param, true
}

// conventionalName is the handler method name for events of type t, e.g.
// OnItemCreated for *ItemCreated or *ItemCreatedEvent.
func conventionalName(t reflect.Type) string {
	return "On" + strings.TrimSuffix(typeName(t), "Event")
}

func methodApplier(m reflect.Method) Applier {
	fn := m.Func
	returnsErr := m.Type.NumOut() == 1
	return func(target any, evt Event) error {
		out := fn.Call([]reflect.Value{reflect.ValueOf(target), reflect.ValueOf(evt)})
		if !returnsErr || out[0].IsNil() {
			return nil
		}
		return out[0].Interface().(error)
	}
}
