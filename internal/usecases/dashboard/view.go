package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

// Option configura um View
type Option func(*View)

// WithObserver registra uma função chamada a cada transição aplicada.
// As chamadas são serializadas e seguem a ordem das transições; o observador
// recebe o novo estado e não deve chamar métodos do View.
func WithObserver(fn func(State)) Option {
	return func(v *View) {
		v.observers = append(v.observers, fn)
	}
}

type activation struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (a *activation) finish() {
	a.once.Do(func() { close(a.done) })
}

// View faz uma única busca por ativação e mantém o resumo resultante.
type View struct {
	source    salesfeed.Source
	observers []func(State)

	mu      sync.Mutex
	state   State
	current *activation
	closed  bool
	wg      sync.WaitGroup
}

// NewView cria o dashboard em Loading; nenhuma busca acontece antes de Activate
func NewView(source salesfeed.Source, opts ...Option) *View {
	v := &View{
		source: source,
		state:  State{Status: StatusLoading},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Activate volta o dashboard para Loading e dispara exatamente uma busca.
// Uma ativação anterior ainda em andamento é cancelada e o resultado dela é descartado.
func (v *View) Activate(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		logrus.Warn("Ativação ignorada: dashboard já encerrado")
		return
	}

	if previous := v.current; previous != nil {
		previous.cancel()
		previous.finish()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	act := &activation{cancel: cancel, done: make(chan struct{})}
	v.current = act
	v.wg.Add(1)

	v.dispatchLocked(Activated{})
	v.mu.Unlock()

	go v.load(fetchCtx, act)
}

func (v *View) load(ctx context.Context, act *activation) {
	defer v.wg.Done()
	defer act.cancel()

	startTime := time.Now()
	records, err := v.source.FetchSales(ctx)

	var event Event
	if err != nil {
		event = Failed{Err: err}
	} else {
		event = Loaded{Summary: reporting.Summarize(records)}
	}

	v.mu.Lock()
	if v.closed || v.current != act {
		v.mu.Unlock()
		logrus.Debug("Resultado de busca descartado: ativação substituída ou dashboard encerrado")
		return
	}

	if err != nil {
		logrus.WithError(err).WithField("duration", time.Since(startTime).String()).
			Error("Erro ao carregar vendas do dashboard")
	} else {
		logrus.WithFields(logrus.Fields{
			"records":  len(records),
			"duration": time.Since(startTime).String(),
		}).Info("Dashboard de vendas atualizado")
	}

	v.dispatchLocked(event)
	v.mu.Unlock()
	act.finish()
}

// dispatchLocked aplica o evento e notifica os observadores; exige v.mu travado
func (v *View) dispatchLocked(event Event) {
	v.state = Reduce(v.state, event)
	for _, fn := range v.observers {
		fn(v.state)
	}
}

// State devolve o estado atual
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Wait bloqueia até a ativação corrente terminar, o dashboard ser encerrado ou ctx expirar
func (v *View) Wait(ctx context.Context) error {
	for {
		v.mu.Lock()
		act, closed := v.current, v.closed
		v.mu.Unlock()

		if act == nil || closed {
			return nil
		}

		select {
		case <-act.done:
			v.mu.Lock()
			settled := v.current == act || v.closed
			v.mu.Unlock()
			if settled {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancela a busca em andamento e espera a goroutine terminar.
// Depois de Close nenhuma transição é aplicada.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	act := v.current
	if act != nil {
		act.cancel()
	}
	v.mu.Unlock()

	v.wg.Wait()

	if act != nil {
		act.finish()
	}
	logrus.Info("Dashboard de vendas encerrado")
}
