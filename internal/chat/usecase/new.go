package usecase

import (
	"sync"

	"tecnofit-assistant/internal/chat"
	"tecnofit-assistant/internal/chat/repository"
	"tecnofit-assistant/internal/knowledge"
	"tecnofit-assistant/internal/lead"
	"tecnofit-assistant/internal/router"
	"tecnofit-assistant/internal/telemetry"
	"tecnofit-assistant/pkg/llmprovider"
	pkgLog "tecnofit-assistant/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       llmprovider.Generator
	router    router.Router
	extractor lead.Extractor
	knowledge knowledge.Store
	repo      repository.ConversationRepository
	tracer    telemetry.Tracer

	historyLimit int

	// Per-thread turn serialization. Distinct threads run concurrently;
	// turns on one thread never interleave.
	mu        sync.Mutex
	threadMus map[string]*sync.Mutex
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	rt router.Router,
	extractor lead.Extractor,
	store knowledge.Store,
	repo repository.ConversationRepository,
	tracer telemetry.Tracer,
	historyLimit int,
) *implUseCase {
	if tracer == nil {
		tracer = telemetry.NopTracer{}
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		router:       rt,
		extractor:    extractor,
		knowledge:    store,
		repo:         repo,
		tracer:       tracer,
		historyLimit: historyLimit,
		threadMus:    make(map[string]*sync.Mutex),
	}
}

// lockThread acquires the mutex for one thread, creating it on first use.
func (uc *implUseCase) lockThread(threadID string) func() {
	uc.mu.Lock()
	m, ok := uc.threadMus[threadID]
	if !ok {
		m = &sync.Mutex{}
		uc.threadMus[threadID] = m
	}
	uc.mu.Unlock()

	m.Lock()
	return m.Unlock
}
