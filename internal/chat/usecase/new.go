package usecase

import (
	"time"

	"book-agent/internal/chat"
	"book-agent/internal/chat/repository"
	"book-agent/internal/responder"
	"book-agent/internal/retrieval"
	"book-agent/internal/router"
	"book-agent/pkg/log"
)

// Limits caps how many grounding passages a turn requests. Direct replies
// quote passages verbatim and can carry more; generated replies feed the
// passages into a prompt and use fewer.
type Limits struct {
	Direct   int
	Generate int
}

type implUseCase struct {
	l         log.Logger
	router    router.Router
	retriever retrieval.Retriever
	responder responder.Responder
	repo      repository.ConversationRepository
	limits    Limits
	locks     *lockTable
	clock     func() time.Time
}

func New(
	l log.Logger,
	rt router.Router,
	retriever retrieval.Retriever,
	rsp responder.Responder,
	repo repository.ConversationRepository,
	limits Limits,
) chat.UseCase {
	return &implUseCase{
		l:         l,
		router:    rt,
		retriever: retriever,
		responder: rsp,
		repo:      repo,
		limits:    limits,
		locks:     newLockTable(),
		clock:     time.Now,
	}
}

func (uc *implUseCase) retrieveLimit() int {
	if uc.responder.Mode() == responder.ModeLLM {
		return uc.limits.Generate
	}
	return uc.limits.Direct
}
