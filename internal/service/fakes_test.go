package service

import (
	"context"
	"encoding/json"
	"sync"

	"ai-summarizer-be/internal/dto"
	"ai-summarizer-be/internal/entity"
	"ai-summarizer-be/internal/repository/contract"
	"ai-summarizer-be/internal/repository/specification"
	"ai-summarizer-be/internal/repository/unitofwork"
	"ai-summarizer-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory repository fakes. FindOne/FindAll interpret the concrete
// specification types the services actually use.

type fakeSummaryRepo struct {
	mu        sync.Mutex
	summaries map[uuid.UUID]*entity.Summary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{summaries: make(map[uuid.UUID]*entity.Summary)}
}

func (r *fakeSummaryRepo) Create(ctx context.Context, summary *entity.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *summary
	r.summaries[summary.Id] = &cp
	return nil
}

func (r *fakeSummaryRepo) Update(ctx context.Context, summary *entity.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *summary
	r.summaries[summary.Id] = &cp
	return nil
}

func (r *fakeSummaryRepo) UpdateText(ctx context.Context, id uuid.UUID, summaryText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.summaries[id]; ok {
		s.SummaryText = summaryText
	}
	return nil
}

func (r *fakeSummaryRepo) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.summaries[id]; ok {
		s.Title = title
	}
	return nil
}

func (r *fakeSummaryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.summaries, id)
	return nil
}

func (r *fakeSummaryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.summaries {
		if matchSummary(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSummaryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Summary
	for _, s := range r.summaries {
		if matchSummary(s, specs) {
			cp := *s
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeSummaryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchSummary(s *entity.Summary, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if s.UserId != sp.UserID {
				return false
			}
		case specification.ByShareId:
			if s.ShareId != sp.ShareId {
				return false
			}
		}
	}
	return true
}

type fakePromptRepo struct {
	mu      sync.Mutex
	prompts map[uuid.UUID]*entity.PromptTemplate
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{prompts: make(map[uuid.UUID]*entity.PromptTemplate)}
}

func (r *fakePromptRepo) Create(ctx context.Context, prompt *entity.PromptTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *prompt
	r.prompts[prompt.Id] = &cp
	return nil
}

func (r *fakePromptRepo) CreateMany(ctx context.Context, prompts []*entity.PromptTemplate) error {
	for _, p := range prompts {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakePromptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prompts, id)
	return nil
}

func (r *fakePromptRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromptTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prompts {
		if matchPrompt(p, specs) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePromptRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PromptTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.PromptTemplate
	for _, p := range r.prompts {
		if matchPrompt(p, specs) {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakePromptRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchPrompt(p *entity.PromptTemplate, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if p.Id != sp.ID {
				return false
			}
		case specification.DefaultOrOwnedBy:
			if p.UserId != nil && *p.UserId != sp.UserID {
				return false
			}
		case specification.DefaultsOnly:
			if p.UserId != nil {
				return false
			}
		}
	}
	return true
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		match := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if u.Id != sp.ID {
					match = false
				}
			case specification.ByEmail:
				if u.Email != sp.Email {
					match = false
				}
			}
		}
		if match {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SaveUserProvider(ctx context.Context, provider *entity.UserProvider) error {
	return nil
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []*entity.SummaryActivity
}

func (r *fakeActivityRepo) Create(ctx context.Context, activity *entity.SummaryActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *activity
	r.activities = append(r.activities, &cp)
	return nil
}

func (r *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SummaryActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.SummaryActivity(nil), r.activities...), nil
}

// fakeUow wires the fakes behind the UnitOfWork contract. Transactions
// are no-ops.
type fakeUow struct {
	summaries  *fakeSummaryRepo
	prompts    *fakePromptRepo
	users      *fakeUserRepo
	activities *fakeActivityRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		summaries:  newFakeSummaryRepo(),
		prompts:    newFakePromptRepo(),
		users:      newFakeUserRepo(),
		activities: &fakeActivityRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUow) SummaryRepository() contract.SummaryRepository {
	return u.summaries
}
func (u *fakeUow) PromptTemplateRepository() contract.PromptTemplateRepository {
	return u.prompts
}
func (u *fakeUow) SummaryActivityRepository() contract.SummaryActivityRepository {
	return u.activities
}

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// stubLLM returns canned responses per prompt prefix and records the
// prompts it saw.
type stubLLM struct {
	mu       sync.Mutex
	respond  func(prompt string) (string, error)
	prompts  []string
	numCalls int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	s.numCalls++
	if s.respond != nil {
		return s.respond(prompt)
	}
	return "generated", nil
}

// recordingPublisher captures activity payloads instead of routing them
// through watermill.
type recordingPublisher struct {
	mu       sync.Mutex
	payloads []dto.PublishSummaryActivityMessage
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	var msg dto.PublishSummaryActivityMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, msg)
	return nil
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.payloads))
	for _, msg := range p.payloads {
		out = append(out, msg.Action)
	}
	return out
}

// noopShareCache never hits and records invalidations.
type noopShareCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *noopShareCache) Get(ctx context.Context, shareId string) (*dto.SummaryResponse, bool) {
	return nil, false
}

func (c *noopShareCache) Set(ctx context.Context, shareId string, summary *dto.SummaryResponse) {}

func (c *noopShareCache) Invalidate(ctx context.Context, shareId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, shareId)
}

// fakeLogger records every entry so tests can assert on warn paths.
type fakeLogger struct {
	mu      sync.Mutex
	entries []loggedEntry
}

type loggedEntry struct {
	Level   string
	Module  string
	Message string
}

func (l *fakeLogger) record(level, module, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, loggedEntry{Level: level, Module: module, Message: message})
}

func (l *fakeLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message)
}

func (l *fakeLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message)
}

func (l *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message)
}

func (l *fakeLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message)
}

func (l *fakeLogger) Sync() error { return nil }

func (l *fakeLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var messages []string
	for _, e := range l.entries {
		if e.Level == "warn" {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
