package syncing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/mail-insights-api/internal/domain"
)

// memStore implementa todos os repositórios usados pela sincronização em memória.
// Upserts substituem pela chave (conta, id), como o ON CONFLICT do Postgres.
type memStore struct {
	mu sync.Mutex

	accounts      map[string]*domain.Account
	contactStats  map[string]*domain.AccountContactStats
	lists         map[string]domain.List
	campaigns     map[string]domain.Campaign
	campaignLists map[string][]string
	automations   map[string]domain.Automation
	automationCs  map[string][]domain.AutomationCampaign
	messages      map[string]domain.CampaignMessage
	jobs          map[string]*domain.SyncJob
	finishCtxErr  map[string]error
}

func newMemStore(accounts ...*domain.Account) *memStore {
	s := &memStore{
		accounts:      make(map[string]*domain.Account),
		contactStats:  make(map[string]*domain.AccountContactStats),
		lists:         make(map[string]domain.List),
		campaigns:     make(map[string]domain.Campaign),
		campaignLists: make(map[string][]string),
		automations:   make(map[string]domain.Automation),
		automationCs:  make(map[string][]domain.AutomationCampaign),
		messages:      make(map[string]domain.CampaignMessage),
		jobs:          make(map[string]*domain.SyncJob),
		finishCtxErr:  make(map[string]error),
	}
	for _, a := range accounts {
		s.accounts[a.ID] = a
	}
	return s
}

func (s *memStore) repositories() Repositories {
	return Repositories{
		Accounts:    s,
		Lists:       s,
		Campaigns:   s,
		Automations: s,
		Messages:    s,
		Jobs:        s,
	}
}

func key(accountID, id string) string {
	return accountID + ":" + id
}

// snapshot devolve o estado das entidades sincronizadas, sem jobs
func (s *memStore) snapshot() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[string]interface{}{}
	for k, v := range s.lists {
		out["list:"+k] = v
	}
	for k, v := range s.campaigns {
		out["campaign:"+k] = v
	}
	for k, v := range s.campaignLists {
		out["campaign_lists:"+k] = append([]string(nil), v...)
	}
	for k, v := range s.automations {
		out["automation:"+k] = v
	}
	for k, v := range s.automationCs {
		out["automation_campaigns:"+k] = append([]domain.AutomationCampaign(nil), v...)
	}
	for k, v := range s.messages {
		out["message:"+k] = v
	}
	return out
}

func (s *memStore) countFor(accountID string) domain.SyncCounters {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c domain.SyncCounters
	for _, l := range s.lists {
		if l.AccountID == accountID {
			c.Lists++
		}
	}
	for _, cp := range s.campaigns {
		if cp.AccountID == accountID {
			c.Campaigns++
		}
	}
	for _, a := range s.automations {
		if a.AccountID == accountID {
			c.Automations++
		}
	}
	for _, m := range s.messages {
		if m.AccountID == accountID {
			c.Messages++
		}
	}
	return c
}

func (s *memStore) job(id string) *domain.SyncJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

func (s *memStore) jobsFor(accountID string) []*domain.SyncJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.SyncJob
	for _, j := range s.jobs {
		if j.AccountID == accountID {
			cp := *j
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out
}

// AccountRepository

func (s *memStore) GetAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, nil
	}
	cp := *acc
	return &cp, nil
}

func (s *memStore) GetAccountByBaseURL(_ context.Context, baseURL string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.BaseURL == baseURL {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) ListAccounts(_ context.Context, onlyActive bool) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Account
	for _, acc := range s.accounts {
		if onlyActive && !acc.IsActive {
			continue
		}
		cp := *acc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) CreateAccount(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *memStore) UpdateAccount(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *memStore) SetActive(_ context.Context, accountID string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[accountID]; ok {
		acc.IsActive = active
	}
	return nil
}

func (s *memStore) UpdateContactStats(_ context.Context, accountID string, stats *domain.AccountContactStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contactStats[accountID] = stats
	return nil
}

// ListRepository

func (s *memStore) UpsertLists(_ context.Context, lists []*domain.List) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range lists {
		s.lists[key(l.AccountID, l.ID)] = *l
	}
	return nil
}

func (s *memStore) ListIDs(_ context.Context, accountID string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := map[string]struct{}{}
	for _, l := range s.lists {
		if l.AccountID == accountID {
			ids[l.ID] = struct{}{}
		}
	}
	return ids, nil
}

func (s *memStore) ListLists(_ context.Context, accountIDs []string) ([]*domain.List, error) {
	return nil, nil
}

// CampaignRepository

func (s *memStore) UpsertCampaigns(_ context.Context, campaigns []*domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range campaigns {
		s.campaigns[key(c.AccountID, c.ID)] = *c
	}
	return nil
}

func (s *memStore) ReplaceCampaignLists(_ context.Context, accountID, campaignID string, listIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []string
	for _, id := range listIDs {
		if _, ok := s.lists[key(accountID, id)]; ok {
			kept = append(kept, id)
		}
	}
	sort.Strings(kept)
	s.campaignLists[key(accountID, campaignID)] = kept
	return nil
}

func (s *memStore) ListCampaignIDs(_ context.Context, accountID string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := map[string]struct{}{}
	for _, c := range s.campaigns {
		if c.AccountID == accountID {
			ids[c.ID] = struct{}{}
		}
	}
	return ids, nil
}

func (s *memStore) ListCampaigns(_ context.Context, filter domain.CampaignFilter) ([]*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := map[string]bool{}
	for _, id := range filter.AccountIDs {
		accounts[id] = true
	}
	var out []*domain.Campaign
	for _, c := range s.campaigns {
		if len(accounts) > 0 && !accounts[c.AccountID] {
			continue
		}
		if filter.OnlyAutomation && !c.IsAutomation {
			continue
		}
		cp := c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) ListCampaignLinks(_ context.Context, accountIDs []string) ([]*domain.CampaignList, error) {
	return nil, nil
}

// AutomationRepository

func (s *memStore) UpsertAutomations(_ context.Context, automations []*domain.Automation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range automations {
		s.automations[key(a.AccountID, a.ID)] = *a
	}
	return nil
}

func (s *memStore) ReplaceAutomationCampaigns(_ context.Context, accountID, automationID string, links []*domain.AutomationCampaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := make([]domain.AutomationCampaign, 0, len(links))
	for _, l := range links {
		replaced = append(replaced, *l)
	}
	s.automationCs[key(accountID, automationID)] = replaced
	return nil
}

func (s *memStore) ListAutomations(_ context.Context, filter domain.AutomationFilter) ([]*domain.Automation, error) {
	return nil, nil
}

func (s *memStore) ListAutomationCampaigns(_ context.Context, accountIDs []string) ([]*domain.AutomationCampaign, error) {
	return nil, nil
}

// MessageRepository

func (s *memStore) UpsertMessages(_ context.Context, messages []*domain.CampaignMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range messages {
		s.messages[key(m.AccountID, m.ID)] = *m
	}
	return nil
}

// SyncJobRepository

func (s *memStore) CreateJob(_ context.Context, job *domain.SyncJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.jobs[job.ID] = &cp
	return nil
}

func (s *memStore) FinishJob(ctx context.Context, job *domain.SyncJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *job
	s.jobs[job.ID] = &cp
	s.finishCtxErr[job.ID] = ctx.Err()
	return nil
}

func (s *memStore) ListJobs(_ context.Context, accountID string, limit int) ([]*domain.SyncJob, error) {
	return s.jobsFor(accountID), nil
}

func (s *memStore) LastCompletedAutomatic(_ context.Context) (*domain.SyncJob, error) {
	return nil, nil
}

func (s *memStore) ListCompletedAutomatic(_ context.Context, from, to time.Time) ([]*domain.SyncJob, error) {
	return nil, nil
}
