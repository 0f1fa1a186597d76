package acclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
	"github.com/vfg2006/mail-insights-api/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultPageSize    = 100
	DefaultMaxAttempts = 3
	DefaultTimeout     = 30 * time.Second

	apiPath = "/api/3"

	// abaixo deste saldo a próxima requisição espera o reset da janela
	minRemainingBudget = 2
	minBudgetWait      = time.Second
	// valores de X-RateLimit-Reset menores que isso são segundos a partir de agora
	epochThreshold = 1_000_000_000
)

type Client interface {
	ListLists(ctx context.Context) *Pager[acdomain.List]
	ListCampaigns(ctx context.Context) *Pager[acdomain.Campaign]
	GetCampaignLists(ctx context.Context, campaignID string) ([]string, error)
	ListAutomations(ctx context.Context) *Pager[acdomain.Automation]
	GetAutomationCampaigns(ctx context.Context, automationID string) ([]string, error)
	ListMessages(ctx context.Context, since time.Time) *Pager[acdomain.Message]
	GetContactTotals(ctx context.Context) (*acdomain.ContactTotals, error)
	GetCurrentUser(ctx context.Context) (*acdomain.User, error)
	ProbeCampaigns(ctx context.Context) error
	GetAccountView(ctx context.Context) (*acdomain.AccountView, error)
	GetCampaignReportTotals(ctx context.Context, campaignID, sdate, ldate string) (*acdomain.CampaignReportTotals, error)
}

// Config é passada explicitamente para cada cliente. Sleep e Now podem ser trocados em testes.
type Config struct {
	BaseURL           string
	APIKey            string
	PageSize          int
	MaxAttempts       int
	RequestsPerSecond float64
	Timeout           time.Duration
	HTTPClient        *http.Client
	Breaker           *gobreaker.CircuitBreaker[[]byte]
	Sleep             func(ctx context.Context, d time.Duration) error
	Now               func() time.Time
}

type budget struct {
	known     bool
	remaining int
	resetAt   time.Time
}

type ACClient struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter

	mu     sync.Mutex
	budget budget
}

func New(cfg Config) *ACClient {
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, apiPath)

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(math.Max(1, cfg.RequestsPerSecond)))
	}

	return &ACClient{
		cfg:     cfg,
		http:    httpClient,
		limiter: limiter,
	}
}

// get executa um GET na API v3
func (c *ACClient) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	rawURL := c.cfg.BaseURL + apiPath + endpoint
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.execute(ctx, endpoint, rawURL, true)
}

// getLegacy executa uma ação da API v1 (admin/api.php)
func (c *ACClient) getLegacy(ctx context.Context, action string, params url.Values) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.cfg.APIKey)
	query.Set("api_action", action)
	query.Set("api_output", "json")

	rawURL := c.cfg.BaseURL + "/admin/api.php?" + query.Encode()
	return c.execute(ctx, "v1:"+action, rawURL, false)
}

func (c *ACClient) execute(ctx context.Context, endpoint, rawURL string, withToken bool) ([]byte, error) {
	if c.cfg.Breaker == nil {
		return c.doWithRetry(ctx, endpoint, rawURL, withToken)
	}

	body, err := c.cfg.Breaker.Execute(func() ([]byte, error) {
		return c.doWithRetry(ctx, endpoint, rawURL, withToken)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.UpstreamRequests.WithLabelValues(endpointLabel(endpoint), "rejected").Inc()
		return nil, &Error{Endpoint: endpoint, Err: ErrCircuitOpen, Cause: err}
	}
	return body, err
}

func (c *ACClient) doWithRetry(ctx context.Context, endpoint, rawURL string, withToken bool) ([]byte, error) {
	var (
		lastErr    error
		lastStatus int
	)

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if err := c.awaitBudget(ctx); err != nil {
			return nil, err
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, status, err := c.send(ctx, rawURL, withToken)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr, lastStatus = err, 0
		case status == http.StatusTooManyRequests:
			lastErr, lastStatus = nil, status
		case status >= 200 && status < 300:
			metrics.UpstreamRequests.WithLabelValues(endpointLabel(endpoint), "success").Inc()
			return body, nil
		default:
			metrics.UpstreamRequests.WithLabelValues(endpointLabel(endpoint), "error").Inc()
			return nil, &Error{Endpoint: endpoint, StatusCode: status, Body: string(body)}
		}

		if attempt == c.cfg.MaxAttempts {
			break
		}

		wait := time.Duration(math.Pow(2, float64(attempt))) * time.Second
		logrus.WithFields(logrus.Fields{
			"endpoint": endpoint,
			"attempt":  attempt,
			"status":   lastStatus,
			"wait":     wait.String(),
		}).WithError(lastErr).Warn("Requisição ao ActiveCampaign falhou, nova tentativa agendada")
		metrics.UpstreamRetries.WithLabelValues(endpointLabel(endpoint)).Inc()

		if err := c.cfg.Sleep(ctx, wait); err != nil {
			return nil, err
		}
	}

	metrics.UpstreamRequests.WithLabelValues(endpointLabel(endpoint), "exhausted").Inc()
	return nil, &Error{Endpoint: endpoint, StatusCode: lastStatus, Err: ErrRetriesExhausted, Cause: lastErr}
}

func (c *ACClient) send(ctx context.Context, rawURL string, withToken bool) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if withToken {
		req.Header.Set("Api-Token", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, wrapTransport(err)
	}
	defer resp.Body.Close()

	c.updateBudget(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler resposta: %w", err)
	}
	return body, resp.StatusCode, nil
}

func wrapTransport(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("timeout na requisição: %w", err)
	}
	return fmt.Errorf("erro de rede: %w", err)
}

// awaitBudget dorme até o reset quando o saldo conhecido está abaixo do mínimo
func (c *ACClient) awaitBudget(ctx context.Context) error {
	c.mu.Lock()
	if !c.budget.known || c.budget.remaining >= minRemainingBudget {
		c.mu.Unlock()
		return nil
	}
	wait := c.budget.resetAt.Sub(c.cfg.Now())
	if wait < minBudgetWait {
		wait = minBudgetWait
	}
	// o saldo volta a ser desconhecido até a próxima resposta
	c.budget.known = false
	c.mu.Unlock()

	logrus.WithField("wait", wait.String()).Info("Limite de requisições do ActiveCampaign próximo, aguardando reset")
	metrics.UpstreamRateLimitWaits.Inc()
	return c.cfg.Sleep(ctx, wait)
}

func (c *ACClient) updateBudget(h http.Header) {
	remainingRaw := h.Get("X-RateLimit-Remaining")
	if remainingRaw == "" {
		return
	}
	remaining, err := strconv.Atoi(strings.TrimSpace(remainingRaw))
	if err != nil {
		return
	}

	now := c.cfg.Now()
	resetAt := now
	if resetRaw := strings.TrimSpace(h.Get("X-RateLimit-Reset")); resetRaw != "" {
		if n, err := strconv.ParseInt(resetRaw, 10, 64); err == nil {
			if n < epochThreshold {
				resetAt = now.Add(time.Duration(n) * time.Second)
			} else {
				resetAt = time.Unix(n, 0)
			}
		}
	}

	c.mu.Lock()
	c.budget = budget{known: true, remaining: remaining, resetAt: resetAt}
	c.mu.Unlock()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// endpointLabel remove IDs do caminho para manter a cardinalidade das métricas baixa
func endpointLabel(endpoint string) string {
	parts := strings.Split(endpoint, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}
