package acclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	acdomain "github.com/vfg2006/mail-insights-api/infrastructure/integrator/activecampaign/domain"
)

type sleepRecorder struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (r *sleepRecorder) Sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleeps = append(r.sleeps, d)
	return nil
}

func (r *sleepRecorder) All() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.sleeps...)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, pageSize int) (*ACClient, *sleepRecorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	recorder := &sleepRecorder{}
	client := New(Config{
		BaseURL:  server.URL + "/api/3",
		APIKey:   "chave-de-teste",
		PageSize: pageSize,
		Sleep:    recorder.Sleep,
		Now:      func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	return client, recorder
}

func listsPage(offset, limit, total int, withTotal bool) string {
	body := `{"lists":[`
	for i := offset; i < offset+limit && i < total; i++ {
		if i > offset {
			body += ","
		}
		body += fmt.Sprintf(`{"id":"%d","name":"Lista %d","subscriber_count":"%d"}`, i+1, i+1, i*10)
	}
	body += "]"
	if withTotal {
		body += fmt.Sprintf(`,"meta":{"total":"%d"}`, total)
	}
	return body + "}"
}

func TestPager_ExhaustsAllPages(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		withTotal bool
		wantCalls int
	}{
		{name: "total declarado múltiplo do tamanho da página", total: 200, pageSize: 100, withTotal: true, wantCalls: 2},
		{name: "total declarado com página final parcial", total: 250, pageSize: 100, withTotal: true, wantCalls: 3},
		{name: "sem total, para na página curta", total: 250, pageSize: 100, withTotal: false, wantCalls: 3},
		{name: "sem total e múltiplo exato exige página vazia", total: 200, pageSize: 100, withTotal: false, wantCalls: 3},
		{name: "coleção vazia", total: 0, pageSize: 100, withTotal: true, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				assert.Equal(t, "/api/3/lists", r.URL.Path)
				assert.Equal(t, "chave-de-teste", r.Header.Get("Api-Token"))
				offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
				limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
				assert.Equal(t, tt.pageSize, limit)
				fmt.Fprint(w, listsPage(offset, limit, tt.total, tt.withTotal))
			}, tt.pageSize)

			lists, err := Collect(context.Background(), client.ListLists(context.Background()))
			require.NoError(t, err)
			assert.Len(t, lists, tt.total)
			assert.Equal(t, int32(tt.wantCalls), atomic.LoadInt32(&calls))
			if tt.total > 0 {
				assert.Equal(t, "1", lists[0].ID)
				assert.NotEmpty(t, lists[0].Raw)
			}
		})
	}
}

func TestPager_OffsetAdvancesPerPage(t *testing.T) {
	var offsets []int
	pager := NewPager[int](func(_ context.Context, limit, offset int) ([]int, int, bool, error) {
		offsets = append(offsets, offset)
		remaining := 5 - offset
		if remaining > limit {
			remaining = limit
		}
		return make([]int, remaining), 5, true, nil
	}, 2)

	var pageOffsets []int
	for pager.Next(context.Background()) {
		pageOffsets = append(pageOffsets, pager.Offset())
	}
	require.NoError(t, pager.Err())
	assert.Equal(t, []int{0, 2, 4}, offsets)
	assert.Equal(t, []int{0, 2, 4}, pageOffsets)
}

func TestPager_ShortPageEndsDespiteOverstatedTotal(t *testing.T) {
	var calls int
	pager := NewPager[int](func(_ context.Context, limit, offset int) ([]int, int, bool, error) {
		calls++
		remaining := 3 - offset
		if remaining > limit {
			remaining = limit
		}
		return make([]int, remaining), 10, true, nil
	}, 2)

	items, err := Collect(context.Background(), pager)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 2, calls)
}

func TestPager_StopsOnError(t *testing.T) {
	boom := errors.New("falhou")
	pager := NewPager[int](func(_ context.Context, _, _ int) ([]int, int, bool, error) {
		return nil, 0, false, boom
	}, 10)

	assert.False(t, pager.Next(context.Background()))
	assert.ErrorIs(t, pager.Err(), boom)
	assert.False(t, pager.Next(context.Background()))
}

func TestClient_RetryTermination(t *testing.T) {
	var calls int32
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}, 100)

	_, err := client.GetCurrentUser(context.Background())
	require.Error(t, err)

	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, recorder.All())
	assert.ErrorIs(t, err, ErrRetriesExhausted)

	var acErr *Error
	require.True(t, errors.As(err, &acErr))
	assert.Equal(t, "/users/me", acErr.Endpoint)
	assert.Equal(t, http.StatusTooManyRequests, acErr.StatusCode)
}

func TestClient_RetryRecovers(t *testing.T) {
	var calls int32
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"user":{"id":"1","username":"admin","email":"admin@example.com"}}`)
	}, 100)

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{2 * time.Second}, recorder.All())
}

func TestClient_LogicalErrorsAreNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "não autorizado", status: http.StatusUnauthorized},
		{name: "não encontrado", status: http.StatusNotFound},
		{name: "entidade inválida", status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"erro"}`)
			}, 100)

			_, err := client.GetCurrentUser(context.Background())
			require.Error(t, err)

			var acErr *Error
			require.True(t, errors.As(err, &acErr))
			assert.Equal(t, tt.status, acErr.StatusCode)
			assert.Contains(t, acErr.Body, "erro")
			assert.NotErrorIs(t, err, ErrRetriesExhausted)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
			assert.Empty(t, recorder.All())
		})
	}
}

func TestClient_WaitsWhenBudgetIsLow(t *testing.T) {
	tests := []struct {
		name     string
		reset    string
		wantWait time.Duration
	}{
		{name: "reset em segundos relativos", reset: "5", wantWait: 5 * time.Second},
		{name: "reset em epoch", reset: strconv.FormatInt(time.Date(2025, 6, 1, 12, 0, 10, 0, time.UTC).Unix(), 10), wantWait: 10 * time.Second},
		{name: "reset já passou usa espera mínima", reset: "0", wantWait: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Remaining", "1")
				w.Header().Set("X-RateLimit-Reset", tt.reset)
				fmt.Fprint(w, `{"user":{"id":"1"}}`)
			}, 100)

			_, err := client.GetCurrentUser(context.Background())
			require.NoError(t, err)
			assert.Empty(t, recorder.All())

			_, err = client.GetCurrentUser(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []time.Duration{tt.wantWait}, recorder.All())
		})
	}
}

func TestClient_NoWaitWithHealthyBudget(t *testing.T) {
	client, recorder := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "4")
		w.Header().Set("X-RateLimit-Reset", "5")
		fmt.Fprint(w, `{"user":{"id":"1"}}`)
	}, 100)

	for i := 0; i < 3; i++ {
		_, err := client.GetCurrentUser(context.Background())
		require.NoError(t, err)
	}
	assert.Empty(t, recorder.All())
}

func TestClient_CampaignListsFallsBackToEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/3/campaigns/10/campaignLists":
			fmt.Fprint(w, `{"campaignLists":[{"id":"1","list":"3"},{"id":"2","listid":"4"},{"id":"3"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, 100)

	ids, err := client.GetCampaignLists(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4"}, ids)

	ids, err = client.GetCampaignLists(context.Background(), "11")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)
}

func TestClient_GetAutomationCampaigns(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/3/automations/7/campaigns", r.URL.Path)
		fmt.Fprint(w, `{"campaigns":[{"id":"21"},{"id":"22","campaign":"22"},{"id":"21"}]}`)
	}, 100)

	ids, err := client.GetAutomationCampaigns(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"21", "22"}, ids)
}

func TestClient_ListMessagesSendsFilters(t *testing.T) {
	since := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/3/messages", r.URL.Path)
		assert.Equal(t, "2025-03-03T00:00:00Z", r.URL.Query().Get("filters[cdate_gte]"))
		assert.Equal(t, "DESC", r.URL.Query().Get("orders[cdate]"))
		fmt.Fprint(w, `{"messages":[{"id":"1","campaignid":5,"opened_count":"2"}],"meta":{"total":1}}`)
	}, 100)

	messages, err := Collect(context.Background(), client.ListMessages(context.Background(), since))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, acdomain.FlexString("5"), messages[0].CampaignID)
}

func TestClient_GetContactTotals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("status"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `{"contacts":[{"id":"1","deleted":"0"},{"id":"2","deleted":"1"}],"meta":{"total":"1500"}}`)
	}, 100)

	totals, err := client.GetContactTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1500, totals.Total)
	assert.Equal(t, 1499, totals.Active())
}

func TestClient_Legacy(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *acdomain.CampaignReportTotals
		wantErr bool
	}{
		{
			name: "resposta com subscriberclicks",
			body: `{"result_code":1,"send_amt":"1000","uniqueopens":"300","subscriberclicks":"50","uniquelinkclicks":"70","totalbounces":"5","unsubscribes":"2","forwards":"1"}`,
			want: &acdomain.CampaignReportTotals{Sent: 1000, Opens: 300, Clicks: 50, Bounces: 5, Unsubscribes: 2, Forwards: 1},
		},
		{
			name: "sem subscriberclicks usa uniquelinkclicks",
			body: `{"result_code":"1","send_amt":"10","uniqueopens":"4","uniquelinkclicks":"3"}`,
			want: &acdomain.CampaignReportTotals{Sent: 10, Opens: 4, Clicks: 3},
		},
		{
			name:    "result_code diferente de 1",
			body:    `{"result_code":0,"result_message":"Campanha não encontrada"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/admin/api.php", r.URL.Path)
				q := r.URL.Query()
				assert.Equal(t, "campaign_report_totals", q.Get("api_action"))
				assert.Equal(t, "json", q.Get("api_output"))
				assert.Equal(t, "chave-de-teste", q.Get("api_key"))
				assert.Equal(t, "42", q.Get("campaignid"))
				assert.Equal(t, "2025-06-01", q.Get("sdate"))
				assert.Equal(t, "2025-06-02", q.Get("ldate"))
				fmt.Fprint(w, tt.body)
			}, 100)

			got, err := client.GetCampaignReportTotals(context.Background(), "42", "2025-06-01", "2025-06-02")
			if tt.wantErr {
				var legacyErr *LegacyError
				require.True(t, errors.As(err, &legacyErr))
				assert.Equal(t, "Campanha não encontrada", legacyErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_GetAccountView(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "account_view", r.URL.Query().Get("api_action"))
		fmt.Fprint(w, `{"result_code":1,"subscriber_limit":"2500"}`)
	}, 100)

	view, err := client.GetAccountView(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2500, view.SubscriberLimit)
}

func TestClient_BreakerOpensOnTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "chave-de-teste",
		Breaker: NewBreaker("conta-breaker-teste", 2, time.Minute),
		Sleep:   (&sleepRecorder{}).Sleep,
	})

	for i := 0; i < 2; i++ {
		_, err := client.GetCurrentUser(context.Background())
		var acErr *Error
		require.True(t, errors.As(err, &acErr))
		assert.Equal(t, http.StatusBadGateway, acErr.StatusCode)
	}

	_, err := client.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_BreakerIgnoresLogicalErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL: server.URL,
		APIKey:  "chave-de-teste",
		Breaker: NewBreaker("conta-breaker-logico", 1, time.Minute),
	})

	for i := 0; i < 3; i++ {
		_, err := client.GetCurrentUser(context.Background())
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/campaigns/:id/campaignLists", endpointLabel("/campaigns/123/campaignLists"))
	assert.Equal(t, "/users/me", endpointLabel("/users/me"))
	assert.Equal(t, "v1:account_view", endpointLabel("v1:account_view"))
}
