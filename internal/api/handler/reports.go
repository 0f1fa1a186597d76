package handler

import (
	"net/http"

	"github.com/vfg2006/mail-insights-api/internal/domain"
	"github.com/vfg2006/mail-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/mail-insights-api/pkg/apiErrors"
)

const defaultTopMetric = "openRate"

func CampaignReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := metricsFilter(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.CampaignReport(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório de campanhas")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func AggregatedMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := metricsFilter(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metrics, err := service.AggregatedMetrics(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar métricas")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

func MetricsByAccount(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := metricsFilter(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metrics, err := service.MetricsByAccount(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao agregar métricas por conta")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}

func TopCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter, err := metricsFilter(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		n, err := limit(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metric := query.Get("metric")
		if metric == "" {
			metric = defaultTopMetric
		}

		campaigns, err := service.TopCampaigns(r.Context(), metric, n, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar melhores campanhas")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

func AutomationReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		win, err := window(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.AutomationMetrics(r.Context(), domain.AutomationReportFilter{
			AccountIDs: csv(query, "accountIds"),
			Status:     query.Get("status"),
			Window:     win,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório de automações")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func listFilter(r *http.Request) (domain.ListReportFilter, error) {
	query := r.URL.Query()
	win, err := window(query)
	if err != nil {
		return domain.ListReportFilter{}, err
	}
	return domain.ListReportFilter{AccountIDs: csv(query, "accountIds"), Window: win}, nil
}

func ListReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := listFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.ListMetrics(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar relatório de listas")
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func TopLists(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := listFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		n, err := limit(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		metric := r.URL.Query().Get("metric")
		if metric == "" {
			metric = defaultTopMetric
		}

		lists, err := service.TopLists(r.Context(), metric, n, filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar melhores listas")
			return
		}

		writeJSON(w, http.StatusOK, lists)
	})
}
