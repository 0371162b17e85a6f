package http

import (
	"log/slog"
	"net/http"

	"github.com/pizzayolo/backoffice-go/internal/domain/balance"
	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/handler/http/response"
)

type ReportHandler interface {
	Settlement(w http.ResponseWriter, r *http.Request)
	SupplierBalance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	settlementService settlement.Service
	balanceService    balance.Service
}

func NewReportHandler(settlementService settlement.Service, balanceService balance.Service) ReportHandler {
	return &ReportHandlerImpl{
		settlementService: settlementService,
		balanceService:    balanceService,
	}
}

// Settlement implements ReportHandler.
func (h *ReportHandlerImpl) Settlement(w http.ResponseWriter, r *http.Request) {
	req := settlement.ReportRequest{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		StoreID: r.URL.Query().Get("store_id"),
	}

	report, err := h.settlementService.SettlementReport(r.Context(), req)
	if err != nil {
		slog.Error("Settlement report error", "error", err, "from", req.From, "to", req.To)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// SupplierBalance implements ReportHandler.
func (h *ReportHandlerImpl) SupplierBalance(w http.ResponseWriter, r *http.Request) {
	req := balance.BalanceRequest{
		Date: r.URL.Query().Get("date"),
	}

	report, err := h.balanceService.SupplierBalance(r.Context(), req)
	if err != nil {
		slog.Error("Supplier balance report error", "error", err, "date", req.Date)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
