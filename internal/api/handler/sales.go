package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesfeed/feeddomain"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sales"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

func ListSales(service sales.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records, err := service.ListSales(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendas", nil)
			return
		}

		writeJSON(w, http.StatusOK, records)
	})
}

func CreateSale(service sales.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		record, err := feeddomain.DecodeRecord(body)
		if err != nil {
			writeSaleError(w, err)
			return
		}

		saved, err := service.AddSale(r.Context(), record)
		if err != nil {
			writeSaleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	})
}

func writeSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrParse):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição não é uma venda em JSON", nil)
	case errors.Is(err, domain.ErrInvalidRecord):
		apiErrors.FromDomainError(err).Write(w)
	default:
		logrus.WithError(err).Error("Erro ao registrar venda")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
	}
}
