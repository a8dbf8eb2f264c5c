package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// maxBodyBytes limita o corpo aceito em POST /v1/sales
const maxBodyBytes = 1 << 20

func writeInternalError(w http.ResponseWriter, message string) {
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
