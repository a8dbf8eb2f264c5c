package feeddomain

import (
	"bytes"
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FieldID         = "id"
	FieldSaleTotal  = "saleTotal"
	FieldCreditCard = "creditCard"
	FieldBuyerName  = "buyerName"
)

// Decode converte o payload da fonte em registros validados.
// Payload que não é um array JSON de objetos gera ErrParse; registro fora do
// esquema gera ErrInvalidRecord com o índice e o campo.
func Decode(payload []byte) ([]domain.SaleRecord, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return nil, domain.NewParseError("payload vazio")
	}
	if !wellFormed(trimmed) {
		return nil, errors.Wrap(domain.NewParseError("JSON malformado"), "erro ao decodificar vendas")
	}

	root := json.Get(trimmed)
	if root.ValueType() != jsoniter.ArrayValue {
		return nil, domain.NewParseError("esperado um array de vendas")
	}

	size := root.Size()
	records := make([]domain.SaleRecord, 0, size)
	for i := 0; i < size; i++ {
		element := root.Get(i)

		switch element.ValueType() {
		case jsoniter.ObjectValue:
		case jsoniter.NilValue:
			return nil, errors.Wrap(invalid(i, FieldSaleTotal, "is missing"), "erro ao validar vendas")
		default:
			return nil, domain.NewParseError(fmt.Sprintf("elemento %d não é um objeto", i))
		}

		record, err := toRecord(i, element)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao validar vendas")
		}
		records = append(records, record)
	}

	return records, nil
}

// DecodeRecord converte um único objeto de venda, com as mesmas regras de Decode
func DecodeRecord(payload []byte) (domain.SaleRecord, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || !wellFormed(trimmed) {
		return domain.SaleRecord{}, domain.NewParseError("JSON malformado")
	}

	element := json.Get(trimmed)
	if element.ValueType() != jsoniter.ObjectValue {
		return domain.SaleRecord{}, domain.NewParseError("esperado um objeto de venda")
	}

	return toRecord(0, element)
}

// wellFormed exige um único documento JSON válido, sem bytes depois dele
func wellFormed(payload []byte) bool {
	if !json.Valid(payload) {
		return false
	}

	iter := json.BorrowIterator(payload)
	defer json.ReturnIterator(iter)

	value := iter.SkipAndReturnBytes()
	if iter.Error != nil && iter.Error != io.EOF {
		return false
	}
	return len(bytes.TrimSpace(payload[len(value):])) == 0
}

// duplicatedField devolve o primeiro campo conhecido que aparece mais de uma vez
func duplicatedField(element jsoniter.Any) string {
	seen := make(map[string]bool, 4)
	for _, key := range element.Keys() {
		switch key {
		case FieldID, FieldSaleTotal, FieldCreditCard, FieldBuyerName:
			if seen[key] {
				return key
			}
			seen[key] = true
		}
	}
	return ""
}

func toRecord(index int, element jsoniter.Any) (domain.SaleRecord, error) {
	var record domain.SaleRecord

	if field := duplicatedField(element); field != "" {
		return record, invalid(index, field, "is duplicated")
	}

	id := element.Get(FieldID)
	switch id.ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
	case jsoniter.StringValue:
		record.ID = id.ToString()
	default:
		return record, invalid(index, FieldID, "must be a string")
	}

	total := element.Get(FieldSaleTotal)
	switch total.ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return record, invalid(index, FieldSaleTotal, "is missing")
	case jsoniter.NumberValue:
		record.SaleTotal = total.ToFloat64()
	default:
		return record, invalid(index, FieldSaleTotal, "must be a number")
	}

	// creditCard ausente vale false; presente precisa ser booleano
	credit := element.Get(FieldCreditCard)
	switch credit.ValueType() {
	case jsoniter.InvalidValue:
	case jsoniter.BoolValue:
		record.CreditCard = credit.ToBool()
	default:
		return record, invalid(index, FieldCreditCard, "must be a boolean")
	}

	buyer := element.Get(FieldBuyerName)
	switch buyer.ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return record, invalid(index, FieldBuyerName, "is missing")
	case jsoniter.StringValue:
		record.BuyerName = buyer.ToString()
	default:
		return record, invalid(index, FieldBuyerName, "must be a string")
	}

	if err := ValidateRecord(index, record); err != nil {
		return record, err
	}

	return record, nil
}

// ValidateRecord confere as regras de valor de um registro já tipado
func ValidateRecord(index int, record domain.SaleRecord) error {
	if math.IsNaN(record.SaleTotal) || math.IsInf(record.SaleTotal, 0) {
		return invalid(index, FieldSaleTotal, "must be finite")
	}
	if record.SaleTotal < 0 {
		return invalid(index, FieldSaleTotal, fmt.Sprintf("must be non-negative, got %v", record.SaleTotal))
	}
	return nil
}

func invalid(index int, field, reason string) error {
	return &domain.RecordError{Index: index, Field: field, Reason: reason}
}
