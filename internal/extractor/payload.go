package extractor

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"tesouraria/ecc-ledger/internal/dateutils"
	"tesouraria/ecc-ledger/internal/extracterror"
	"tesouraria/ecc-ledger/internal/models"
)

// payload mirrors the JSON object the model is instructed to return.
type payload struct {
	SaldoInicial *decimal.Decimal `json:"saldoInicial"`
	SaldoFinal   *decimal.Decimal `json:"saldoFinal"`
	Lista        []payloadItem    `json:"lista"`
}

type payloadItem struct {
	Data  string          `json:"data"`
	Item  string          `json:"item"`
	Valor decimal.Decimal `json:"valor"`
	Tipo  string          `json:"tipo"`
	Cat   string          `json:"cat"`
	Proj  string          `json:"proj"`
	Obs   string          `json:"obs"`
}

// ExtractJSON locates the JSON object inside a model reply. Replies often
// arrive wrapped in ``` fences or padded with prose, so the span from the
// first '{' to the last '}' is taken after stripping fences.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", &extracterror.MalformedError{
			Reason:  "no JSON object found in reply",
			Snippet: extracterror.Snippet(raw),
		}
	}
	return s[start : end+1], nil
}

// ParsePayload extracts and decodes the JSON payload of a model reply.
// A reply without the "lista" key is malformed even when it is valid JSON.
func ParsePayload(raw string) (*payload, error) {
	span, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &keys); err != nil {
		return nil, &extracterror.MalformedError{
			Reason:  "reply is not valid JSON",
			Snippet: extracterror.Snippet(span),
			Err:     err,
		}
	}
	if _, ok := keys["lista"]; !ok {
		return nil, &extracterror.MalformedError{
			Reason:  `reply has no "lista" key`,
			Snippet: extracterror.Snippet(span),
		}
	}

	var p payload
	if err := json.Unmarshal([]byte(span), &p); err != nil {
		return nil, &extracterror.MalformedError{
			Reason:  "transaction list does not match the expected shape",
			Snippet: extracterror.Snippet(span),
			Err:     err,
		}
	}
	return &p, nil
}

// toResult normalizes a decoded payload into a Result: dates resolved
// against the requested period, amounts made unsigned with the direction
// moved into Kind, and missing classifications defaulted.
func (p *payload) toResult(req Request) *Result {
	refYear := dateutils.YearOf(req.To)
	if refYear == 0 {
		refYear = dateutils.YearOf(req.From)
	}

	res := &Result{
		Transactions:   make([]models.Transaction, 0, len(p.Lista)),
		InitialBalance: p.SaldoInicial,
		FinalBalance:   p.SaldoFinal,
	}
	for _, item := range p.Lista {
		t := models.Transaction{
			Date:        dateutils.Normalize(item.Data, refYear),
			Description: item.Item,
			Amount:      item.Valor,
			Kind:        models.Kind(strings.ToUpper(strings.TrimSpace(item.Tipo))),
			Category:    item.Cat,
			Project:     item.Proj,
			Note:        item.Obs,
		}
		res.Transactions = append(res.Transactions, t.Normalized())
	}
	return res
}
